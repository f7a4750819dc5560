package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/httperr"
)

// ======================================================
// EXPORTACIÓN (CSV)
// ======================================================
//
// El núcleo entrega las filas ya ordenadas; aquí solo se serializan.
// El orden de columnas es estable y la escritura preserva el orden.

type RankingRow struct {
	Rank       int    `json:"rank"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	VisitCount int    `json:"visit_count"`
	Tier       string `json:"tier"`
}

var rankingHeader = []string{"rank", "customer_id", "name", "visit_count", "tier"}

func WriteRanking(w io.Writer, rows []RankingRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(rankingHeader); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Rank),
			r.CustomerID,
			r.Name,
			strconv.Itoa(r.VisitCount),
			r.Tier,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadRanking vuelve a cargar un ranking exportado, preservando el
// orden de filas del archivo.
func ReadRanking(r io.Reader) ([]RankingRow, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil || len(header) != len(rankingHeader) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCSVHeader)
	}
	for i, col := range rankingHeader {
		if header[i] != col {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidCSVHeader)
		}
	}

	var out []RankingRow
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		rank, _ := strconv.Atoi(row[0])
		visits, _ := strconv.Atoi(row[3])
		out = append(out, RankingRow{
			Rank:       rank,
			CustomerID: row[1],
			Name:       row[2],
			VisitCount: visits,
			Tier:       row[4],
		})
	}
	return out, nil
}

type HistoryRow struct {
	ReservationID string    `json:"reservation_id"`
	CustomerID    string    `json:"customer_id"`
	StartTime     time.Time `json:"start_time"`
	PartySize     int       `json:"party_size"`
}

func WriteVisitHistory(w io.Writer, rows []HistoryRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"reservation_id", "customer_id", "datetime", "party_size"}); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			r.ReservationID,
			r.CustomerID,
			r.StartTime.Format("2006-01-02 15:04"),
			strconv.Itoa(r.PartySize),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
