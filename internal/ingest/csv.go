package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/restaurant-loyalty/internal/domain/loyalty"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/httperr"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/validators"
)

// ======================================================
// INGESTA DE RESERVAS (CSV)
// ======================================================
//
// Formato: UTF-8, un registro por línea, cabecera obligatoria:
// reservation_id,customer_id,name,email,phone,datetime,party_size
//
// La falla es por registro, nunca por archivo: las filas malformadas
// se saltan y se cuentan; el resto sigue adelante.

var expectedColumns = []string{
	"reservation_id",
	"customer_id",
	"name",
	"email",
	"phone",
	"datetime",
	"party_size",
}

// Formatos aceptados para datetime (los mismos de la herramienta de consola).
var datetimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

type Result struct {
	Records   []domain.ReservationRecord
	Malformed int
}

type CSVReader struct {
	loc *time.Location
	log *zap.Logger
}

func NewCSVReader(loc *time.Location, log *zap.Logger) *CSVReader {
	return &CSVReader{loc: loc, log: log}
}

func (p *CSVReader) Read(r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return Result{}, httperr.ErrBusiness(httperr.CodeInvalidCSVHeader)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return Result{}, err
	}

	var out Result
	line := 1 // la cabecera es la línea 1

	for {
		line++

		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// cantidad de campos incorrecta, comillas rotas, etc.
			out.Malformed++
			p.log.Warn("fila CSV malformada",
				zap.Int("line", line),
				zap.Error(err))
			continue
		}

		rec, err := p.parseRow(row, idx)
		if err != nil {
			out.Malformed++
			p.log.Warn("registro de reserva inválido",
				zap.Int("line", line),
				zap.Error(err))
			continue
		}

		out.Records = append(out.Records, rec)
	}

	return out, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range expectedColumns {
		if _, ok := idx[col]; !ok {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidCSVHeader)
		}
	}
	return idx, nil
}

func (p *CSVReader) parseRow(row []string, idx map[string]int) (domain.ReservationRecord, error) {
	field := func(name string) string {
		return strings.TrimSpace(row[idx[name]])
	}

	rid := field("reservation_id")
	cid := field("customer_id")
	if rid == "" || cid == "" {
		return domain.ReservationRecord{}, errors.New("reservation_id o customer_id vacío")
	}

	dt, err := parseDateTime(field("datetime"), p.loc)
	if err != nil {
		return domain.ReservationRecord{}, err
	}

	size, err := strconv.Atoi(field("party_size"))
	if err != nil || size <= 0 {
		return domain.ReservationRecord{}, errors.New("party_size debe ser entero > 0")
	}

	email := field("email")
	if email != "" && !validators.IsEmailValid(email) {
		return domain.ReservationRecord{}, errors.New("email inválido")
	}

	return domain.ReservationRecord{
		ReservationID: rid,
		CustomerID:    cid,
		Name:          field("name"),
		Email:         email,
		Phone:         field("phone"),
		StartTime:     dt,
		PartySize:     size,
	}, nil
}

func parseDateTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("datetime inválido: " + s)
}
