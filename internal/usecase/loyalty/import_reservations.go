package loyalty

import (
	"context"
	"io"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/audit"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/engine"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/ingest"
)

// ======================================================
// USE CASE
// ======================================================

type ImportReservations struct {
	engine *engine.Engine
	reader *ingest.CSVReader
	audit  *audit.Dispatcher
}

func NewImportReservations(
	engine *engine.Engine,
	reader *ingest.CSVReader,
	audit *audit.Dispatcher,
) *ImportReservations {
	return &ImportReservations{
		engine: engine,
		reader: reader,
		audit:  audit,
	}
}

// Execute delega el parseo al colaborador de ingesta y fusiona los
// registros válidos en el motor. La clasificación NO se recalcula
// aquí: siempre corre bajo demanda contra el estado vigente.
func (uc *ImportReservations) Execute(
	ctx context.Context,
	r io.Reader,
) (engine.ImportSummary, error) {

	parsed, err := uc.reader.Read(r)
	if err != nil {
		return engine.ImportSummary{}, err
	}

	sum, err := uc.engine.ImportReservations(ctx, parsed.Records)
	if err != nil {
		return sum, err
	}
	sum.Malformed = parsed.Malformed

	total, err := uc.engine.TotalReservations(ctx)
	if err != nil {
		return sum, err
	}

	uc.audit.Dispatch(audit.Event{
		Action: "reservations_imported",
		Entity: "reservation",
		Metadata: map[string]any{
			"imported":           sum.Imported,
			"customers_created":  sum.CustomersCreated,
			"duplicates":         sum.Duplicates,
			"malformed":          sum.Malformed,
			"total_reservations": total,
		},
	})

	return sum, nil
}
