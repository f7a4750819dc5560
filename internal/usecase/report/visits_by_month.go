package report

import (
	"context"
	"time"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/engine"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/timezone"
)

// ======================================================
// VISITAS POR MES
// ======================================================

type MonthCount struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Visits int `json:"visits"`
}

type VisitsByMonth struct {
	engine *engine.Engine
	tz     string
}

func NewVisitsByMonth(engine *engine.Engine, tz string) *VisitsByMonth {
	return &VisitsByMonth{engine: engine, tz: tz}
}

// Execute cuenta las reservas del cliente por mes calendario durante
// los últimos N meses, incluyendo los meses con cero visitas.
func (uc *VisitsByMonth) Execute(
	ctx context.Context,
	customerID string,
	months int,
) ([]MonthCount, error) {
	return uc.ExecuteAt(ctx, customerID, months, timezone.NowIn(uc.tz))
}

// ExecuteAt permite fijar el instante de referencia (pruebas).
func (uc *VisitsByMonth) ExecuteAt(
	ctx context.Context,
	customerID string,
	months int,
	now time.Time,
) ([]MonthCount, error) {

	if months <= 0 {
		months = 6
	}

	history, err := uc.engine.VisitHistory(ctx, customerID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(uc.tz)
	now = now.In(loc)

	// primer día del mes más antiguo del rango
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).
		AddDate(0, -(months - 1), 0)
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, loc)

	counts := make(map[[2]int]int)
	for _, r := range history {
		t := r.StartTime.In(loc)
		if t.Before(start) || t.After(end) {
			continue
		}
		counts[[2]int{t.Year(), int(t.Month())}]++
	}

	out := make([]MonthCount, 0, months)
	cur := start
	for i := 0; i < months; i++ {
		key := [2]int{cur.Year(), int(cur.Month())}
		out = append(out, MonthCount{
			Year:   key[0],
			Month:  key[1],
			Visits: counts[key],
		})
		cur = cur.AddDate(0, 1, 0)
	}
	return out, nil
}
