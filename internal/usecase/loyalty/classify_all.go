package loyalty

import (
	"context"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/audit"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/engine"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
)

type ClassifyAll struct {
	engine *engine.Engine
	audit  *audit.Dispatcher
}

func NewClassifyAll(
	engine *engine.Engine,
	audit *audit.Dispatcher,
) *ClassifyAll {
	return &ClassifyAll{
		engine: engine,
		audit:  audit,
	}
}

func (uc *ClassifyAll) Execute(ctx context.Context) ([]models.Customer, error) {
	customers, err := uc.engine.ClassifyAll(ctx)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action: "classification_run",
		Entity: "customer",
		Metadata: map[string]any{
			"customers": len(customers),
		},
	})

	return customers, nil
}
