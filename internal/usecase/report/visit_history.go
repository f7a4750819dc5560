package report

import (
	"context"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/engine"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
)

type VisitHistory struct {
	engine *engine.Engine
}

func NewVisitHistory(engine *engine.Engine) *VisitHistory {
	return &VisitHistory{engine: engine}
}

// Execute devuelve las reservas del cliente en orden cronológico.
func (uc *VisitHistory) Execute(
	ctx context.Context,
	customerID string,
) ([]models.Reservation, error) {
	return uc.engine.VisitHistory(ctx, customerID)
}
