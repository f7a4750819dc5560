package loyalty

import (
	"context"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/engine"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
)

type ListByTier struct {
	engine *engine.Engine
}

func NewListByTier(engine *engine.Engine) *ListByTier {
	return &ListByTier{engine: engine}
}

// Execute devuelve los clientes en la categoría según la última
// corrida de clasificación. Si reglas o datos cambiaron después, el
// resultado refleja el snapshot anterior (contrato de staleness).
func (uc *ListByTier) Execute(
	ctx context.Context,
	level models.TierLevel,
) ([]models.Customer, error) {
	return uc.engine.ListByTier(ctx, level)
}
