package loyalty

import (
	"context"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/engine"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
)

type FindCustomer struct {
	engine *engine.Engine
}

func NewFindCustomer(engine *engine.Engine) *FindCustomer {
	return &FindCustomer{engine: engine}
}

// El ID se resuelve case-insensitive.
func (uc *FindCustomer) Execute(ctx context.Context, id string) (*models.Customer, error) {
	return uc.engine.FindCustomer(ctx, id)
}
