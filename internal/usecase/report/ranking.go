package report

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/engine"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
)

// ======================================================
// RANKING
// ======================================================

type RankingEntry struct {
	Rank       int              `json:"rank"`
	CustomerID string           `json:"customer_id"`
	Name       string           `json:"name"`
	VisitCount int              `json:"visit_count"`
	Tier       models.TierLevel `json:"tier"`
}

type Ranking struct {
	engine *engine.Engine
}

func NewRanking(engine *engine.Engine) *Ranking {
	return &Ranking{engine: engine}
}

// Execute ordena los clientes clasificados por visitas desc, luego
// categoría más estricta, luego customer_id asc. El desempate es total
// y determinista: con estado sin cambios, llamadas repetidas devuelven
// exactamente el mismo orden.
func (uc *Ranking) Execute(ctx context.Context, topN int) ([]RankingEntry, error) {
	customers, err := uc.engine.ClassifiedCustomers(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(customers, func(i, j int) bool {
		a, b := customers[i], customers[j]
		if a.VisitsInWindow != b.VisitsInWindow {
			return a.VisitsInWindow > b.VisitsInWindow
		}
		if a.Tier.Strictness() != b.Tier.Strictness() {
			return a.Tier.Strictness() > b.Tier.Strictness()
		}
		return a.ID < b.ID
	})

	if topN > 0 && topN < len(customers) {
		customers = customers[:topN]
	}

	out := make([]RankingEntry, 0, len(customers))
	for i, c := range customers {
		out = append(out, RankingEntry{
			Rank:       i + 1,
			CustomerID: c.ID,
			Name:       c.Name,
			VisitCount: c.VisitsInWindow,
			Tier:       c.Tier,
		})
	}
	return out, nil
}
