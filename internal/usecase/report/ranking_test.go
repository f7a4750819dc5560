package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/restaurant-loyalty/internal/domain/loyalty"
	enginepkg "github.com/BruksfildServices01/restaurant-loyalty/internal/engine"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/httperr"
	infraRepo "github.com/BruksfildServices01/restaurant-loyalty/internal/infra/repository"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
)

var asOf = time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)

func seededEngine(t *testing.T) *enginepkg.Engine {
	t.Helper()

	repo := infraRepo.NewVisitMemoryRepository()
	eng := enginepkg.New(repo, domain.NewStrategy("sliding", true), "UTC", zap.NewNop())

	ctx := context.Background()
	require.NoError(t, eng.ConfigureRules(ctx, models.RuleSet{
		Regular:  models.TierRule{MinVisits: 1, WindowDays: 365},
		VIP:      models.TierRule{MinVisits: 3, WindowDays: 365},
		SuperVIP: models.TierRule{MinVisits: 6, WindowDays: 365},
	}))

	// C001: 3 visitas (VIP), C002: 3 visitas (VIP) — empate con C001,
	// C003: 1 visita (Regular), C004: 6 visitas (Super VIP)
	var records []domain.ReservationRecord
	add := func(rid, cid string, daysAgo int) {
		records = append(records, domain.ReservationRecord{
			ReservationID: rid,
			CustomerID:    cid,
			Name:          "Cliente " + cid,
			StartTime:     asOf.AddDate(0, 0, -daysAgo),
			PartySize:     2,
		})
	}

	add("R01", "C001", 10)
	add("R02", "C001", 40)
	add("R03", "C001", 70)

	add("R04", "C002", 15)
	add("R05", "C002", 45)
	add("R06", "C002", 75)

	add("R07", "C003", 20)

	for i := 0; i < 6; i++ {
		add("R1"+string(rune('0'+i)), "C004", (i+1)*30)
	}

	_, err := eng.ImportReservations(ctx, records)
	require.NoError(t, err)

	_, err = eng.ClassifyAllAt(ctx, asOf)
	require.NoError(t, err)

	return eng
}

func TestRanking_OrderAndTieBreak(t *testing.T) {
	eng := seededEngine(t)
	uc := NewRanking(eng)

	entries, err := uc.Execute(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// visitas desc; empate C001/C002 se resuelve por customer_id asc
	assert.Equal(t, "C004", entries[0].CustomerID)
	assert.Equal(t, "C001", entries[1].CustomerID)
	assert.Equal(t, "C002", entries[2].CustomerID)
	assert.Equal(t, "C003", entries[3].CustomerID)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, models.TierSuperVIP, entries[0].Tier)
	assert.Equal(t, 6, entries[0].VisitCount)
}

func TestRanking_TopNTruncates(t *testing.T) {
	eng := seededEngine(t)
	uc := NewRanking(eng)

	entries, err := uc.Execute(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "C004", entries[0].CustomerID)
	assert.Equal(t, "C001", entries[1].CustomerID)
}

func TestRanking_IdempotentOnUnchangedState(t *testing.T) {
	eng := seededEngine(t)
	uc := NewRanking(eng)

	first, err := uc.Execute(context.Background(), 0)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRanking_RequiresClassificationRun(t *testing.T) {
	repo := infraRepo.NewVisitMemoryRepository()
	eng := enginepkg.New(repo, domain.NewStrategy("sliding", true), "UTC", zap.NewNop())
	uc := NewRanking(eng)

	_, err := uc.Execute(context.Background(), 0)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotClassified))
}

func TestVisitsByMonth_ZeroFilledBuckets(t *testing.T) {
	eng := seededEngine(t)
	uc := NewVisitsByMonth(eng, "UTC")

	counts, err := uc.ExecuteAt(context.Background(), "C001", 4, asOf)
	require.NoError(t, err)
	require.Len(t, counts, 4)

	// orden cronológico, meses sin visitas incluidos en cero
	assert.Equal(t, 3, counts[0].Month)
	total := 0
	for _, mc := range counts {
		total += mc.Visits
	}
	assert.Equal(t, 3, total)
}
