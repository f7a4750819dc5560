package loyalty

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/audit"
	domain "github.com/BruksfildServices01/restaurant-loyalty/internal/domain/loyalty"
	enginepkg "github.com/BruksfildServices01/restaurant-loyalty/internal/engine"
	infraRepo "github.com/BruksfildServices01/restaurant-loyalty/internal/infra/repository"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/ingest"
)

func importFixture(t *testing.T) *ImportReservations {
	t.Helper()

	repo := infraRepo.NewVisitMemoryRepository()
	eng := enginepkg.New(repo, domain.NewStrategy("sliding", true), "UTC", zap.NewNop())

	log := zap.NewNop()
	reader := ingest.NewCSVReader(time.UTC, log)
	dispatcher := audit.NewDispatcher(audit.NewStore(), log)

	return NewImportReservations(eng, reader, dispatcher)
}

func TestImportReservations_SummaryCombinesCounts(t *testing.T) {
	uc := importFixture(t)

	// una fila sin datetime, un reservation_id repetido
	csv := `reservation_id,customer_id,name,email,phone,datetime,party_size
R001,C001,Ana López,ana@example.com,999123456,2025-03-15T20:00,4
R002,C001,Ana López,ana@example.com,999123456,,2
R003,C002,Luis Mora,luis@example.com,988111222,2025-04-12,3
R001,C001,Ana López,ana@example.com,999123456,2025-05-01T13:00,2
`

	sum, err := uc.Execute(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Imported)
	assert.Equal(t, 2, sum.CustomersCreated)
	assert.Equal(t, 1, sum.Malformed)
	assert.Equal(t, 1, sum.Duplicates)
}

func TestImportReservations_HeaderErrorAborts(t *testing.T) {
	uc := importFixture(t)

	_, err := uc.Execute(context.Background(), strings.NewReader("id,fecha\n1,2\n"))
	assert.Error(t, err)
}
