package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/httperr"
)

const validCSV = `reservation_id,customer_id,name,email,phone,datetime,party_size
R001,C001,Ana López,ana@example.com,999123456,2025-03-15T20:00,4
R002,C001,Ana López,ana@example.com,999123456,2025-04-10 18:30,2
R003,C002,Luis Mora,luis@example.com,988111222,2025-04-12,3
`

func newReader(t *testing.T) *CSVReader {
	t.Helper()
	return NewCSVReader(time.UTC, zap.NewNop())
}

func TestRead_ValidFile(t *testing.T) {
	res, err := newReader(t).Read(strings.NewReader(validCSV))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Malformed)
	require.Len(t, res.Records, 3)

	first := res.Records[0]
	assert.Equal(t, "R001", first.ReservationID)
	assert.Equal(t, "C001", first.CustomerID)
	assert.Equal(t, "Ana López", first.Name)
	assert.Equal(t, 4, first.PartySize)
	assert.Equal(t, time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC), first.StartTime)

	// formato solo-fecha también aceptado
	assert.Equal(t, time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC), res.Records[2].StartTime)
}

func TestRead_MissingHeaderColumnRejectsFile(t *testing.T) {
	csv := `reservation_id,customer_id,name,email,phone,party_size
R001,C001,Ana,ana@example.com,999,4
`
	_, err := newReader(t).Read(strings.NewReader(csv))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCSVHeader))
}

func TestRead_MalformedRowsSkippedAndCounted(t *testing.T) {
	csv := `reservation_id,customer_id,name,email,phone,datetime,party_size
R001,C001,Ana,ana@example.com,999,2025-03-15T20:00,4
R002,C002,Luis,luis@example.com,988,,3
R003,C003,Eva,eva@example.com,977,2025-04-01T19:00,0
R004,C004,Max,max@example.com,966,2025-04-02T21:00,2
`
	res, err := newReader(t).Read(strings.NewReader(csv))
	require.NoError(t, err)

	// fila sin datetime + fila con party_size no positivo
	assert.Equal(t, 2, res.Malformed)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "R001", res.Records[0].ReservationID)
	assert.Equal(t, "R004", res.Records[1].ReservationID)
}

func TestRead_EmptyIdentifiersAreMalformed(t *testing.T) {
	csv := `reservation_id,customer_id,name,email,phone,datetime,party_size
,C001,Ana,ana@example.com,999,2025-03-15T20:00,4
R002,,Luis,luis@example.com,988,2025-03-16T20:00,2
`
	res, err := newReader(t).Read(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Malformed)
	assert.Empty(t, res.Records)
}

func TestRead_InvalidEmailIsMalformed(t *testing.T) {
	csv := `reservation_id,customer_id,name,email,phone,datetime,party_size
R001,C001,Ana,no-es-un-email,999,2025-03-15T20:00,4
R002,C002,Luis,,988,2025-03-16T20:00,2
`
	res, err := newReader(t).Read(strings.NewReader(csv))
	require.NoError(t, err)

	// email inválido se salta; email vacío se acepta
	assert.Equal(t, 1, res.Malformed)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "R002", res.Records[0].ReservationID)
}
