package loyalty

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
)

func testRules() models.RuleSet {
	return models.RuleSet{
		Regular:  models.TierRule{Level: models.TierRegular, MinVisits: 1, WindowDays: 365},
		VIP:      models.TierRule{Level: models.TierVIP, MinVisits: 3, WindowDays: 365},
		SuperVIP: models.TierRule{Level: models.TierSuperVIP, MinVisits: 6, WindowDays: 365},
	}
}

func reservationsAt(customerID string, times ...time.Time) []models.Reservation {
	out := make([]models.Reservation, 0, len(times))
	for i, t := range times {
		out = append(out, models.Reservation{
			ID:         customerID + "-R" + string(rune('A'+i)),
			CustomerID: customerID,
			StartTime:  t,
			PartySize:  2,
		})
	}
	return out
}

func TestClassify_ZeroReservationsIsUnclassified(t *testing.T) {
	s := NewStrategy("sliding", true)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tier := s.Classify(nil, testRules(), now)
	assert.Equal(t, models.TierUnclassified, tier)
}

func TestClassify_StrictestRuleWinsFirst(t *testing.T) {
	s := NewStrategy("sliding", true)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// 7 visitas en días distintos dentro de la ventana: cumple las tres
	// reglas, debe ganar Super VIP y nunca una categoría menor.
	var times []time.Time
	for i := 0; i < 7; i++ {
		times = append(times, now.AddDate(0, 0, -(i+1)*10))
	}

	tier := s.Classify(reservationsAt("C001", times...), testRules(), now)
	assert.Equal(t, models.TierSuperVIP, tier)
}

func TestClassify_ThreeVisitsInWindowIsVIP(t *testing.T) {
	s := NewStrategy("sliding", true)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	history := reservationsAt("C001",
		now.AddDate(0, 0, -30),
		now.AddDate(0, 0, -90),
		now.AddDate(0, 0, -200),
	)

	tier := s.Classify(history, testRules(), now)
	assert.Equal(t, models.TierVIP, tier)
}

func TestClassify_OldVisitsFallToRegularFloor(t *testing.T) {
	s := NewStrategy("sliding", true)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// con historial pero fuera de ventana: piso Regular, nunca Unclassified
	history := reservationsAt("C001", now.AddDate(-3, 0, 0))

	tier := s.Classify(history, testRules(), now)
	assert.Equal(t, models.TierRegular, tier)
}

func TestCountInWindow_UniquePerDayCollapsesSameDay(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	day := now.AddDate(0, 0, -5)

	history := reservationsAt("C001",
		day.Add(1*time.Hour),
		day.Add(3*time.Hour),
		day.Add(8*time.Hour),
		now.AddDate(0, 0, -20),
	)

	unique := NewStrategy("sliding", true)
	assert.Equal(t, 2, unique.CountInWindow(history, 365, now))

	raw := NewStrategy("sliding", false)
	assert.Equal(t, 4, raw.CountInWindow(history, 365, now))
}

func TestCountInWindow_SlidingExcludesJustOutside(t *testing.T) {
	s := NewStrategy("sliding", false)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	history := reservationsAt("C001",
		now.AddDate(0, 0, -365),               // borde: dentro
		now.AddDate(0, 0, -365).Add(-time.Minute), // fuera por un minuto
	)

	assert.Equal(t, 1, s.CountInWindow(history, 365, now))
}

func TestCountInWindow_CalendarSnapsToWholeDays(t *testing.T) {
	s := NewStrategy("calendar", false)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// la mañana del día límite queda dentro con ventana calendario,
	// fuera con ventana sliding exacta
	edge := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)
	history := reservationsAt("C001", edge)

	assert.Equal(t, 1, s.CountInWindow(history, 30, now))

	sliding := NewStrategy("sliding", false)
	assert.Equal(t, 0, sliding.CountInWindow(history, 30, now))
}

func TestParseWindowKind_Defaults(t *testing.T) {
	k, ok := ParseWindowKind("calendar")
	assert.True(t, ok)
	assert.Equal(t, WindowCalendar, k)

	k, ok = ParseWindowKind("whatever")
	assert.False(t, ok)
	assert.Equal(t, WindowSliding, k)
}
