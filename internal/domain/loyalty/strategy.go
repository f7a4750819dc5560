package loyalty

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
)

// ===============================
// Estrategia de clasificación
// ===============================

// Strategy es función pura de sus entradas: el caller entrega el "now"
// de referencia explícitamente.
type Strategy interface {
	Classify(history []models.Reservation, rules models.RuleSet, now time.Time) models.TierLevel
	CountInWindow(history []models.Reservation, windowDays int, now time.Time) int
}

type WindowKind string

const (
	// Ventana exacta [now - d días, now].
	WindowSliding WindowKind = "sliding"

	// Ventana ajustada a días completos: desde las 00:00 del día
	// (now - d) hasta las 23:59:59 de hoy.
	WindowCalendar WindowKind = "calendar"
)

func ParseWindowKind(s string) (WindowKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sliding":
		return WindowSliding, true
	case "calendar":
		return WindowCalendar, true
	}
	return WindowSliding, false
}

// VisitWindowStrategy implementa el conjunto cerrado de políticas de
// ventana, seleccionadas por Kind (variante etiquetada, no dispatch
// dinámico por clase).
type VisitWindowStrategy struct {
	Kind WindowKind

	// Varias reservas el mismo día cuentan como una sola visita.
	UniquePerDay bool
}

func NewStrategy(kind string, uniquePerDay bool) Strategy {
	k, _ := ParseWindowKind(kind)
	return VisitWindowStrategy{Kind: k, UniquePerDay: uniquePerDay}
}

func (s VisitWindowStrategy) windowBounds(windowDays int, now time.Time) (time.Time, time.Time) {
	switch s.Kind {
	case WindowCalendar:
		start := now.AddDate(0, 0, -windowDays)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), now.Location())
		return start, end
	default:
		return now.AddDate(0, 0, -windowDays), now
	}
}

func (s VisitWindowStrategy) CountInWindow(history []models.Reservation, windowDays int, now time.Time) int {
	start, end := s.windowBounds(windowDays, now)

	if s.UniquePerDay {
		days := make(map[string]struct{})
		for _, r := range history {
			if inRange(r.StartTime, start, end) {
				days[r.StartTime.In(now.Location()).Format("2006-01-02")] = struct{}{}
			}
		}
		return len(days)
	}

	count := 0
	for _, r := range history {
		if inRange(r.StartTime, start, end) {
			count++
		}
	}
	return count
}

// Classify evalúa de la regla más estricta a la más laxa y asigna la
// primera cuyo umbral se cumple. Sin reservas → sin clasificar; con
// reservas pero ninguna regla cumplida → Regular como piso.
func (s VisitWindowStrategy) Classify(history []models.Reservation, rules models.RuleSet, now time.Time) models.TierLevel {
	if len(history) == 0 {
		return models.TierUnclassified
	}

	for _, rule := range rules.Desc() {
		if s.CountInWindow(history, rule.WindowDays, now) >= rule.MinVisits {
			return rule.Level
		}
	}

	return models.TierRegular
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
