package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/restaurant-loyalty/internal/domain/loyalty"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/httperr"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/timezone"
)

// ======================================================
// MOTOR DE REGLAS
// ======================================================
//
// Ciclo de vida: Unconfigured → Configured → Classified, y de vuelta a
// Configured cada vez que cambian reglas o datos. La clasificación no
// se recalcula sola: ListByTier refleja la última corrida (contrato de
// staleness documentado, responsabilidad del caller).
//
// Las operaciones mutantes toman el lock de escritura; las lecturas
// corren concurrentes contra el último snapshot confirmado.

type State string

const (
	StateUnconfigured State = "unconfigured"
	StateConfigured   State = "configured"
	StateClassified   State = "classified"
)

type Engine struct {
	mu sync.RWMutex

	repo     domain.Repository
	strategy domain.Strategy

	rules models.RuleSet
	state State

	tz  string
	log *zap.Logger
}

func New(
	repo domain.Repository,
	strategy domain.Strategy,
	tz string,
	log *zap.Logger,
) *Engine {
	return &Engine{
		repo:     repo,
		strategy: strategy,
		tz:       tz,
		state:    StateUnconfigured,
		log:      log,
	}
}

func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

func (e *Engine) Rules() models.RuleSet {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rules
}

// ======================================================
// CONFIGURE RULES
// ======================================================

// ConfigureRules valida y reemplaza la configuración activa de forma
// atómica. Si la validación falla, la configuración anterior queda
// intacta.
func (e *Engine) ConfigureRules(ctx context.Context, rules models.RuleSet) error {
	rules = domain.NormalizeRuleSet(rules)

	if err := domain.ValidateRuleSet(rules); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.rules = rules
	e.state = StateConfigured

	e.log.Info("reglas de fidelización configuradas",
		zap.Int("regular_min", rules.Regular.MinVisits),
		zap.Int("vip_min", rules.VIP.MinVisits),
		zap.Int("super_vip_min", rules.SuperVIP.MinVisits),
		zap.Int("window_days", rules.MaxWindowDays()))

	return nil
}

// ======================================================
// IMPORT RESERVATIONS
// ======================================================

type ImportSummary struct {
	Imported         int `json:"imported"`
	CustomersCreated int `json:"customers_created"`
	Duplicates       int `json:"duplicates"`
	Malformed        int `json:"malformed"`
}

// ImportReservations fusiona registros ya validados: crea clientes en
// su primera aparición e ignora reservation_id repetidos (se conserva
// el primero). No dispara reclasificación.
func (e *Engine) ImportReservations(
	ctx context.Context,
	records []domain.ReservationRecord,
) (ImportSummary, error) {

	e.mu.Lock()
	defer e.mu.Unlock()

	var sum ImportSummary

	for _, rec := range records {
		if _, err := e.repo.GetCustomer(ctx, rec.CustomerID); err != nil {
			c := &models.Customer{
				ID:        rec.CustomerID,
				Name:      rec.Name,
				Email:     rec.Email,
				Phone:     rec.Phone,
				Tier:      models.TierUnclassified,
				CreatedAt: timezone.NowIn(e.tz),
			}
			if err := e.repo.CreateCustomer(ctx, c); err != nil {
				return sum, err
			}
			sum.CustomersCreated++
		}

		added, err := e.repo.AddReservation(ctx, models.Reservation{
			ID:         rec.ReservationID,
			CustomerID: rec.CustomerID,
			StartTime:  rec.StartTime,
			PartySize:  rec.PartySize,
		})
		if err != nil {
			return sum, err
		}
		if !added {
			sum.Duplicates++
			continue
		}
		sum.Imported++
	}

	// datos nuevos invalidan la clasificación vigente; un cliente creado
	// cuenta como dato nuevo aunque su reserva fuese duplicada
	if (sum.Imported > 0 || sum.CustomersCreated > 0) && e.state == StateClassified {
		e.state = StateConfigured
	}

	return sum, nil
}

// ======================================================
// CLASSIFY ALL
// ======================================================

// ClassifyAll recalcula la categoría de todos los clientes contra un
// único "now" compartido: toda la corrida es un snapshot consistente.
func (e *Engine) ClassifyAll(ctx context.Context) ([]models.Customer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateUnconfigured {
		return nil, httperr.ErrBusiness(httperr.CodeNotConfigured)
	}

	now := timezone.NowIn(e.tz)
	return e.classifyAllLocked(ctx, now)
}

// ClassifyAllAt existe para poder fijar el instante de referencia en
// pruebas; ClassifyAll es el camino normal.
func (e *Engine) ClassifyAllAt(ctx context.Context, now time.Time) ([]models.Customer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateUnconfigured {
		return nil, httperr.ErrBusiness(httperr.CodeNotConfigured)
	}
	return e.classifyAllLocked(ctx, now)
}

func (e *Engine) classifyAllLocked(ctx context.Context, now time.Time) ([]models.Customer, error) {
	customers, err := e.repo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	rankingWindow := e.rules.MaxWindowDays()

	out := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		history, err := e.repo.ListReservationsByCustomer(ctx, c.ID)
		if err != nil {
			return nil, err
		}

		c.Tier = e.strategy.Classify(history, e.rules, now)
		c.VisitsInWindow = e.strategy.CountInWindow(history, rankingWindow, now)
		at := now
		c.ClassifiedAt = &at

		if err := e.repo.SaveCustomer(ctx, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	e.state = StateClassified

	e.log.Info("corrida de clasificación completada",
		zap.Int("customers", len(out)),
		zap.Time("as_of", now))

	return out, nil
}

// ======================================================
// QUERIES
// ======================================================

// TotalReservations es el tamaño del conjunto de datos vigente; se
// registra en la traza de auditoría de cada importación.
func (e *Engine) TotalReservations(ctx context.Context) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.repo.CountReservations(ctx)
}

func (e *Engine) FindCustomer(ctx context.Context, id string) (*models.Customer, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.repo.GetCustomer(ctx, id)
}

// ListByTier refleja la última corrida de clasificación; si reglas o
// datos cambiaron después, el resultado es deliberadamente stale.
func (e *Engine) ListByTier(ctx context.Context, level models.TierLevel) ([]models.Customer, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	customers, err := e.repo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Customer, 0)
	for _, c := range customers {
		if c.Tier == level {
			out = append(out, c)
		}
	}
	return out, nil
}

// ClassifiedCustomers es la base de los rankings: exige al menos una
// corrida de clasificación desde el último cambio de estado.
func (e *Engine) ClassifiedCustomers(ctx context.Context) ([]models.Customer, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.state != StateClassified {
		return nil, httperr.ErrBusiness(httperr.CodeNotClassified)
	}
	return e.repo.ListCustomers(ctx)
}

func (e *Engine) VisitHistory(ctx context.Context, customerID string) ([]models.Reservation, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if _, err := e.repo.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	return e.repo.ListReservationsByCustomer(ctx, customerID)
}
