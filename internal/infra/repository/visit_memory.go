package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	domain "github.com/BruksfildServices01/restaurant-loyalty/internal/domain/loyalty"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/httperr"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
)

// ======================================================
// REPOSITORIO EN MEMORIA
// ======================================================
//
// Todo el estado es transitorio por ejecución del proceso; no hay
// motor de persistencia detrás de esta interfaz.

type VisitMemoryRepository struct {
	mu sync.RWMutex

	// clave: customer_id normalizado (case-insensitive)
	customers map[string]*models.Customer

	reservations map[string]models.Reservation

	// índice customer → reservas, en orden de llegada
	byCustomer map[string][]string
}

func NewVisitMemoryRepository() *VisitMemoryRepository {
	return &VisitMemoryRepository{
		customers:    make(map[string]*models.Customer),
		reservations: make(map[string]models.Reservation),
		byCustomer:   make(map[string][]string),
	}
}

var _ domain.Repository = (*VisitMemoryRepository)(nil)

func customerKey(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// ======================================================
// CUSTOMERS
// ======================================================

func (r *VisitMemoryRepository) GetCustomer(
	ctx context.Context,
	id string,
) (*models.Customer, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[customerKey(id)]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeCustomerNotFound)
	}

	cp := *c
	return &cp, nil
}

func (r *VisitMemoryRepository) CreateCustomer(
	ctx context.Context,
	c *models.Customer,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *c
	r.customers[customerKey(c.ID)] = &cp
	return nil
}

func (r *VisitMemoryRepository) SaveCustomer(
	ctx context.Context,
	c *models.Customer,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	key := customerKey(c.ID)
	if _, ok := r.customers[key]; !ok {
		return httperr.ErrBusiness(httperr.CodeCustomerNotFound)
	}

	cp := *c
	r.customers[key] = &cp
	return nil
}

func (r *VisitMemoryRepository) ListCustomers(
	ctx context.Context,
) ([]models.Customer, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ======================================================
// RESERVATIONS
// ======================================================

func (r *VisitMemoryRepository) AddReservation(
	ctx context.Context,
	res models.Reservation,
) (bool, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.reservations[res.ID]; dup {
		return false, nil
	}

	r.reservations[res.ID] = res

	key := customerKey(res.CustomerID)
	r.byCustomer[key] = append(r.byCustomer[key], res.ID)

	return true, nil
}

func (r *VisitMemoryRepository) ListReservationsByCustomer(
	ctx context.Context,
	customerID string,
) ([]models.Reservation, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byCustomer[customerKey(customerID)]
	out := make([]models.Reservation, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.reservations[id])
	}

	// orden cronológico, con el ID como desempate estable
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *VisitMemoryRepository) CountReservations(
	ctx context.Context,
) (int, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.reservations), nil
}
