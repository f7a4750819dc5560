package loyalty

import (
	"context"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
)

type Repository interface {
	// -------- Customer --------
	GetCustomer(
		ctx context.Context,
		id string,
	) (*models.Customer, error)

	CreateCustomer(
		ctx context.Context,
		c *models.Customer,
	) error

	SaveCustomer(
		ctx context.Context,
		c *models.Customer,
	) error

	ListCustomers(
		ctx context.Context,
	) ([]models.Customer, error)

	// -------- Reservation --------

	// AddReservation devuelve false si el reservation_id ya existe
	// (política: se conserva la primera).
	AddReservation(
		ctx context.Context,
		r models.Reservation,
	) (bool, error)

	ListReservationsByCustomer(
		ctx context.Context,
		customerID string,
	) ([]models.Reservation, error)

	CountReservations(
		ctx context.Context,
	) (int, error)
}
