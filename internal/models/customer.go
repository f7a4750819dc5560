package models

import "time"

// Cliente creado en la primera reserva importada; vive solo en memoria
// durante la sesión del proceso.
type Customer struct {
	ID    string `json:"customer_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// Snapshot de la última corrida de clasificación.
	// Nunca se actualiza parcialmente.
	Tier           TierLevel  `json:"tier"`
	VisitsInWindow int        `json:"visits_in_window"`
	ClassifiedAt   *time.Time `json:"classified_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
