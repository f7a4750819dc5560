package models

import "time"

// Reserva inmutable una vez importada. CustomerID es una referencia
// débil: solo lookup, sin ownership.
type Reservation struct {
	ID         string    `json:"reservation_id"`
	CustomerID string    `json:"customer_id"`
	StartTime  time.Time `json:"start_time"`
	PartySize  int       `json:"party_size"`
}
