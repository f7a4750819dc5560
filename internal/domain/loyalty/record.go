package loyalty

import "time"

// ReservationRecord es el registro ya validado que entrega el
// colaborador de ingesta. Los datos de contacto pueblan al cliente
// solo la primera vez que aparece su customer_id.
type ReservationRecord struct {
	ReservationID string
	CustomerID    string

	Name  string
	Email string
	Phone string

	StartTime time.Time
	PartySize int
}
