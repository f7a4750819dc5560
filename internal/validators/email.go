package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid valida solo la sintaxis: la ingesta de CSV no debe hacer
// I/O de red por registro.
func IsEmailValid(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	at := strings.LastIndex(addr.Address, "@")
	return at > 0 && at < len(addr.Address)-1
}
