package httperr

import "errors"

// Códigos de negocio del núcleo de fidelización. Todos recuperables
// en el punto de llamada; ninguno tumba el proceso.
const (
	CodeInvalidRuleConfiguration = "invalid_rule_configuration"
	CodeCustomerNotFound         = "customer_not_found"
	CodeNotClassified            = "not_classified"
	CodeNotConfigured            = "rules_not_configured"
	CodeInvalidCSVHeader         = "invalid_csv_header"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
