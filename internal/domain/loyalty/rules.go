package loyalty

import (
	"github.com/BruksfildServices01/restaurant-loyalty/internal/httperr"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
)

// ===============================
// Validación de reglas
// ===============================

// ValidateRuleSet exige umbrales estrictamente crecientes
// Regular < VIP < Super VIP y ventanas positivas. Una configuración
// rechazada nunca reemplaza a la vigente.
func ValidateRuleSet(rs models.RuleSet) error {
	for _, r := range rs.Desc() {
		if r.WindowDays <= 0 {
			return httperr.ErrBusiness(httperr.CodeInvalidRuleConfiguration)
		}
		if r.MinVisits <= 0 {
			return httperr.ErrBusiness(httperr.CodeInvalidRuleConfiguration)
		}
	}

	if rs.VIP.MinVisits <= rs.Regular.MinVisits {
		return httperr.ErrBusiness(httperr.CodeInvalidRuleConfiguration)
	}
	if rs.SuperVIP.MinVisits <= rs.VIP.MinVisits {
		return httperr.ErrBusiness(httperr.CodeInvalidRuleConfiguration)
	}

	return nil
}

// NormalizeRuleSet fija los niveles de cada regla, de modo que el
// caller no pueda cruzarlos.
func NormalizeRuleSet(rs models.RuleSet) models.RuleSet {
	rs.Regular.Level = models.TierRegular
	rs.VIP.Level = models.TierVIP
	rs.SuperVIP.Level = models.TierSuperVIP
	return rs
}
