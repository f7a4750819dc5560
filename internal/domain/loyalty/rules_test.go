package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/httperr"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
)

func rules(regular, vip, superVIP, windowDays int) models.RuleSet {
	return models.RuleSet{
		Regular:  models.TierRule{Level: models.TierRegular, MinVisits: regular, WindowDays: windowDays},
		VIP:      models.TierRule{Level: models.TierVIP, MinVisits: vip, WindowDays: windowDays},
		SuperVIP: models.TierRule{Level: models.TierSuperVIP, MinVisits: superVIP, WindowDays: windowDays},
	}
}

func TestValidateRuleSet_Valid(t *testing.T) {
	assert.NoError(t, ValidateRuleSet(rules(1, 3, 6, 365)))
}

func TestValidateRuleSet_VIPBelowRegularRejected(t *testing.T) {
	// {Regular:5, VIP:3, SuperVIP:10} del enunciado de ejemplo
	err := ValidateRuleSet(rules(5, 3, 10, 365))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRuleConfiguration))
}

func TestValidateRuleSet_EqualThresholdsRejected(t *testing.T) {
	err := ValidateRuleSet(rules(1, 3, 3, 365))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRuleConfiguration))
}

func TestValidateRuleSet_NonPositiveWindowRejected(t *testing.T) {
	err := ValidateRuleSet(rules(1, 3, 6, -30))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRuleConfiguration))

	err = ValidateRuleSet(rules(1, 3, 6, 0))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRuleConfiguration))
}

func TestNormalizeRuleSet_FixesLevels(t *testing.T) {
	rs := rules(1, 3, 6, 365)
	rs.SuperVIP.Level = models.TierRegular // caller cruzó los niveles

	rs = NormalizeRuleSet(rs)
	assert.Equal(t, models.TierSuperVIP, rs.SuperVIP.Level)
	assert.Equal(t, models.TierVIP, rs.VIP.Level)
	assert.Equal(t, models.TierRegular, rs.Regular.Level)
}
