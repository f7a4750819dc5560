package loyalty

import (
	"context"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/audit"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/engine"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RuleInput struct {
	MinVisits  int `json:"min_visits"`
	WindowDays int `json:"window_days"`
}

type ConfigureRulesInput struct {
	Regular  RuleInput `json:"regular"`
	VIP      RuleInput `json:"vip"`
	SuperVIP RuleInput `json:"super_vip"`
}

// ======================================================
// USE CASE
// ======================================================

type ConfigureRules struct {
	engine *engine.Engine
	audit  *audit.Dispatcher
}

func NewConfigureRules(
	engine *engine.Engine,
	audit *audit.Dispatcher,
) *ConfigureRules {
	return &ConfigureRules{
		engine: engine,
		audit:  audit,
	}
}

func (uc *ConfigureRules) Execute(
	ctx context.Context,
	in ConfigureRulesInput,
) (models.RuleSet, error) {

	rules := models.RuleSet{
		Regular: models.TierRule{
			Level:      models.TierRegular,
			MinVisits:  in.Regular.MinVisits,
			WindowDays: in.Regular.WindowDays,
		},
		VIP: models.TierRule{
			Level:      models.TierVIP,
			MinVisits:  in.VIP.MinVisits,
			WindowDays: in.VIP.WindowDays,
		},
		SuperVIP: models.TierRule{
			Level:      models.TierSuperVIP,
			MinVisits:  in.SuperVIP.MinVisits,
			WindowDays: in.SuperVIP.WindowDays,
		},
	}

	if err := uc.engine.ConfigureRules(ctx, rules); err != nil {
		return models.RuleSet{}, err
	}

	uc.audit.Dispatch(audit.Event{
		Action: "rules_configured",
		Entity: "rule_set",
		Metadata: map[string]any{
			"regular_min":   rules.Regular.MinVisits,
			"vip_min":       rules.VIP.MinVisits,
			"super_vip_min": rules.SuperVIP.MinVisits,
		},
	})

	return uc.engine.Rules(), nil
}
