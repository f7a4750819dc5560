package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/engine"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/httperr"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/httpresp"
	ucLoyalty "github.com/BruksfildServices01/restaurant-loyalty/internal/usecase/loyalty"
)

// ======================================================
// HANDLER
// ======================================================

type RulesHandler struct {
	engine           *engine.Engine
	configureRulesUC *ucLoyalty.ConfigureRules
}

func NewRulesHandler(
	eng *engine.Engine,
	configureRulesUC *ucLoyalty.ConfigureRules,
) *RulesHandler {
	return &RulesHandler{
		engine:           eng,
		configureRulesUC: configureRulesUC,
	}
}

// ======================================================
// GET RULES
// ======================================================

func (h *RulesHandler) Get(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"state": h.engine.State(),
		"rules": h.engine.Rules(),
	})
}

// ======================================================
// UPDATE RULES
// ======================================================

func (h *RulesHandler) Update(c *gin.Context) {
	var req ucLoyalty.ConfigureRulesInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	rules, err := h.configureRulesUC.Execute(c.Request.Context(), req)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidRuleConfiguration) {
			httperr.BadRequest(c, httperr.CodeInvalidRuleConfiguration,
				"Los umbrales deben ser estrictamente crecientes y las ventanas positivas. Se mantiene la configuración anterior.")
			return
		}
		httperr.Internal(c, "failed_to_configure_rules", "Error al configurar reglas.")
		return
	}

	httpresp.OK(c, gin.H{
		"state": h.engine.State(),
		"rules": rules,
	})
}
