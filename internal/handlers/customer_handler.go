package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/httperr"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/httpresp"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
	ucLoyalty "github.com/BruksfildServices01/restaurant-loyalty/internal/usecase/loyalty"
)

// ======================================================
// HANDLER
// ======================================================

type CustomerHandler struct {
	classifyAllUC  *ucLoyalty.ClassifyAll
	findCustomerUC *ucLoyalty.FindCustomer
	listByTierUC   *ucLoyalty.ListByTier
}

func NewCustomerHandler(
	classifyAllUC *ucLoyalty.ClassifyAll,
	findCustomerUC *ucLoyalty.FindCustomer,
	listByTierUC *ucLoyalty.ListByTier,
) *CustomerHandler {
	return &CustomerHandler{
		classifyAllUC:  classifyAllUC,
		findCustomerUC: findCustomerUC,
		listByTierUC:   listByTierUC,
	}
}

// ======================================================
// CLASSIFY ALL
// ======================================================

func (h *CustomerHandler) Classify(c *gin.Context) {
	customers, err := h.classifyAllUC.Execute(c.Request.Context())
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotConfigured) {
			httperr.Conflict(c, httperr.CodeNotConfigured,
				"Configura las reglas antes de clasificar.")
			return
		}
		httperr.Internal(c, "failed_to_classify", "Error al clasificar clientes.")
		return
	}

	httpresp.List(c, customers)
}

// ======================================================
// GET CUSTOMER
// ======================================================

func (h *CustomerHandler) Get(c *gin.Context) {
	id := c.Param("id")

	customer, err := h.findCustomerUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, httperr.CodeCustomerNotFound, "Cliente no encontrado.")
		return
	}

	httpresp.OK(c, customer)
}

// ======================================================
// LIST BY TIER
// ======================================================

func (h *CustomerHandler) ListByTier(c *gin.Context) {
	tierStr := c.Query("tier")
	if tierStr == "" {
		httperr.BadRequest(c, "missing_tier", "Categoría obligatoria (?tier=).")
		return
	}

	level, ok := models.ParseTierLevel(tierStr)
	if !ok {
		httperr.BadRequest(c, "invalid_tier", "Categoría desconocida.")
		return
	}

	customers, err := h.listByTierUC.Execute(c.Request.Context(), level)
	if err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Error al listar clientes.")
		return
	}

	httpresp.List(c, customers)
}
