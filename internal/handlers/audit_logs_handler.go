package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/audit"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/httpresp"
)

type AuditLogsHandler struct {
	store *audit.Store
}

func NewAuditLogsHandler(store *audit.Store) *AuditLogsHandler {
	return &AuditLogsHandler{store: store}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.List())
}
