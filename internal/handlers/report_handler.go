package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/audit"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/export"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/httperr"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/httpresp"
	ucReport "github.com/BruksfildServices01/restaurant-loyalty/internal/usecase/report"
)

// ======================================================
// HANDLER
// ======================================================

type ReportHandler struct {
	rankingUC       *ucReport.Ranking
	visitHistoryUC  *ucReport.VisitHistory
	visitsByMonthUC *ucReport.VisitsByMonth
	audit           *audit.Dispatcher
}

func NewReportHandler(
	rankingUC *ucReport.Ranking,
	visitHistoryUC *ucReport.VisitHistory,
	visitsByMonthUC *ucReport.VisitsByMonth,
	audit *audit.Dispatcher,
) *ReportHandler {
	return &ReportHandler{
		rankingUC:       rankingUC,
		visitHistoryUC:  visitHistoryUC,
		visitsByMonthUC: visitsByMonthUC,
		audit:           audit,
	}
}

// ======================================================
// VISIT HISTORY
// ======================================================

func (h *ReportHandler) VisitHistory(c *gin.Context) {
	id := c.Param("id")

	history, err := h.visitHistoryUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, httperr.CodeCustomerNotFound, "Cliente no encontrado.")
		return
	}

	httpresp.List(c, history)
}

// ======================================================
// VISITS BY MONTH
// ======================================================

func (h *ReportHandler) VisitsByMonth(c *gin.Context) {
	id := c.Param("id")

	months := 6
	if s := c.Query("months"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 60 {
			httperr.BadRequest(c, "invalid_months", "Cantidad de meses inválida.")
			return
		}
		months = n
	}

	counts, err := h.visitsByMonthUC.Execute(c.Request.Context(), id, months)
	if err != nil {
		httperr.NotFound(c, httperr.CodeCustomerNotFound, "Cliente no encontrado.")
		return
	}

	httpresp.List(c, counts)
}

// ======================================================
// VISIT HISTORY EXPORT (CSV)
// ======================================================

func (h *ReportHandler) ExportVisitHistory(c *gin.Context) {
	id := c.Param("id")

	history, err := h.visitHistoryUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, httperr.CodeCustomerNotFound, "Cliente no encontrado.")
		return
	}

	rows := make([]export.HistoryRow, 0, len(history))
	for _, r := range history {
		rows = append(rows, export.HistoryRow{
			ReservationID: r.ID,
			CustomerID:    r.CustomerID,
			StartTime:     r.StartTime,
			PartySize:     r.PartySize,
		})
	}

	var buf bytes.Buffer
	if err := export.WriteVisitHistory(&buf, rows); err != nil {
		httperr.Internal(c, "failed_to_export", "Error al exportar el historial.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "history_exported",
		Entity:   "customer",
		EntityID: id,
		Metadata: map[string]any{
			"rows": len(rows),
		},
	})

	c.Header("Content-Disposition", `attachment; filename="history.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ======================================================
// RANKING
// ======================================================

func (h *ReportHandler) Ranking(c *gin.Context) {
	topN, ok := h.parseTopN(c)
	if !ok {
		return
	}

	entries, err := h.rankingUC.Execute(c.Request.Context(), topN)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotClassified) {
			httperr.Conflict(c, httperr.CodeNotClassified,
				"Ejecuta una clasificación antes de pedir el ranking.")
			return
		}
		httperr.Internal(c, "failed_to_rank", "Error al generar el ranking.")
		return
	}

	httpresp.List(c, entries)
}

// ======================================================
// RANKING EXPORT (CSV)
// ======================================================

func (h *ReportHandler) ExportRanking(c *gin.Context) {
	topN, ok := h.parseTopN(c)
	if !ok {
		return
	}

	entries, err := h.rankingUC.Execute(c.Request.Context(), topN)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotClassified) {
			httperr.Conflict(c, httperr.CodeNotClassified,
				"Ejecuta una clasificación antes de exportar el ranking.")
			return
		}
		httperr.Internal(c, "failed_to_rank", "Error al generar el ranking.")
		return
	}

	rows := make([]export.RankingRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, export.RankingRow{
			Rank:       e.Rank,
			CustomerID: e.CustomerID,
			Name:       e.Name,
			VisitCount: e.VisitCount,
			Tier:       string(e.Tier),
		})
	}

	var buf bytes.Buffer
	if err := export.WriteRanking(&buf, rows); err != nil {
		httperr.Internal(c, "failed_to_export", "Error al exportar el ranking.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action: "ranking_exported",
		Entity: "ranking",
		Metadata: map[string]any{
			"rows": len(rows),
		},
	})

	c.Header("Content-Disposition", `attachment; filename="ranking.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *ReportHandler) parseTopN(c *gin.Context) (int, bool) {
	topN := 0 // 0 = todos
	if s := c.Query("top"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			httperr.BadRequest(c, "invalid_top", "Parámetro 'top' inválido.")
			return 0, false
		}
		topN = n
	}
	return topN, true
}
