package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/audit"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/config"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/engine"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/handlers"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/ingest"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/middleware"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/timezone"
	ucLoyalty "github.com/BruksfildServices01/restaurant-loyalty/internal/usecase/loyalty"
	ucReport "github.com/BruksfildServices01/restaurant-loyalty/internal/usecase/report"
)

func RegisterRoutes(r *gin.Engine, eng *engine.Engine, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	csvReader := ingest.NewCSVReader(timezone.Location(cfg.Timezone), log)

	auditStore := audit.NewStore()
	auditDispatcher := audit.NewDispatcher(auditStore, log)

	// ======================================================
	// USE CASES — LOYALTY
	// ======================================================
	configureRulesUC := ucLoyalty.NewConfigureRules(
		eng,
		auditDispatcher,
	)

	importReservationsUC := ucLoyalty.NewImportReservations(
		eng,
		csvReader,
		auditDispatcher,
	)

	classifyAllUC := ucLoyalty.NewClassifyAll(
		eng,
		auditDispatcher,
	)

	findCustomerUC := ucLoyalty.NewFindCustomer(eng)
	listByTierUC := ucLoyalty.NewListByTier(eng)

	// ======================================================
	// USE CASES — REPORT
	// ======================================================
	rankingUC := ucReport.NewRanking(eng)
	visitHistoryUC := ucReport.NewVisitHistory(eng)
	visitsByMonthUC := ucReport.NewVisitsByMonth(eng, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)
	rulesHandler := handlers.NewRulesHandler(eng, configureRulesUC)
	importHandler := handlers.NewImportHandler(importReservationsUC)

	customerHandler := handlers.NewCustomerHandler(
		classifyAllUC,
		findCustomerUC,
		listByTierUC,
	)

	reportHandler := handlers.NewReportHandler(
		rankingUC,
		visitHistoryUC,
		visitsByMonthUC,
		auditDispatcher,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditStore)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/rules", rulesHandler.Get)
			secured.PUT("/rules", rulesHandler.Update)

			secured.POST("/reservations/import", importHandler.Import)
			secured.POST("/classify", customerHandler.Classify)

			// ------------------------------
			// CUSTOMERS
			// ------------------------------
			secured.GET("/customers", customerHandler.ListByTier)
			secured.GET("/customers/:id", customerHandler.Get)
			secured.GET("/customers/:id/history", reportHandler.VisitHistory)
			secured.GET("/customers/:id/history/export", reportHandler.ExportVisitHistory)
			secured.GET("/customers/:id/visits-by-month", reportHandler.VisitsByMonth)

			// ------------------------------
			// RANKING
			// ------------------------------
			secured.GET("/ranking", reportHandler.Ranking)
			secured.GET("/ranking/export", reportHandler.ExportRanking)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
