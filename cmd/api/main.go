package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/config"
	domain "github.com/BruksfildServices01/restaurant-loyalty/internal/domain/loyalty"
	enginepkg "github.com/BruksfildServices01/restaurant-loyalty/internal/engine"
	infraRepo "github.com/BruksfildServices01/restaurant-loyalty/internal/infra/repository"
	"github.com/BruksfildServices01/restaurant-loyalty/internal/routes"
)

func main() {

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, relying on system env vars")
	}

	cfg := config.Load()

	repo := infraRepo.NewVisitMemoryRepository()
	strategy := domain.NewStrategy(cfg.StrategyKind, cfg.UniquePerDay)

	eng := enginepkg.New(repo, strategy, cfg.Timezone, log)

	// la configuración por defecto cuenta como el primer configureRules
	if err := eng.ConfigureRules(context.Background(), cfg.DefaultRules); err != nil {
		log.Fatal("invalid default rule configuration", zap.Error(err))
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, eng, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
