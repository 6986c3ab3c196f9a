package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/portkey-planner/internal/app/domain/currency"
	"github.com/FACorreiaa/portkey-planner/internal/app/domain/planner"
	"github.com/FACorreiaa/portkey-planner/internal/pkg/config"
)

type AppHandlers struct {
	Planner  *planner.PlannerHandlers
	Currency *currency.CurrencyHandlers
}

func Setup(r *gin.Engine, cfg *config.Config, log *zap.Logger) {
	handlers := setupDependencies(cfg, log)
	setupRouter(r, handlers, log)
}

func setupDependencies(cfg *config.Config, log *zap.Logger) *AppHandlers {
	plannerService := planner.NewService(log, cfg.Planner.CacheTTL)
	currencyService := currency.NewService(log)

	return &AppHandlers{
		Planner:  planner.NewPlannerHandlers(plannerService, log),
		Currency: currency.NewCurrencyHandlers(currencyService, log),
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers, log *zap.Logger) {
	api := r.Group("/api")
	{
		api.POST("/generate_plan", h.Planner.GeneratePlan)
		api.POST("/convert_currency", h.Currency.ConvertCurrency)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
				"time":   time.Now().UTC(),
			})
		})
	}

	// 404 handler - must be last
	r.NoRoute(func(c *gin.Context) {
		log.Info("404 - Page not found",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.String("ip", c.ClientIP()),
		)
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}
