package handlers

import (
	"log/slog"

	"github.com/SscSPs/collections_reconciliation/cmd/docs"
	portssvc "github.com/SscSPs/collections_reconciliation/internal/core/ports/services"
	"github.com/SscSPs/collections_reconciliation/internal/middleware"
	"github.com/SscSPs/collections_reconciliation/internal/platform/config"
	"github.com/SscSPs/collections_reconciliation/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const fallbackImportRateLimit = "30-M"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services, posthogClient)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(posthogClient))

	registerStatementRoutes(v1, services.Statement, posthogClient, importRateLimit(cfg.ImportRateLimit))
	registerMatchingRoutes(v1, services.Matching)
	registerReconciliationRoutes(v1, services.Reconciliation, posthogClient)
	registerDiscrepancyRoutes(v1, services.Discrepancy)
}

// importRateLimit builds the per-user limiter for statement uploads.
func importRateLimit(formatted string) gin.HandlerFunc {
	l, err := middleware.NewRateLimiter(formatted)
	if err != nil {
		slog.Warn("Invalid import rate limit, using fallback",
			slog.String("rate", formatted),
			slog.String("fallback", fallbackImportRateLimit),
			slog.String("error", err.Error()))
		l, _ = middleware.NewRateLimiter(fallbackImportRateLimit)
	}
	return middleware.RateLimit(l)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
