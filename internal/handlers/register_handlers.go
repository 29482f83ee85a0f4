package handlers

import (
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/cmd/docs"
	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/middleware"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Canonical API behind JWT auth
	setupAPIV1Routes(r, cfg, services)

	// Pre-v1 aliases, same auth
	legacy := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))
	registerLegacyRoutes(legacy, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the entity
// route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User, services.AccessGate, services.LoginHistory)
	registerProductRoutes(v1, services.Product)
	registerInventoryRoutes(v1, services.Inventory)
	registerDailyStockRoutes(v1, services.DailyStock)
	registerSaleRoutes(v1, services.Sale)
	registerReportingRoutes(v1, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
