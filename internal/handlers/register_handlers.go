package handlers

import (
	"net/http"

	"github.com/SscSPs/homeledger/cmd/docs"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/middleware"
	"github.com/SscSPs/homeledger/internal/platform/config"
	"github.com/SscSPs/homeledger/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.ActorMiddleware(cfg.DefaultUserID))

	registerContactRoutes(v1, service.Contact, service.Balance)
	registerSplitRoutes(v1, service.Split)
	registerBalanceRoutes(v1, service.Balance)
	registerReceiptRoutes(v1, service.Receipt)
	registerRecurringRoutes(v1, service.Recurring)
	registerProfileRoutes(v1, service.Profile)
	registerRoommateRoutes(v1, service.Roommate, service.ChoreStats)
	registerChoreRoutes(v1, service.Chore)
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
