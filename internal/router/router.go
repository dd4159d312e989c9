package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/pantry-chef/config"
	"github.com/pageza/pantry-chef/internal/api"
	"github.com/pageza/pantry-chef/internal/metrics"
	"github.com/pageza/pantry-chef/internal/middleware"
	"github.com/pageza/pantry-chef/web"
)

// SetupRouter configures middleware, page templates and application routes.
func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
	pageHandler *api.PageHandler,
	suggestionHandler *api.SuggestionHandler,
	catalogHandler *api.CatalogHandler,
	healthHandler *api.HealthHandler,
) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.RequestLogger(logger))
	router.Use(m.GinMiddleware())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.SetHTMLTemplate(web.Templates())
	router.StaticFS("/static", web.StaticFS())

	pageHandler.RegisterRoutes(router)
	healthHandler.RegisterRoutes(&router.RouterGroup)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		suggestionHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
	}

	return router
}
