package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/api/docs"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	openapi "github.com/go-openapi/runtime/middleware"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Assistant *handler.AssistantHandler
	Purchase  *handler.PurchaseHandler
	Health    *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/", h.Health.Root)
	router.GET("/health", h.Health.Health)

	router.POST("/gold-assistant", h.Assistant.Ask)
	router.POST("/purchase-gold", h.Purchase.PurchaseGold)

	// GET /purchases/:userId
	router.GET("/purchases/:userId", h.Purchase.ListPurchases)

	router.GET("/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", docs.OpenAPISpec)
	})
	swaggerUI := openapi.SwaggerUI(openapi.SwaggerUIOpts{
		Path:    "docs",
		SpecURL: "/openapi.yaml",
		Title:   "Gold Assistant API",
	}, nil)
	router.GET("/docs", gin.WrapH(swaggerUI))

	router.HandleMethodNotAllowed = true
	router.NoRoute(middleware.NotFound())
	router.NoMethod(middleware.MethodNotAllowed())
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, corsConf config.CORSConfig) {
	// request ID first so every later middleware can log it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(corsConf))
}

// NewRouter builds a gin engine with middlewares and routes
func NewRouter(logger coreport.Logger, timeProvider coreport.TimeProvider, corsConf config.CORSConfig, h Handlers) *gin.Engine {
	router := gin.New()
	_ = router.SetTrustedProxies(nil)

	SetupMiddlewares(router, logger, timeProvider, corsConf)
	SetupRoutes(router, h)

	return router
}
