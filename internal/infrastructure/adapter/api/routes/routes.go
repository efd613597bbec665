package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the API serves
type Handlers struct {
	Account    *handler.AccountHandler
	Persona    *handler.PersonaHandler
	Generation *handler.GenerationHandler
	Payment    *handler.PaymentHandler
	Ledger     *handler.LedgerHandler
	Health     *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, auth middleware.Authenticator, gatherer prometheus.Gatherer) {
	router.GET("/health", h.Health.Health)
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/auth/register", h.Account.Register)
	v1.POST("/auth/login", h.Account.Login)
	v1.GET("/packages", h.Payment.Packages)
	v1.POST("/payments/webhook", h.Payment.Webhook)

	authed := v1.Group("", middleware.RequireAuth(auth))
	{
		authed.GET("/me", h.Account.Me)
		authed.DELETE("/me", h.Account.Delete)

		authed.POST("/personas", h.Persona.Create)
		authed.GET("/personas", h.Persona.List)
		authed.GET("/personas/:personaId", h.Persona.Get)
		authed.DELETE("/personas/:personaId", h.Persona.Delete)
		authed.GET("/personas/:personaId/messages", h.Persona.History)
		authed.POST("/personas/:personaId/messages", h.Generation.SendMessage)
		authed.POST("/personas/:personaId/images", h.Generation.GenerateImage)

		authed.GET("/gallery", h.Persona.Gallery)
		authed.POST("/gallery/:imageId/like", h.Persona.ToggleLike)

		authed.POST("/checkout", h.Payment.Checkout)
		authed.GET("/transactions", h.Ledger.History)
	}
}

// SetupMiddlewares configures global middlewares for the API.
// httpMetrics may be nil when metrics are disabled.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, corsOrigins []string, httpMetrics *middleware.HTTPMetrics) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(corsOrigins))
	if httpMetrics != nil {
		router.Use(httpMetrics.Handler())
	}
}
