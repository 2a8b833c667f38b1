package routes

import (
	"log"
	"time"

	"careerconnect/internal/api"
	"careerconnect/internal/api/handlers"
	"careerconnect/internal/api/middleware"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth         handlers.AuthHandlerInterface
	Users        handlers.UserHandlerInterface
	Jobs         handlers.JobHandlerInterface
	Applications handlers.ApplicationHandlerInterface
	Stats        handlers.StatsHandlerInterface
}

// Options carries the cross-cutting middleware and the probes used by /health.
type Options struct {
	Auth         gin.HandlerFunc
	Limiter      *middleware.RedisLimiter
	AuthRequests int
	AuthWindow   time.Duration
	Spec         *openapi3.T
	Health       map[string]handlers.Pinger
}

// RegisterRoutes sets up the API routes by calling resource-specific registration functions.
func RegisterRoutes(router *gin.Engine, h Handlers, opts Options) {
	apiGroup := router.Group("/api")

	contract := func(c *gin.Context) { c.Next() }
	if opts.Spec != nil {
		contract = api.RequestValidator(opts.Spec)
	}
	authThrottle := middleware.RateLimit(opts.Limiter, "auth", opts.AuthRequests, opts.AuthWindow)

	RegisterAuthRoutes(apiGroup, h.Auth, opts.Auth, authThrottle, contract)
	RegisterJobRoutes(apiGroup, h.Jobs, opts.Auth, contract)
	RegisterApplicationRoutes(apiGroup, h.Applications, opts.Auth, contract)
	RegisterUserRoutes(apiGroup, h.Users, opts.Auth, contract)
	RegisterStatsRoutes(apiGroup, h.Stats, opts.Auth, contract)

	router.GET("/health", handlers.HealthCheck(opts.Health))

	if opts.Spec != nil {
		log.Println("Configuring Swagger UI handler")
		router.GET("/openapi.json", api.SpecHandler(opts.Spec))
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/openapi.json")))
	}
}
