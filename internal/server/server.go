package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"slices"
	"time"

	"careerconnect/internal/api"
	"careerconnect/internal/api/handlers"
	"careerconnect/internal/api/middleware"
	"careerconnect/internal/api/routes"
	"careerconnect/internal/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	app    *app.Application
	http   *http.Server
}

func NewServer(app *app.Application) (*Server, error) {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	log.Printf("Configuring CORS for origins: %v", app.Config.CORS.AllowedOrigins)
	router.Use(cors.New(corsConfig(app.Config.CORS.AllowedOrigins)))

	router.SetTrustedProxies(nil) // Remove the gin warning about untrusted proxies

	doc, err := api.LoadSpec()
	if err != nil {
		return nil, err
	}

	svc := app.Services
	routes.RegisterRoutes(router, routes.Handlers{
		Auth:         handlers.NewAuthHandler(svc.Auth, app.Validator),
		Users:        handlers.NewUserHandler(svc.Users, app.Validator),
		Jobs:         handlers.NewJobHandler(svc.Jobs, app.Validator),
		Applications: handlers.NewApplicationHandler(svc.Applications, app.Validator),
		Stats:        handlers.NewStatsHandler(svc.Stats),
	}, routes.Options{
		Auth:         middleware.JWTAuthMiddleware(app.Tokens, svc.Auth),
		Limiter:      middleware.NewRedisLimiter(app.RedisClient),
		AuthRequests: app.Config.RateLimit.AuthRequests,
		AuthWindow:   app.Config.RateLimit.AuthWindow,
		Spec:         doc,
		Health: map[string]handlers.Pinger{
			"database": app.DBPool.Ping,
			"redis":    func(ctx context.Context) error { return app.RedisClient.Ping(ctx).Err() },
		},
	})

	addr := fmt.Sprintf("%s:%d", app.Config.Server.Host, app.Config.Server.Port)
	return &Server{
		router: router,
		app:    app,
		http: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

func corsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return slices.Contains(origins, "*") || slices.Contains(origins, origin)
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("Server starting on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
