// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/logicbyfred/gallery-store/internal/config"
	"github.com/logicbyfred/gallery-store/internal/interfaces/http/middleware"
	"github.com/logicbyfred/gallery-store/internal/interfaces/http/routes"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// HealthChecker is a backing service the health endpoint pings
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	config      *config.Config
	gin         *gin.Engine
	httpServer  *http.Server
	deps        *routes.Dependencies
	redisClient *redis.Client
	checks      map[string]HealthChecker
	logger      *logrus.Logger
	startedAt   time.Time
}

// NewServer creates a new HTTP server instance with middleware and routes
// installed. checks maps a service name ("database", "redis") to its pinger.
func NewServer(cfg *config.Config, deps *routes.Dependencies, redisClient *redis.Client, checks map[string]HealthChecker) *Server {
	s := &Server{
		config:      cfg,
		gin:         gin.New(),
		deps:        deps,
		redisClient: redisClient,
		checks:      checks,
		logger:      deps.Logger,
		startedAt:   time.Now(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Handler exposes the router
func (s *Server) Handler() http.Handler {
	return s.gin
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.logger.WithFields(logrus.Fields{
		"port":     s.config.Server.Port,
		"base_url": fmt.Sprintf("http://localhost:%s/api/v1", s.config.Server.Port),
	}).Info("HTTP server starting")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("Shutting down HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	s.gin.Use(gin.Recovery())
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.Logger(s.logger))
	s.gin.Use(middleware.CORS(s.config))
	s.gin.Use(middleware.SecurityHeaders())

	if s.redisClient != nil {
		s.gin.Use(middleware.RateLimit(s.config, s.redisClient, s.logger))
	}

	// 1MB
	s.gin.Use(middleware.RequestSizeLimit(1 << 20))

	if s.config.Server.RequestTimeout > 0 {
		s.gin.Use(middleware.Timeout(s.config.Server.RequestTimeout))
	}
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readinessCheck)

	apiV1 := s.gin.Group("/api/v1")
	routes.SetupRoutes(apiV1, s.deps)

	if s.config.IsDevelopment() {
		s.gin.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":     s.config.App.Name,
				"version":     s.config.App.Version,
				"environment": s.config.App.Environment,
				"health":      "/health",
				"endpoints": gin.H{
					"products": "/api/v1/products",
					"cart":     "/api/v1/cart",
					"contact":  "/api/v1/contact",
					"auth":     "/api/v1/auth",
					"admin":    "/api/v1/admin",
				},
			})
		})
	}
}

// healthCheck pings every backing service
func (s *Server) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	for name, check := range s.checks {
		if err := check.Health(ctx); err != nil {
			s.logger.WithError(err).WithField("service", name).Warn("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  fmt.Sprintf("%s ping failed", name),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
	})
}

// readinessCheck handles readiness check requests
func (s *Server) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(s.startedAt).Round(time.Second).String(),
	})
}
