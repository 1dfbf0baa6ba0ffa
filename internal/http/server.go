// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	applicationHTTP "github.com/verdantpay/onboarding/internal/application/http"
	extractionHTTP "github.com/verdantpay/onboarding/internal/extraction/http"
)

// Server represents the HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// RouterConfig holds the handlers and optional middleware used to assemble
// the API router.
type RouterConfig struct {
	ApplicationHandler *applicationHTTP.ApplicationHandler
	ExtractionHandler  *extractionHTTP.ExtractionHandler

	// CORS configuration. Disabled by default.
	CORSEnabled      bool
	CORSAllowOrigins string

	// Rate limiting configuration.
	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int

	// MetricsMiddleware records HTTP metrics when set.
	MetricsMiddleware gin.HandlerFunc
}

// NewServer creates a new HTTP server. The database connection is used only
// by the readiness probe and may be nil in tests.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the API router with the configured handlers and
// middleware stack.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}

	// Health and readiness endpoints (not rate limited)
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	if cfg.ApplicationHandler != nil {
		applications := v1.Group("/applications")
		applications.POST("", cfg.ApplicationHandler.SubmitHandler)
		applications.GET("", cfg.ApplicationHandler.ListHandler)
		applications.GET("/:id", cfg.ApplicationHandler.GetHandler)
		applications.PUT("/:id", cfg.ApplicationHandler.UpdateHandler)
		applications.GET("/:id/sensitive", cfg.ApplicationHandler.GetSensitiveHandler)
		applications.PATCH("/:id/status", cfg.ApplicationHandler.UpdateStatusHandler)
	}

	if cfg.ExtractionHandler != nil {
		extractions := v1.Group("/extractions")
		extractions.POST("", cfg.ExtractionHandler.ProtectHandler)
		extractions.GET("", cfg.ExtractionHandler.ListHandler)
		extractions.GET("/:id", cfg.ExtractionHandler.GetHandler)
		extractions.GET("/:id/sensitive", cfg.ExtractionHandler.GetSensitiveHandler)
	}

	s.router = router
}

// GetHandler returns the underlying router. Returns nil until SetupRouter
// has been called.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		s.SetupRouter(RouterConfig{})
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic. The server
// is ready when the database connection answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.String("error", err.Error()))
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}
