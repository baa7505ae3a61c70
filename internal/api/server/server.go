package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tagin-labs/tagin-verifier/internal/adapter"
	"github.com/tagin-labs/tagin-verifier/internal/analytics"
	"github.com/tagin-labs/tagin-verifier/internal/api/middleware"
	"github.com/tagin-labs/tagin-verifier/internal/api/rest"
	"github.com/tagin-labs/tagin-verifier/internal/hashbind"
	"github.com/tagin-labs/tagin-verifier/internal/ledger"
	"github.com/tagin-labs/tagin-verifier/internal/logger"
	"github.com/tagin-labs/tagin-verifier/internal/scanlog"
	"github.com/tagin-labs/tagin-verifier/internal/store"
	"github.com/tagin-labs/tagin-verifier/internal/verifier"
)

// Config holds the server configuration
type Config struct {
	Debug                 bool
	Host                  string
	Port                  int
	ReadTimeout           time.Duration
	WriteTimeout          time.Duration
	IdleTimeout           time.Duration
	OrchestratorTaskQueue string
	Auth                  middleware.AuthConfig
}

// Dependencies holds the wired components the API surface is built on
type Dependencies struct {
	Binder       hashbind.Binder
	Ledger       ledger.Client
	Store        store.Store
	Verifier     verifier.Engine
	ScanLog      scanlog.Writer
	Analytics    analytics.Aggregator
	Orchestrator adapter.Orchestrator
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	deps       Dependencies
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, deps Dependencies) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.SetupCORS())

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Create REST handler
	restHandler := rest.NewHandler(
		s.deps.Binder,
		s.deps.Ledger,
		s.deps.Store,
		s.deps.Verifier,
		s.deps.ScanLog,
		s.deps.Analytics,
		s.deps.Orchestrator,
		s.config.OrchestratorTaskQueue,
	)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler, s.config.Auth)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
