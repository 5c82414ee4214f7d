package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	apisetup "rewards-server/internal/api"
	"rewards-server/internal/apierrors"
	"rewards-server/internal/bootstrap"
	"rewards-server/internal/config"
	"rewards-server/internal/observability"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	readHeaderTimeout = 10 * time.Second
	requestTimeout    = 30 * time.Second
	idleTimeout       = 2 * time.Minute
	shutdownTimeout   = 15 * time.Second
)

// devOrigin is the merchant dashboard's local dev server
const devOrigin = "http://localhost:3000"

// Server encapsulates the HTTP server and its dependencies
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger
	serveErr   chan error
}

// New creates a new Server instance
func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config:   cfg,
		deps:     deps,
		logger:   logger,
		serveErr: make(chan error, 1),
	}
}

// Setup configures the HTTP router with middleware and routes
func (s *Server) Setup() {
	s.router = gin.New()
	apierrors.UseJSONFieldNames()

	s.router.Use(cors.New(corsConfig(s.config.Server.AllowedOrigins, os.Getenv("GO_ENV") == "production")))
	s.router.Use(observability.Middleware(s.logger))

	api := apisetup.New(
		s.router.Group("/"),
		s.deps.AuthHandler,
		s.deps.AttributionHandler,
		s.deps.ReferralHandler,
		s.deps.CampaignHandler,
		s.deps.RewardsHandler,
		s.deps.RateLimiter,
	)
	api.RegisterRoutes()
}

// corsConfig allows the configured merchant dashboard origins. Without any configured origin
// every origin is allowed, but credentials are not.
func corsConfig(allowedOrigins []string, production bool) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Request-ID"}
	cfg.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"}

	origins := append([]string(nil), allowedOrigins...)
	if !production && len(origins) > 0 {
		origins = append(origins, devOrigin)
	}

	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// Start binds the listen port and serves requests in the background. Bind errors are
// returned directly; later serve errors end WaitForShutdown.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.config.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       requestTimeout,
		WriteTimeout:      requestTimeout,
		IdleTimeout:       idleTimeout,
	}

	go func() {
		s.logger.Info(observability.WithFields(ctx, observability.Field{Key: "addr", Value: addr}), "server listening")
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.serveErr <- err
		}
	}()

	return nil
}

// WaitForShutdown blocks until SIGINT/SIGTERM or a serve failure, drains in-flight requests
// and releases dependencies.
func (s *Server) WaitForShutdown(ctx context.Context) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var serveErr error
	select {
	case sig := <-quit:
		s.logger.Info(observability.WithFields(ctx, observability.Field{Key: "signal", Value: sig.String()}), "shutting down server")
	case serveErr = <-s.serveErr:
		s.logger.Error(ctx, "server stopped unexpectedly", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	shutdownErr := s.httpServer.Shutdown(shutdownCtx)
	s.deps.Cleanup()

	if serveErr != nil {
		return fmt.Errorf("server failed: %w", serveErr)
	}
	if shutdownErr != nil {
		return fmt.Errorf("server forced to shutdown: %w", shutdownErr)
	}

	s.logger.Info(ctx, "server exited gracefully")
	return nil
}
