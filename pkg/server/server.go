package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/woragis/docs-service/pkg/config"
	"github.com/woragis/docs-service/pkg/docs"
	"github.com/woragis/docs-service/pkg/server/handlers"
	"github.com/woragis/docs-service/pkg/server/middleware"
	"github.com/woragis/docs-service/pkg/telemetry/health"
	"github.com/woragis/docs-service/pkg/telemetry/metrics"
)

// Options bundle the dependencies a Server needs.
type Options struct {
	Config    *config.Config
	Catalog   *docs.Catalog
	Service   *docs.Service
	Checker   *health.Checker
	Collector *metrics.Collector
	Logger    *slog.Logger
	Version   string
}

// Server is the HTTP server for the docs service.
type Server struct {
	config    *config.Config
	catalog   *docs.Catalog
	service   *docs.Service
	checker   *health.Checker
	collector *metrics.Collector
	logger    *slog.Logger
	version   string

	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// New creates a docs server from the given options.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		config:       opts.Config,
		catalog:      opts.Catalog,
		service:      opts.Service,
		checker:      opts.Checker,
		collector:    opts.Collector,
		logger:       logger,
		version:      opts.Version,
		shutdownChan: make(chan struct{}),
	}
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	handler := s.setupRoutes()

	srv := s.config.Server
	s.httpServer = &http.Server{
		Addr:           srv.ListenAddress,
		Handler:        handler,
		ReadTimeout:    srv.ReadTimeout,
		WriteTimeout:   srv.WriteTimeout,
		IdleTimeout:    srv.IdleTimeout,
		MaxHeaderBytes: srv.MaxHeaderBytes,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting docs server",
			"address", srv.ListenAddress,
			"docs_root", s.config.Docs.Root,
		)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		s.logger.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		s.logger.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server, draining in-flight requests
// up to the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		s.logger.Info("initiating graceful shutdown",
			"timeout", s.config.Server.ShutdownTimeout.String(),
		)

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				s.logger.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		s.logger.Info("docs server stopped")
	})

	return shutdownErr
}

// Stop requests an asynchronous shutdown of a running server.
func (s *Server) Stop() {
	select {
	case <-s.shutdownChan:
	default:
		close(s.shutdownChan)
	}
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the configured HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

// setupRoutes configures HTTP routes and the middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	docsHandler := handlers.NewDocsHandler(s.catalog, s.service, s.docsMetrics())

	mux.HandleFunc("GET /{$}", handlers.InfoHandler(s.version))
	mux.HandleFunc("GET /api/v1/docs/{$}", docsHandler.List)
	mux.HandleFunc("GET /api/v1/docs/{path...}", docsHandler.Get)
	mux.HandleFunc("GET /healthz", s.checker.Handler())

	if s.collector != nil && s.collector.Enabled() {
		mux.Handle("GET "+s.config.Telemetry.Metrics.Path, s.collector.Handler())
	}

	// Metrics wraps the mux directly so the matched route pattern is
	// available on the request after dispatch.
	var handler http.Handler = mux
	if s.collector != nil {
		handler = middleware.Metrics(s.collector.HTTP())(handler)
	}
	handler = middleware.Timeout(s.config.Server.WriteTimeout)(handler)
	handler = middleware.CORS(&s.config.Server.CORS)(handler)
	handler = middleware.Logging(s.logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

func (s *Server) docsMetrics() *metrics.DocsMetrics {
	if s.collector == nil {
		return nil
	}
	return s.collector.Docs()
}
