// Package server exposes the scheduling pipeline over a JSON HTTP API.
//
// Every response uses the same envelope:
//
//	{"status": "ok", "request_id": "req_1a2b3c4d", "timestamp": "...", "data": {...}}
//	{"status": "error", "request_id": "...", "timestamp": "...", "error": {"code": "CYCLE_DETECTED", "message": "..."}}
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/critpath/internal/config"
	"github.com/matzehuels/critpath/pkg/cache"
	"github.com/matzehuels/critpath/pkg/observability"
	"github.com/matzehuels/critpath/pkg/pipeline"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// serve context is canceled.
const shutdownTimeout = 5 * time.Second

// Server is the critpath REST API server.
type Server struct {
	router    chi.Router
	logger    *log.Logger
	config    config.ServerConfig
	runner    *pipeline.Runner
	counters  *observability.Counters
	startTime time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithCounters serves a snapshot of c at GET /api/v1/stats. The caller
// registers c as the pipeline and HTTP hooks.
func WithCounters(c *observability.Counters) Option {
	return func(s *Server) { s.counters = c }
}

// New creates a new Server with all routes registered and opens the
// configured artifact cache.
func New(cfg config.ServerConfig, logger *log.Logger, opts ...Option) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("server")
	if cfg.MaxNodes <= 0 {
		cfg.MaxNodes = config.DefaultConfig().Server.MaxNodes
	}

	c, err := openCache(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.CacheEnabled() {
		logger.Debug("artifact cache", "backend", cfg.CacheBackend, "dir", cfg.CacheDir)
	}
	if p, ok := c.(pruner); ok {
		n, err := p.Prune(context.Background())
		if err != nil {
			logger.Warn("prune artifact cache", "error", err)
		} else if n > 0 {
			logger.Info("pruned expired artifacts", "count", n)
		}
	}

	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger,
		config:    cfg,
		runner:    pipeline.NewRunner(c, logger),
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s, nil
}

// pruner is a cache that can drop expired entries in bulk.
type pruner interface {
	Prune(ctx context.Context) (int64, error)
}

// openCache opens the configured artifact cache, or a NullCache when
// caching is disabled.
func openCache(cfg config.ServerConfig) (cache.Cache, error) {
	if !cfg.CacheEnabled() {
		return cache.NewNullCache(), nil
	}
	ttl := cfg.CacheTTL.Duration

	switch cfg.CacheBackend {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return cache.NewRedisCache(ctx, cfg.RedisURL, ttl)
	case "sqlite":
		if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir %s: %w", cfg.CacheDir, err)
		}
		path := filepath.Join(cfg.CacheDir, "artifacts.db")
		c, err := cache.NewSQLiteCache(context.Background(), path, ttl)
		if err != nil {
			return nil, fmt.Errorf("open cache %s: %w", path, err)
		}
		return c, nil
	default:
		c, err := cache.NewFileCache(cfg.CacheDir, ttl)
		if err != nil {
			return nil, fmt.Errorf("open cache %s: %w", cfg.CacheDir, err)
		}
		return c, nil
	}
}

// Close releases the server's artifact cache.
func (s *Server) Close() error {
	return s.runner.Close()
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		if s.counters != nil {
			r.Get("/stats", s.handleStats)
		}

		r.Route("/schedule", func(r chi.Router) {
			r.Post("/", s.handleSchedule)
			r.Post("/dot", s.handleScheduleDOT)
		})
	})
}

// ListenAndServe serves on the configured address until ctx is canceled,
// then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout.Duration,
		WriteTimeout: s.config.WriteTimeout.Duration,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.config.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
