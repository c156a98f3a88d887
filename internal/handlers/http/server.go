// Package http exposes the indexed blocks and transactions as a read-only
// JSON API, together with health and Prometheus endpoints.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gabapcia/chainindex/internal/explorer"
	"github.com/gabapcia/chainindex/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ErrServerAlreadyStarted is returned if Start is called more than once.
var ErrServerAlreadyStarted = errors.New("server already started")

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultShutdownTimeout = 15 * time.Second
)

// Server serves the read API.
type Server struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc func()

	addr            string
	listenAddr      net.Addr
	explorer        explorer.Service
	registry        *prometheus.Registry
	allowedOrigins  []string
	shutdownTimeout time.Duration
	handler         http.Handler
}

type config struct {
	registry        *prometheus.Registry
	allowedOrigins  []string
	shutdownTimeout time.Duration
}

// Option configures the Server.
type Option func(*config)

// WithRegistry sets the Prometheus registry exposed on /metrics and used for
// request metrics. By default a fresh registry with the Go and process
// collectors is created.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(c *config) {
		c.registry = reg
	}
}

// WithAllowedOrigins restricts the CORS origins. Default: all origins.
func WithAllowedOrigins(origins ...string) Option {
	return func(c *config) {
		c.allowedOrigins = origins
	}
}

// WithShutdownTimeout bounds how long Close waits for in-flight requests.
//
// Default: 15s.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

// Addr returns the address the server listens on, or nil while stopped.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listenAddr
}

// Handler returns the router serving every endpoint.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	metrics := newRequestMetrics(s.registry)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(s.allowedOrigins))
	r.Use(metrics.instrument)

	r.Get("/healthz", healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry}))

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", s.listTransactions)
		r.Get("/{hash}", s.getTransaction)
	})

	r.Route("/blocks", func(r chi.Router) {
		r.Get("/", s.listBlocks)
		r.Get("/{number}", s.getBlock)
	})

	r.Get("/stats", s.getStats)

	return r
}

// Start listens on the configured address and serves in the background.
// Listen errors are returned; serve errors are logged.
//
// Returns ErrServerAlreadyStarted if the server is running.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServerAlreadyStarted
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:        s.handler,
		ReadTimeout:    defaultReadTimeout,
		WriteTimeout:   defaultWriteTimeout,
		MaxHeaderBytes: 1 << 20,
		BaseContext:    func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	s.listenAddr = ln.Addr()

	done := make(chan struct{})
	go func() {
		defer close(done)

		logger.Info(ctx, "api server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "api server stopped", "error", err)
		}
	}()

	s.closeFunc = func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn(ctx, "api server shutdown incomplete", "error", err)
		}
		<-done
	}
	s.isStarted = true

	return nil
}

// Close gracefully stops the server. It is safe to call Close even if the
// server was never started.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.listenAddr = nil
	s.isStarted = false
}

// NewServer creates a Server for addr backed by svc.
func NewServer(addr string, svc explorer.Service, opts ...Option) *Server {
	cfg := config{
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.registry == nil {
		cfg.registry = prometheus.NewRegistry()
		cfg.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	s := &Server{
		addr:            addr,
		explorer:        svc,
		registry:        cfg.registry,
		allowedOrigins:  cfg.allowedOrigins,
		shutdownTimeout: cfg.shutdownTimeout,
	}
	s.handler = s.routes()

	return s
}
