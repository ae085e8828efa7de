package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"cseboard/internal/middleware"
	"cseboard/pkg/log"
	"cseboard/pkg/metrics"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Record store
	db       *sql.DB
	dbDriver string
	table    string
	cache    CacheConfig

	// Edge
	middleware middleware.Config

	// Observability
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

// CacheConfig sizes the customer detail read cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Record store
	DB       *sql.DB
	DBDriver string
	Table    string
	Cache    CacheConfig

	Middleware middleware.Config

	// Registry receives the service collectors and backs /metrics.
	// A fresh registry is created when nil.
	Registry *prometheus.Registry
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		db:              cfg.DB,
		dbDriver:        cfg.DBDriver,
		table:           cfg.Table,
		cache:           cfg.Cache,
		middleware:      cfg.Middleware,
		registry:        cfg.Registry,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}
	if srv.registry == nil {
		srv.registry = prometheus.NewRegistry()
	}
	m, err := metrics.New(srv.registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	srv.metrics = m

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.dbDriver == "" {
		return errors.New("database driver is required")
	}
	return nil
}

// Handler exposes the configured router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (srv *HTTPServer) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	srv.l.Info(context.Background(), "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
