package preview

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/htmf/internal/errors"
	"github.com/vango-dev/htmf/pkg/render"
)

const defaultTracerName = "htmf/preview"

// Config configures the preview server.
type Config struct {
	// Addr is the listen address (default: "localhost:7070").
	Addr string

	// Dir is the directory of pages to serve. Ignored when FS is set.
	Dir string

	// FS overrides Dir as the source of pages.
	FS fs.FS

	// Renderer is the layout used unless a request asks for ?pretty=1.
	Renderer render.RendererConfig

	// RateLimit is the steady per-client request rate. Zero disables limiting.
	RateLimit float64

	// Burst is the per-client burst size.
	Burst int

	// Metrics exposes Prometheus metrics on /metrics.
	Metrics bool

	// Registry receives the server's metrics. A fresh registry is created
	// when nil.
	Registry *prometheus.Registry

	// TracerName names the OpenTelemetry tracer (default: "htmf/preview").
	TracerName string

	// ShutdownTimeout bounds graceful shutdown (default: 5s).
	ShutdownTimeout time.Duration

	// Logger receives request and lifecycle logs (default: slog.Default()).
	Logger *slog.Logger
}

// Server renders node trees from a directory over HTTP.
type Server struct {
	config   Config
	fsys     fs.FS
	router   chi.Router
	compact  *render.Renderer
	pretty   *render.Renderer
	metrics  *metrics
	registry *prometheus.Registry
	tracer   trace.Tracer
	logger   *slog.Logger
}

// New creates a preview server. Nothing is read from disk until a request
// arrives.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = "localhost:7070"
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.TracerName == "" {
		cfg.TracerName = defaultTracerName
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}

	fsys := cfg.FS
	if fsys == nil {
		fsys = os.DirFS(cfg.Dir)
	}

	prettyConfig := cfg.Renderer
	prettyConfig.Pretty = true

	s := &Server{
		config:   cfg,
		fsys:     fsys,
		compact:  render.NewRenderer(cfg.Renderer),
		pretty:   render.NewRenderer(prettyConfig),
		metrics:  newMetrics(cfg.Registry),
		registry: cfg.Registry,
		tracer:   otel.Tracer(cfg.TracerName),
		logger:   cfg.Logger.With("component", "preview"),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.logRequests)
	if s.config.RateLimit > 0 {
		r.Use(rateLimit(s.config.RateLimit, s.config.Burst, s.metrics))
	}

	r.Get("/", s.handleIndex)
	r.Get("/render/*", s.handleRender)
	r.Get("/healthz", s.handleHealth)
	if s.config.Metrics {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return errors.New("H060").
			WithDetail("Cannot listen on " + s.config.Addr).
			Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server starting", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New("H060").Wrap(err)

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return errors.New("H060").Wrap(err)
		}
		s.logger.Info("preview server shutdown complete")
		return nil
	}
}
