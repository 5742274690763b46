package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/uaclass/pkg/httpserver"
	"github.com/dmitrymomot/uaclass/pkg/logger"
	"github.com/dmitrymomot/uaclass/pkg/useragent"
)

// RouterOptions configures the classify API router.
type RouterOptions struct {
	// Logger receives request and classification logs. Nil discards them.
	Logger *slog.Logger
	// Metrics is served on /metrics. Nil creates a fresh set.
	Metrics *Metrics
}

// NewRouter mounts the classify API:
//
//	GET  /classify   classify ?ua=... or the caller's own User-Agent
//	POST /classify   classify {"user_agent": "..."} or {"user_agents": [...]}
//	GET  /healthz    liveness probe
//	GET  /metrics    Prometheus metrics
func NewRouter(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}
	h := &handlers{log: log.With(logger.Component("api")), metrics: metrics}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(useragent.Middleware)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/classify", h.classifyQuery)
	r.Post("/classify", h.classifyBody)

	return r
}
