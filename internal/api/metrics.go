package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/uaclass/pkg/useragent"
)

// Metrics bundles the collectors exposed on /metrics.
type Metrics struct {
	registry        *prometheus.Registry
	classifications *prometheus.CounterVec
	duration        *prometheus.HistogramVec
}

// NewMetrics registers the collectors on a fresh registry so several routers
// can coexist in one process.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		classifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "uaclass_classifications_total",
			Help: "User agents classified, by resolved platform and browser",
		}, []string{"platform", "browser"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "uaclass_http_request_duration_seconds",
			Help:    "Latency distribution of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// Observe counts one classification.
func (m *Metrics) Observe(ua useragent.UserAgent) {
	m.classifications.WithLabelValues(ua.Platform().String(), ua.Browser().String()).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request latency labelled with the chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.duration.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}
