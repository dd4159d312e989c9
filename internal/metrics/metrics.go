package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the process registry and the instruments the server
// records into. A dedicated registry keeps test processes from fighting
// over the global default.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	completionsTotal   *prometheus.CounterVec
	completionDuration prometheus.Histogram
}

// New creates a Metrics with all instruments registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pantrychef",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pantrychef",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		completionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pantrychef",
			Name:      "completions_total",
			Help:      "Upstream completion calls by outcome.",
		}, []string{"outcome"}),
		completionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pantrychef",
			Name:      "completion_duration_seconds",
			Help:      "Upstream completion call latency.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
		}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GinMiddleware records one counter increment and one latency sample per
// request. Unmatched routes are collapsed into a single label value so
// scans cannot explode the cardinality.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestsTotal.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}

// ObserveCompletion records the outcome and latency of one upstream
// completion call. It satisfies service.CompletionObserver.
func (m *Metrics) ObserveCompletion(outcome string, duration time.Duration) {
	m.completionsTotal.WithLabelValues(outcome).Inc()
	m.completionDuration.Observe(duration.Seconds())
}
