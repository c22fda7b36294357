package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "htmf"

// metrics holds the Prometheus collectors for the preview server.
type metrics struct {
	requestsTotal  *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
	renderedNodes  prometheus.Histogram
	renderedBytes  prometheus.Counter
	rateLimited    prometheus.Counter
}

func newMetrics(registry prometheus.Registerer) *metrics {
	factory := promauto.With(registry)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "preview",
			Name:      "requests_total",
			Help:      "Total number of preview HTTP requests",
		}, []string{"route", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "preview",
			Name:      "render_duration_seconds",
			Help:      "Time to load and render one page in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"format"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "preview",
			Name:      "render_errors_total",
			Help:      "Total number of pages that failed to load, by error code",
		}, []string{"code"}),

		renderedNodes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "preview",
			Name:      "rendered_nodes",
			Help:      "Number of nodes per rendered tree",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 to 262144
		}),

		renderedBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "preview",
			Name:      "rendered_bytes_total",
			Help:      "Total HTML bytes written by the renderer",
		}),

		rateLimited: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "preview",
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter",
		}),
	}
}
