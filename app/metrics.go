package app

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/advdv/petite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics for served requests.
type Metrics struct {
	registry *prometheus.Registry

	responsesTotal  *prometheus.CounterVec
	requestDuration prometheus.Histogram
}

// NewMetrics registers the request metrics on a fresh registry.
//
// Metrics collected:
//   - petite_responses_total: Counter of responses by status code
//   - petite_request_duration_seconds: Histogram of time spent routing and handling
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		responsesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petite",
			Name:      "responses_total",
			Help:      "Total number of responses by status code",
		}, []string{"code"}),
		requestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "petite",
			Name:      "request_duration_seconds",
			Help:      "Time spent routing and handling a request in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Middleware records every request. The status is the one the outcome maps to; a failure while rendering the
// result is not visible here.
func (m *Metrics) Middleware() petite.Middleware {
	return func(next petite.Endpoint) petite.Endpoint {
		return petite.EndpointFunc(func(ctx context.Context, r *petite.Request) (petite.Result, error) {
			start := time.Now()
			res, err := next.ServePetite(ctx, r)

			m.requestDuration.Observe(time.Since(start).Seconds())
			m.responsesTotal.WithLabelValues(strconv.Itoa(petite.StatusCode(res, err))).Inc()

			return res, err
		})
	}
}

// Handler exposes the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the registry the metrics are registered on, so applications can add their own.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
