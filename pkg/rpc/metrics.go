package rpc

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// statusTransportError labels requests that never produced an HTTP status.
const statusTransportError = "transport_error"

// Metrics contains the Prometheus metrics recorded per dispatched request.
// A nil *Metrics is valid and records nothing, so instrumentation stays
// opt-in for library users.
type Metrics struct {
	// Requests counts dispatched requests by method and outcome status.
	Requests *prometheus.CounterVec
	// Duration tracks the round-trip time per method.
	Duration *prometheus.HistogramVec
}

// NewMetrics initializes and registers the metrics on the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry initializes and registers the metrics with a custom
// registry. A nil registry falls back to the default one.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "electrum_rpc_requests_total",
				Help: "The total number of RPC requests by method and status",
			},
			[]string{"method", "status"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "electrum_rpc_request_duration_seconds",
				Help:    "The round-trip duration of RPC requests by method",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// recordRequest tracks one finished exchange. An HTTP status code of zero
// means the request failed before any response arrived.
func (m *Metrics) recordRequest(method Method, statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}

	status := statusTransportError
	if statusCode != 0 {
		status = strconv.Itoa(statusCode)
	}

	m.Requests.WithLabelValues(method.String(), status).Inc()
	m.Duration.WithLabelValues(method.String()).Observe(elapsed.Seconds())
}
