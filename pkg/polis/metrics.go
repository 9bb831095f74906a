package polis

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides Prometheus metrics for requests sent by the transport. It
// is safe for concurrent use.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec
	errorsTotal      *prometheus.CounterVec
}

// NewMetrics registers the polis collectors on registry. A nil registry uses
// prometheus.DefaultRegisterer.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "polis_requests_total",
				Help: "Total number of HTTP requests sent to the API",
			},
			[]string{"method", "code"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "polis_request_duration_seconds",
				Help:    "Time until the API response headers arrived",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		requestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "polis_requests_in_flight",
				Help: "Number of API requests currently in flight",
			},
			[]string{"method"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "polis_request_errors_total",
				Help: "Total number of API requests that failed before a response arrived",
			},
			[]string{"method"},
		),
	}
}

// Begin marks the start of a request and returns the function that records
// its outcome. A status of 0 with a non-nil err counts as an error.
func (m *Metrics) Begin(method string) func(status int, err error) {
	if m == nil {
		return func(int, error) {}
	}

	start := time.Now()
	inFlight := m.requestsInFlight.WithLabelValues(method)
	inFlight.Inc()

	return func(status int, err error) {
		inFlight.Dec()
		m.requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

		if err != nil {
			m.errorsTotal.WithLabelValues(method).Inc()

			return
		}

		m.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	}
}
