package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eats",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "eats",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// GuardDecisions counts authorization outcomes per root operation.
	GuardDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eats",
			Subsystem: "graphql",
			Name:      "guard_decisions_total",
			Help:      "Authorization decisions by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "eats",
			Subsystem: "graphql",
			Name:      "operation_duration_seconds",
			Help:      "Root operation resolve duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"operation", "status"},
	)
)

func RecordRequest(method, endpoint, status string, seconds float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(seconds)
}

func RecordDecision(operation, outcome string) {
	GuardDecisions.WithLabelValues(operation, outcome).Inc()
}

func RecordOperation(operation, status string, seconds float64) {
	OperationDuration.WithLabelValues(operation, status).Observe(seconds)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
