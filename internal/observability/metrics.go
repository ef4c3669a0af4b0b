package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apichat",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "apichat",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	HTTPInflight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "apichat",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "In-flight HTTP requests",
		},
		[]string{"path"},
	)

	LLMRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apichat",
			Subsystem: "llm",
			Name:      "requests_total",
			Help:      "Total number of calls to the LLM runtime",
		},
		[]string{"model", "outcome"},
	)

	LLMRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "apichat",
			Subsystem: "llm",
			Name:      "request_duration_seconds",
			Help:      "Duration of calls to the LLM runtime in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"model"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		HTTPInflight,
		LLMRequestsTotal,
		LLMRequestDuration,
	)
}

// Outcome labels for LLMRequestsTotal
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// ObserveHTTP records one completed HTTP request.
func ObserveHTTP(path, method string, status int, elapsed time.Duration) {
	statusLabel := strconv.Itoa(status)
	HTTPRequestsTotal.WithLabelValues(path, method, statusLabel).Inc()
	HTTPRequestDuration.WithLabelValues(path, method, statusLabel).Observe(elapsed.Seconds())
}

// ObserveLLM records one call to the LLM runtime.
func ObserveLLM(model string, err error, elapsed time.Duration) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	LLMRequestsTotal.WithLabelValues(model, outcome).Inc()
	LLMRequestDuration.WithLabelValues(model).Observe(elapsed.Seconds())
}
