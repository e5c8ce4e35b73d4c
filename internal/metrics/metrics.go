package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "recipecost"

// Metrics groups the Prometheus collectors of the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	RPCRequests       *prometheus.CounterVec
	RPCDuration       *prometheus.HistogramVec
	RecipesPriced     prometheus.Counter
	RepricingRuns     *prometheus.CounterVec
	RepricingFailures prometheus.Counter
}

// New creates the collectors on a dedicated registry, alongside the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grpc_requests_total",
			Help:      "Total number of gRPC requests by method and status code.",
		}, []string{"method", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grpc_request_duration_ms",
			Help:      "gRPC request latency distribution in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"method"}),
		RecipesPriced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipes_priced_total",
			Help:      "Number of recipe prices computed and persisted.",
		}),
		RepricingRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repricing_runs_total",
			Help:      "Number of full repricing runs by result.",
		}, []string{"result"}),
		RepricingFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repricing_failures_total",
			Help:      "Number of recipes that failed to reprice during a full run.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RPCRequests,
		m.RPCDuration,
		m.RecipesPriced,
		m.RepricingRuns,
		m.RepricingFailures,
	)
	return m
}

// ObserveRPC records one finished RPC.
func (m *Metrics) ObserveRPC(method, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RPCRequests.WithLabelValues(method, code).Inc()
	m.RPCDuration.WithLabelValues(method).Observe(DurationMillis(elapsed))
}

// RecipePriced counts a persisted recipe price.
func (m *Metrics) RecipePriced() {
	if m == nil {
		return
	}
	m.RecipesPriced.Inc()
}

// RepricingFailed counts a recipe that could not be repriced.
func (m *Metrics) RepricingFailed() {
	if m == nil {
		return
	}
	m.RepricingFailures.Inc()
}

// RepricingFinished counts a completed repricing run; result is "ok" or "partial".
func (m *Metrics) RepricingFinished(result string) {
	if m == nil {
		return
	}
	m.RepricingRuns.WithLabelValues(result).Inc()
}

// DurationMillis converts a duration to milliseconds for metric observation.
func DurationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
