// Package metrics exports ledger and generation counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
)

const namespace = "companion_ledger"

// PrometheusMetrics implements core.Metrics
type PrometheusMetrics struct {
	ledgerOps      *prometheus.CounterVec
	ledgerCredits  *prometheus.CounterVec
	generations    *prometheus.CounterVec
	generationTime *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the collectors and registers them with reg
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		ledgerOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Ledger mutations by kind and outcome.",
		}, []string{"kind", "outcome"}),
		ledgerCredits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "credits_total",
			Help:      "Credits moved by applied ledger mutations.",
		}, []string{"kind"}),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "requests_total",
			Help:      "Paid generation requests by kind and terminal state.",
		}, []string{"kind", "state"}),
		generationTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "provider_duration_seconds",
			Help:      "Time spent waiting for the external responder or image provider.",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 80, 160},
		}, []string{"kind"}),
	}

	for _, c := range []prometheus.Collector{m.ledgerOps, m.ledgerCredits, m.generations, m.generationTime} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

var _ core.Metrics = (*PrometheusMetrics)(nil)

// LedgerOperation counts a ledger mutation; credits are only added when applied
func (m *PrometheusMetrics) LedgerOperation(kind string, outcome string, amount int64) {
	m.ledgerOps.WithLabelValues(kind, outcome).Inc()
	if outcome == "applied" && amount > 0 {
		m.ledgerCredits.WithLabelValues(kind).Add(float64(amount))
	}
}

// GenerationOutcome counts a generation request reaching a terminal state
func (m *PrometheusMetrics) GenerationOutcome(kind string, state string) {
	m.generations.WithLabelValues(kind, state).Inc()
}

// ObserveGeneration records provider latency
func (m *PrometheusMetrics) ObserveGeneration(kind string, elapsed core.Duration) {
	m.generationTime.WithLabelValues(kind).Observe(elapsed.Std().Seconds())
}

// NoopMetrics discards everything
type NoopMetrics struct{}

// NewNoopMetrics creates a metrics sink for tests and disabled metrics
func NewNoopMetrics() core.Metrics { return NoopMetrics{} }

func (NoopMetrics) LedgerOperation(string, string, int64)   {}
func (NoopMetrics) GenerationOutcome(string, string)        {}
func (NoopMetrics) ObserveGeneration(string, core.Duration) {}
