package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts rule runs and primitive calls on a private registry, so
// several engines can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	// runs counts finished rules by verdict
	runs *prometheus.CounterVec
	// iterations counts single sessions by verdict
	iterations *prometheus.CounterVec

	assertions  *prometheus.CounterVec
	assumptions *prometheus.CounterVec
}

// NewMetrics creates and registers the counters.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "formal_rule_runs_total",
			Help: "Total rule runs by verdict",
		}, []string{"rule", "verdict"}),
		iterations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "formal_iterations_total",
			Help: "Total verification sessions by verdict",
		}, []string{"rule", "verdict"}),
		assertions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "formal_assertions_total",
			Help: "Total assert primitives issued",
		}, []string{"rule"}),
		assumptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "formal_assumptions_total",
			Help: "Total assume primitives issued",
		}, []string{"rule"}),
	}
	m.registry.MustRegister(m.runs, m.iterations, m.assertions, m.assumptions)
	return m
}

func (m *Metrics) observeSession(rule string, out Outcome) {
	m.iterations.WithLabelValues(rule, out.Verdict.String()).Inc()
	m.assertions.WithLabelValues(rule).Add(float64(out.Assertions))
	m.assumptions.WithLabelValues(rule).Add(float64(out.Assumptions))
}

func (m *Metrics) observeRule(rule string, v Verdict) {
	m.runs.WithLabelValues(rule, v.String()).Inc()
}

// Gatherer exposes the registry, e.g. for an HTTP handler.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteFile writes the current counters in the text exposition format.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
