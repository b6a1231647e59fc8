package metric

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every encodebench metric.
const Namespace = "encodebench"

// Registry holds all application metrics.
type Registry struct {
	reg *prometheus.Registry

	ShiftCalls   prometheus.Counter
	ShiftedBytes prometheus.Counter
	Runs         *prometheus.CounterVec
	RunErrors    prometheus.Counter

	LastRun *Collector
}

// NewRegistry creates a registry with all metrics registered.
//
// It does not touch prometheus.DefaultRegisterer, so independent registries
// can coexist in tests.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		ShiftCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "shift_calls_total",
			Help:      "Total shifter invocations across all runs.",
		}),
		ShiftedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "shifted_bytes_total",
			Help:      "Total bytes produced by the shifter across all runs.",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Completed benchmark runs.",
		}, []string{"mode", "clock"}),
		RunErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "run_errors_total",
			Help:      "Benchmark runs aborted by an error.",
		}),
		LastRun: NewCollector(Namespace),
	}

	r.reg.MustRegister(r.ShiftCalls, r.ShiftedBytes, r.Runs, r.RunErrors, r.LastRun)
	return r
}

// ObserveRun records a completed run.
func (r *Registry) ObserveRun(s RunSample) {
	r.ShiftCalls.Add(float64(s.Iterations))
	r.ShiftedBytes.Add(float64(s.BytesShifted))
	r.Runs.WithLabelValues(s.Mode, s.Clock).Inc()
	r.LastRun.Record(s)
}

// ObserveError records an aborted run.
func (r *Registry) ObserveError() {
	r.RunErrors.Inc()
}

// Gatherer returns the underlying gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is replaced atomically.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
