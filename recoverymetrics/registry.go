// Package recoverymetrics registers the Prometheus series exposed by a
// recovery-optimizer solver process: one subsystem-init method per
// concern, mirroring how larger Prometheus integrations in this
// ecosystem split a wide metrics surface across files.
package recoverymetrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every metric series the solver emits.
type Registry struct {
	registry *prometheus.Registry

	SolveRunsTotal      *prometheus.CounterVec
	SolveDuration       *prometheus.HistogramVec
	SolveNodesExplored  prometheus.Histogram
	SolveInfeasibleRuns prometheus.Counter

	SimplexIterationsTotal prometheus.Counter
	SimplexPivotsTotal     prometheus.Counter

	SwitchOperationsPlanned prometheus.Histogram
	ZoneSafetyRegionPercent *prometheus.GaugeVec
	LoadShedTotalKW         prometheus.Gauge
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// NewRegistry builds a fresh Registry backed by its own
// prometheus.Registry, so tests can construct independent instances
// without colliding on metric names with prometheus.DefaultRegisterer.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}
	r.initSolveMetrics()
	r.initSimplexMetrics()
	r.initResultMetrics()
	return r
}

// Default returns the process-wide Registry, constructing it on first
// use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
	})
	return defaultReg
}

// PrometheusRegistry returns the underlying registry for wiring into an
// HTTP /metrics handler.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
