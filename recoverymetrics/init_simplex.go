package recoverymetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSimplexMetrics() {
	r.SimplexIterationsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "recovery_simplex_iterations_total",
			Help: "Total simplex tableau iterations across all relaxations solved",
		},
	)

	r.SimplexPivotsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "recovery_simplex_pivots_total",
			Help: "Total simplex pivot operations across all relaxations solved",
		},
	)
}
