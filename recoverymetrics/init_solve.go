package recoverymetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSolveMetrics() {
	r.SolveRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "recovery_solve_runs_total",
			Help: "Total number of solve requests, by objective and terminal status",
		},
		[]string{"objective", "status"},
	)

	r.SolveDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recovery_solve_duration_seconds",
			Help:    "Wall-clock duration of a solve request",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		},
		[]string{"objective"},
	)

	r.SolveNodesExplored = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recovery_solve_branch_nodes_explored",
			Help:    "Branch-and-bound nodes explored per solve request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	r.SolveInfeasibleRuns = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "recovery_solve_infeasible_total",
			Help: "Total number of solve requests that proved infeasible",
		},
	)
}
