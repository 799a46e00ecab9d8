package solverdriver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gridops/recovery-optimizer/model"
	"github.com/gridops/recovery-optimizer/optimizer"
	"github.com/gridops/recovery-optimizer/recoverylog"
	"github.com/gridops/recovery-optimizer/recoverymetrics"
	"github.com/gridops/recovery-optimizer/simplex"
	"github.com/gridops/recovery-optimizer/topology"
	"github.com/gridops/recovery-optimizer/topology/fixture"
)

// ErrNoSolution is returned when the solver terminates without an
// optimal integer-feasible point: infeasible, unbounded, a node limit,
// or a caller-imposed time limit/cancellation. This is
// a normal outcome, not a SolverError.
var ErrNoSolution = errors.New("solverdriver: no solution")

// Options bounds the branch-and-bound search. A zero Options runs
// without limits other than ctx cancellation.
type Options struct {
	NodeLimit int
	TimeLimit float64 // seconds, 0 = unbounded
}

// Outcome bundles the built model with its optimal solution so the
// result package can read named quantities back out of it.
type Outcome struct {
	Topology *topology.Graph
	Model    *optimizer.Model
	Solution simplex.Solution
}

// Solve runs the full pipeline end to end: it builds the topology
// graph, builds the MILP over it, and solves it. A non-optimal
// terminal status maps to ErrNoSolution; any other failure (e.g. a
// malformed model, or simplex.ErrIterationLimit) is returned wrapped
// with the name of the stage that failed.
func Solve(ctx context.Context, in model.Input, opts Options) (*Outcome, error) {
	start := time.Now()
	metrics := recoverymetrics.Default()
	objective := string(in.EffectiveObjective())

	tg, err := fixture.BuildTopology(in)
	if err != nil {
		return nil, fmt.Errorf("solverdriver: build topology: %w", err)
	}

	m, err := optimizer.Build(in, tg)
	if err != nil {
		return nil, fmt.Errorf("solverdriver: build model: %w", err)
	}

	sol, err := m.Problem.Solve(simplex.SolveOptions{
		Ctx:       ctx,
		NodeLimit: opts.NodeLimit,
		TimeLimit: time.Duration(opts.TimeLimit * float64(time.Second)),
	})
	if err != nil {
		return nil, fmt.Errorf("solverdriver: solve: %w", err)
	}

	metrics.SolveDuration.WithLabelValues(objective).Observe(time.Since(start).Seconds())
	metrics.SolveNodesExplored.Observe(float64(sol.Nodes))
	metrics.SimplexIterationsTotal.Add(float64(sol.Pivots))
	metrics.SimplexPivotsTotal.Add(float64(sol.Pivots))
	metrics.SolveRunsTotal.WithLabelValues(objective, sol.Status.String()).Inc()

	if sol.Status != simplex.StatusOptimal {
		metrics.SolveInfeasibleRuns.Inc()
		recoverylog.Default().Warn().Str("status", sol.Status.String()).Msg("solve did not reach optimality")
		return nil, fmt.Errorf("%w: %s", ErrNoSolution, sol.Status)
	}

	return &Outcome{Topology: tg, Model: m, Solution: sol}, nil
}
