package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridops/recovery-optimizer/simplex"
)

// TestSolve_BoundedLP covers a pure-continuous problem with an explicit
// upper bound and a >= constraint, exercising both the LE/upper-bound row
// path and the GE/artificial-variable path.
//
// Stage 1: minimize -x (i.e. maximize x) subject to x <= 10, x >= 2.
// Stage 2: assert the optimum sits at the upper bound, x = 10.
func TestSolve_BoundedLP(t *testing.T) {
	p := simplex.NewProblem()
	x := p.AddVar("x", simplex.Continuous, 0, 10)
	p.SetObj(x, -1)
	p.AddConstraint("x_min", map[int]float64{x: 1}, simplex.GE, 2)

	sol, err := p.Solve(simplex.SolveOptions{})
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, sol.Status)
	require.InDelta(t, 10, sol.Value(x), 1e-6)
	require.InDelta(t, -10, sol.Objective, 1e-6)
}

// TestSolve_Infeasible covers a constraint pair with no feasible point.
func TestSolve_Infeasible(t *testing.T) {
	p := simplex.NewProblem()
	x := p.AddVar("x", simplex.Continuous, 0, 5)
	p.AddConstraint("lo", map[int]float64{x: 1}, simplex.GE, 8)

	sol, err := p.Solve(simplex.SolveOptions{})
	require.NoError(t, err)
	require.Equal(t, simplex.StatusInfeasible, sol.Status)
}

// TestSolve_BinaryKnapsack exercises branch-and-bound over Binary
// variables: three items, capacity 2, pick the two highest-value items that
// fit.
//
//	item: weight / value
//	A:    1 / 10
//	B:    1 / 10
//	C:    2 / 5
//
// Optimal: A and B selected (value 20), C excluded.
func TestSolve_BinaryKnapsack(t *testing.T) {
	p := simplex.NewProblem()
	weights := []float64{1, 1, 2}
	values := []float64{10, 10, 5}
	idx := make([]int, len(weights))
	coeffs := map[int]float64{}
	for i := range weights {
		idx[i] = p.AddVar("item", simplex.Binary, 0, 1)
		p.SetObj(idx[i], -values[i]) // minimize negative value == maximize value
		coeffs[idx[i]] = weights[i]
	}
	p.AddConstraint("capacity", coeffs, simplex.LE, 2)

	sol, err := p.Solve(simplex.SolveOptions{})
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, sol.Status)
	require.InDelta(t, -20, sol.Objective, 1e-6)
	require.True(t, sol.BoolValue(idx[0]))
	require.True(t, sol.BoolValue(idx[1]))
	require.False(t, sol.BoolValue(idx[2]))
}

// TestSolve_EqualityConstraint exercises the artificial-variable path for
// an == row combined with integer variables summing to one, mirroring the
// MILP's "Σ y[t,z] == 1" allocation constraint.
func TestSolve_EqualityConstraint(t *testing.T) {
	p := simplex.NewProblem()
	a := p.AddVar("y_a", simplex.Binary, 0, 1)
	b := p.AddVar("y_b", simplex.Binary, 0, 1)
	p.SetObj(a, 3)
	p.SetObj(b, 1)
	p.AddConstraint("assign_one", map[int]float64{a: 1, b: 1}, simplex.EQ, 1)

	sol, err := p.Solve(simplex.SolveOptions{})
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, sol.Status)
	require.InDelta(t, 1, sol.Objective, 1e-6)
	require.False(t, sol.BoolValue(a))
	require.True(t, sol.BoolValue(b))
}
