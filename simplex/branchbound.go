package simplex

import (
	"math"
	"time"
)

// node is one frontier entry of the branch-and-bound search: a tightened
// copy of the root variable bounds.
type node struct {
	bounds bounds
}

// Solve runs branch-and-bound over the LP relaxations produced by the
// current variable bounds, exploring depth-first with Bland's-rule simplex
// underneath. It returns StatusOptimal with the best integer-feasible
// solution found once the frontier is exhausted, StatusInfeasible if no
// node ever yields an integer-feasible point, or one of
// StatusNodeLimit/StatusTimeLimit/StatusCanceled if the search is aborted
// first. An aborted search never leaks a partial result: the Solution's
// Values are nil unless Status is StatusOptimal.
func (p *Problem) Solve(opts SolveOptions) (Solution, error) {
	opts.normalize()
	if len(p.Vars) == 0 {
		return Solution{}, ErrEmptyProblem
	}

	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	stack := []node{{bounds: rootBounds(p)}}
	nodesExplored := 0
	totalPivots := 0
	incumbentObj := math.Inf(1)
	var incumbent Solution
	haveIncumbent := false

	for len(stack) > 0 {
		if err := opts.Ctx.Err(); err != nil {
			return Solution{Status: StatusCanceled, Nodes: nodesExplored, Pivots: totalPivots}, nil
		}
		if opts.NodeLimit > 0 && nodesExplored >= opts.NodeLimit {
			return Solution{Status: StatusNodeLimit, Nodes: nodesExplored, Pivots: totalPivots}, nil
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return Solution{Status: StatusTimeLimit, Nodes: nodesExplored, Pivots: totalPivots}, nil
		}

		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodesExplored++

		sf, err := build(p, n.bounds)
		if err != nil {
			return Solution{}, err
		}
		x, status, pivots, err := solveLP(sf, n.bounds.lb)
		totalPivots += pivots
		if err != nil {
			return Solution{}, err
		}
		switch status {
		case StatusInfeasible:
			continue // pruned: relaxation infeasible
		case StatusUnbounded:
			return Solution{Status: StatusUnbounded, Nodes: nodesExplored, Pivots: totalPivots}, nil
		}

		obj := evalObjective(p, x)
		if haveIncumbent && obj >= incumbentObj-eps {
			continue // pruned: relaxation bound cannot beat the incumbent
		}

		fracIdx := firstFractional(p, x)
		if fracIdx == -1 {
			incumbentObj = obj
			incumbent = Solution{Status: StatusOptimal, Objective: obj, Values: x, Nodes: nodesExplored}
			haveIncumbent = true
			continue
		}

		val := x[fracIdx]
		lowChild := n.bounds.clone()
		lowChild.ub[fracIdx] = math.Floor(val)
		highChild := n.bounds.clone()
		highChild.lb[fracIdx] = math.Ceil(val)
		// Push high first so low (the floor/"0" branch for binaries) is
		// explored first: a stable, arbitrary tie-break.
		stack = append(stack, node{bounds: highChild}, node{bounds: lowChild})
	}

	if haveIncumbent {
		incumbent.Nodes = nodesExplored
		incumbent.Pivots = totalPivots
		return incumbent, nil
	}
	return Solution{Status: StatusInfeasible, Nodes: nodesExplored, Pivots: totalPivots}, nil
}

func evalObjective(p *Problem, x []float64) float64 {
	total := p.ObjConstant
	for j, v := range p.Vars {
		total += v.Obj * x[j]
	}
	return total
}

func firstFractional(p *Problem, x []float64) int {
	for j, v := range p.Vars {
		if v.Kind == Continuous {
			continue
		}
		frac := x[j] - math.Floor(x[j])
		if frac > integralityTol && frac < 1-integralityTol {
			return j
		}
	}
	return -1
}
