package simplex

import "math"

// bounds is a per-variable (lb, ub) pair used during branch-and-bound: each
// node of the search tree tightens a copy of the root Problem's bounds
// without mutating the Problem itself.
type bounds struct {
	lb []float64
	ub []float64
}

func rootBounds(p *Problem) bounds {
	b := bounds{lb: make([]float64, len(p.Vars)), ub: make([]float64, len(p.Vars))}
	for i, v := range p.Vars {
		b.lb[i] = v.LB
		b.ub[i] = v.UB
	}
	return b
}

func (b bounds) clone() bounds {
	return bounds{lb: append([]float64(nil), b.lb...), ub: append([]float64(nil), b.ub...)}
}

// standardForm is the dense Big-M tableau built from a Problem snapshot and
// a (possibly branch-tightened) set of bounds. Every structural variable is
// shifted so its lower bound becomes zero; explicit rows enforce finite
// upper bounds. Rows are ordered: [original constraints][upper-bound rows].
type standardForm struct {
	nStruct    int
	totalCols  int
	tableau    [][]float64 // totalRows x totalCols
	rhs        []float64
	basis      []int
	cost       []float64 // Big-M cost per column, length totalCols
	isArtifact []bool    // true for artificial columns
}

const bigMBase = 1e7

// build converts p (with bounds b applied in place of p.Vars[*].LB/UB) into
// a standardForm ready for the simplex loop. Returns ErrInfiniteLowerBound
// if any effective lower bound is non-finite.
func build(p *Problem, b bounds) (*standardForm, error) {
	n := len(p.Vars)
	if n == 0 {
		return nil, ErrEmptyProblem
	}
	for i := 0; i < n; i++ {
		if math.IsInf(b.lb[i], -1) || math.IsInf(b.lb[i], 1) {
			return nil, ErrInfiniteLowerBound
		}
	}

	type rawRow struct {
		coeffs map[int]float64 // structural column -> coeff, shifted RHS already folded in
		sense  Sense
		rhs    float64
	}
	var rows []rawRow

	// Original constraints, RHS shifted by sum(coeff*lb) to express them in
	// y-space (y_j = x_j - lb_j).
	for _, c := range p.Cons {
		shiftedRHS := c.RHS
		for j, coeff := range c.Coeffs {
			shiftedRHS -= coeff * b.lb[j]
		}
		rows = append(rows, rawRow{coeffs: c.Coeffs, sense: c.Sense, rhs: shiftedRHS})
	}
	// Explicit upper-bound rows: y_j <= ub_j - lb_j, for finite ub_j.
	for j := 0; j < n; j++ {
		if !math.IsInf(b.ub[j], 1) {
			span := b.ub[j] - b.lb[j]
			rows = append(rows, rawRow{coeffs: map[int]float64{j: 1}, sense: LE, rhs: span})
		}
	}

	// Normalize RHS >= 0 by flipping sign/sense where needed.
	for i := range rows {
		if rows[i].rhs < 0 {
			flipped := make(map[int]float64, len(rows[i].coeffs))
			for j, c := range rows[i].coeffs {
				flipped[j] = -c
			}
			rows[i].coeffs = flipped
			rows[i].rhs = -rows[i].rhs
			switch rows[i].sense {
			case LE:
				rows[i].sense = GE
			case GE:
				rows[i].sense = LE
			} // EQ stays EQ
		}
	}

	totalRows := len(rows)
	// First pass: count extra columns needed.
	extraCols := 0
	for _, r := range rows {
		switch r.sense {
		case LE:
			extraCols++ // slack
		case GE:
			extraCols += 2 // surplus + artificial
		case EQ:
			extraCols++ // artificial
		}
	}
	totalCols := n + extraCols

	sf := &standardForm{
		nStruct:    n,
		totalCols:  totalCols,
		tableau:    make([][]float64, totalRows),
		rhs:        make([]float64, totalRows),
		basis:      make([]int, totalRows),
		cost:       make([]float64, totalCols),
		isArtifact: make([]bool, totalCols),
	}
	for i := 0; i < n; i++ {
		sf.cost[i] = p.Vars[i].Obj
	}

	col := n
	maxAbsCost := 0.0
	for _, v := range p.Vars {
		if a := math.Abs(v.Obj); a > maxAbsCost {
			maxAbsCost = a
		}
	}
	bigM := bigMBase * (1 + maxAbsCost)

	for i, r := range rows {
		row := make([]float64, totalCols)
		for j, c := range r.coeffs {
			row[j] = c
		}
		switch r.sense {
		case LE:
			slackCol := col
			col++
			row[slackCol] = 1
			sf.basis[i] = slackCol
		case GE:
			surplusCol := col
			col++
			artCol := col
			col++
			row[surplusCol] = -1
			row[artCol] = 1
			sf.cost[artCol] = bigM
			sf.isArtifact[artCol] = true
			sf.basis[i] = artCol
		case EQ:
			artCol := col
			col++
			row[artCol] = 1
			sf.cost[artCol] = bigM
			sf.isArtifact[artCol] = true
			sf.basis[i] = artCol
		}
		sf.tableau[i] = row
		sf.rhs[i] = r.rhs
	}

	return sf, nil
}
