package optimizer

import (
	"github.com/gridops/recovery-optimizer/model"
	"github.com/gridops/recovery-optimizer/simplex"
)

// epsilon is the lexicographic tie-breaker weight blending the two
// non-primary objective terms into whichever mode is primary, so the
// solver does not flip between equivalent optima on numerical noise.
const epsilon = 1e-4

// NormalizingDenominator returns max(cost_g * p_max_g) over the input's
// operating units, the scale factor the cost term is divided by before
// being blended in at weight epsilon. An input with no operating units
// has nothing to normalize against, so 1 is returned and the division
// becomes a no-op.
func NormalizingDenominator(in model.Input) float64 {
	denom := 0.0
	for _, u := range in.OperatingUnits {
		if v := u.Cost * u.PMax; v > denom {
			denom = v
		}
	}
	if denom == 0 {
		return 1
	}
	return denom
}

// switchOpTerms adds Σ_s cost_s·op[s] to the objective with the given weight.
func switchOpTerms(m *Model, weight float64) {
	p, idx, in := m.Problem, m.Index, m.Input
	for _, name := range idx.SwitchNames {
		p.SetObj(idx.OpVar[name], weight*in.Switches[name].Cost)
	}
}

// opCostTerms adds op_cost to the objective at the given
// weight: generation cost for running operating/backup/hydro units,
// backup startup cost, and the per-transformer-zone assignment cost
// weighted by the load actually landing on that zone.
func opCostTerms(m *Model, weight float64) {
	p, idx, in := m.Problem, m.Index, m.Input
	H := idx.Horizon

	for _, name := range sortedKeysOperating(in.OperatingUnits) {
		u := in.OperatingUnits[name]
		for k := 0; k < H; k++ {
			p.SetObj(idx.POp[name][k], weight*u.Cost)
			p.ObjConstant += weight * u.Cost * u.PCurrent
		}
	}
	for _, name := range sortedKeysBackup(in.BackupUnits) {
		u := in.BackupUnits[name]
		for k := 0; k < H; k++ {
			p.SetObj(idx.PBk[name][k], weight*u.Cost)
			p.SetObj(idx.UStart[name][k], weight*u.StartupCost)
		}
	}
	for _, name := range sortedKeysHydro(in.HydroUnits) {
		u := in.HydroUnits[name]
		for k := 0; k < H; k++ {
			p.SetObj(idx.PHy[name][k], weight*u.Cost)
		}
	}
	for _, tName := range sortedKeysTransformer(in.Transformers) {
		t := in.Transformers[tName]
		for _, z := range idx.Zones {
			sens, ok := t.Sensitivity[z]
			if !ok {
				continue
			}
			cost, ok := t.Cost[z]
			if !ok {
				continue
			}
			for k := 0; k < H; k++ {
				p.SetObj(idx.YVar[tName][z], weight*t.Load[k]*sens*cost)
			}
		}
	}
}

// shedCostTerms adds Σ_{i,k} cost_i·P_sh[i,k] at the given weight.
func shedCostTerms(m *Model, weight float64) {
	p, idx, in := m.Problem, m.Index, m.Input
	for _, name := range sortedKeysShed(in.InterruptibleLoads) {
		u := in.InterruptibleLoads[name]
		for k := 0; k < idx.Horizon; k++ {
			p.SetObj(idx.PSh[name][k], weight*u.Cost)
		}
	}
}

// addObjective sets the objective coefficients: the chosen
// primary mode at weight 1, the other two terms blended in at weight
// epsilon for tie-breaking, and the shedding penalty always at weight 1.
func addObjective(m *Model) error {
	denom := NormalizingDenominator(m.Input)
	mode := m.Input.EffectiveObjective()

	if mode != model.ObjectiveMinSwitchOp {
		switchOpTerms(m, epsilon)
	}
	if mode != model.ObjectiveMaxSafetyRegion {
		m.Problem.SetObj(m.Index.MMin, -epsilon)
	}
	if mode != model.ObjectiveMinCost {
		opCostTerms(m, epsilon/denom)
	}

	switch mode {
	case model.ObjectiveMinSwitchOp:
		switchOpTerms(m, 1)
	case model.ObjectiveMaxSafetyRegion:
		m.Problem.SetObj(m.Index.MMin, -1)
	case model.ObjectiveMinCost:
		opCostTerms(m, 1)
	}

	shedCostTerms(m, 1)
	return nil
}

// EvaluateOpCost recomputes op_cost from a solved
// Solution, at weight 1 and without the epsilon tie-breaker scaling
// addObjective applies to the live objective — the number the result
// assembler reports is the true operating cost, not the blended one.
func EvaluateOpCost(m *Model, sol simplex.Solution) float64 {
	idx, in := m.Index, m.Input
	H := idx.Horizon
	total := 0.0

	for _, name := range sortedKeysOperating(in.OperatingUnits) {
		u := in.OperatingUnits[name]
		for k := 0; k < H; k++ {
			total += u.Cost * (sol.Value(idx.POp[name][k]) + u.PCurrent)
		}
	}
	for _, name := range sortedKeysBackup(in.BackupUnits) {
		u := in.BackupUnits[name]
		for k := 0; k < H; k++ {
			total += u.Cost*sol.Value(idx.PBk[name][k]) + u.StartupCost*sol.Value(idx.UStart[name][k])
		}
	}
	for _, name := range sortedKeysHydro(in.HydroUnits) {
		u := in.HydroUnits[name]
		for k := 0; k < H; k++ {
			total += u.Cost * sol.Value(idx.PHy[name][k])
		}
	}
	for _, tName := range sortedKeysTransformer(in.Transformers) {
		t := in.Transformers[tName]
		for _, z := range idx.Zones {
			sens, ok := t.Sensitivity[z]
			if !ok {
				continue
			}
			cost, ok := t.Cost[z]
			if !ok {
				continue
			}
			for k := 0; k < H; k++ {
				total += t.Load[k] * sens * cost * sol.Value(idx.YVar[tName][z])
			}
		}
	}
	return total
}
