package optimizer

import (
	"github.com/gridops/recovery-optimizer/model"
	"github.com/gridops/recovery-optimizer/recoverylog"
	"github.com/gridops/recovery-optimizer/simplex"
	"github.com/gridops/recovery-optimizer/topology"
)

// Build assembles the full MILP against tg: variable
// allocation, connectivity/radiality, power balance, dynamic
// constraints, switch semantics, and the objective, in that order.
func Build(in model.Input, tg *topology.Graph) (*Model, error) {
	recoverylog.Default().Info().Str("objective", string(in.EffectiveObjective())).Msg("Optimization objective")

	p := simplex.NewProblem()
	idx, err := newIndex(p, in, tg)
	if err != nil {
		return nil, err
	}

	m := &Model{Problem: p, Index: idx, Input: in}

	if err := addConnectivity(m); err != nil {
		return nil, err
	}
	if err := addPowerBalance(m); err != nil {
		return nil, err
	}
	if err := addDynamics(m); err != nil {
		return nil, err
	}
	if err := addSwitchSemantics(m, tg); err != nil {
		return nil, err
	}
	if err := addObjective(m); err != nil {
		return nil, err
	}

	return m, nil
}
