package solverdriver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridops/recovery-optimizer/model"
	"github.com/gridops/recovery-optimizer/solverdriver"
)

func basicInput() model.Input {
	return model.Input{
		Horizon:         1,
		SubstationNodes: []string{"N1", "N2"},
		Zones: map[string]model.Zone{
			"Z1": {Capacity: 100, FixedLoad: []float64{50}},
		},
		Transformers: map[string]model.Transformer{
			"T1": {
				Load:        []float64{50},
				ConnNode:    "N2",
				Sensitivity: map[string]float64{"Z1": 1},
				Cost:        map[string]float64{"Z1": 1},
			},
		},
		ZoneLines: map[string]model.ZoneLine{
			"ZL1": {Zone: "Z1", ConnNode: "N1"},
		},
		Switches: map[string]model.Switch{
			"SW1": {Nodes: [2]string{"N1", "N2"}, InitialState: 1, Cost: 1},
		},
	}
}

func TestSolve_ReturnsOptimalOutcome(t *testing.T) {
	in := basicInput()
	require.NoError(t, in.Validate())

	out, err := solverdriver.Solve(context.Background(), in, solverdriver.Options{})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.True(t, out.Solution.BoolValue(out.Model.Index.SVar["SW1"]))
}

func TestSolve_UnreachableZoneYieldsNoSolution(t *testing.T) {
	in := basicInput()
	// T1 sits behind SW1, which is frozen open: the reachability seal
	// for T1 can never be satisfied, so the whole MILP is infeasible.
	in.Switches["SW1"] = model.Switch{Nodes: [2]string{"N1", "N2"}, InitialState: 0, Cost: 1, Available: boolPtr(false)}
	require.NoError(t, in.Validate())

	_, err := solverdriver.Solve(context.Background(), in, solverdriver.Options{})
	require.ErrorIs(t, err, solverdriver.ErrNoSolution)
}

func boolPtr(b bool) *bool { return &b }
