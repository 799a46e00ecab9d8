package optimizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridops/recovery-optimizer/model"
	"github.com/gridops/recovery-optimizer/optimizer"
	"github.com/gridops/recovery-optimizer/simplex"
	"github.com/gridops/recovery-optimizer/topology/fixture"
)

// singleFeederInput is the smallest input that exercises connectivity,
// power balance and switch semantics together: one zone fed through one
// closed isolator from a single transformer.
func singleFeederInput() model.Input {
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

func TestBuild_SingleFeederSolvesOptimal(t *testing.T) {
	in := singleFeederInput()
	require.NoError(t, in.Validate())

	tg, err := fixture.BuildTopology(in)
	require.NoError(t, err)

	m, err := optimizer.Build(in, tg)
	require.NoError(t, err)

	sol, err := m.Problem.Solve(simplex.SolveOptions{})
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, sol.Status)

	require.True(t, sol.BoolValue(m.Index.SVar["SW1"]), "the only feeder switch must stay closed")
	require.False(t, sol.BoolValue(m.Index.OpVar["SW1"]), "an untouched switch should report no operation")
	require.True(t, sol.BoolValue(m.Index.YVar["T1"]["Z1"]), "the sole transformer must be assigned to the sole zone")
	require.InDelta(t, 0, sol.Value(m.Index.Margin["Z1"][0]), 1e-6)
	require.InDelta(t, 0, sol.Value(m.Index.MMin), 1e-6)
}

func TestBuild_UnavailableSwitchStaysFrozen(t *testing.T) {
	in := singleFeederInput()
	unavailable := false
	in.Switches["SW2"] = model.Switch{Nodes: [2]string{"N1", "N2"}, InitialState: 0, Cost: 1, Available: &unavailable}
	require.NoError(t, in.Validate())

	tg, err := fixture.BuildTopology(in)
	require.NoError(t, err)

	m, err := optimizer.Build(in, tg)
	require.NoError(t, err)

	sol, err := m.Problem.Solve(simplex.SolveOptions{})
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, sol.Status)

	require.False(t, sol.BoolValue(m.Index.SVar["SW2"]), "an unavailable switch must stay at its initial open state")
	require.True(t, sol.BoolValue(m.Index.SVar["SW1"]), "the available feeder switch still closes to serve the zone")
}

func TestBuild_NoZonesRejected(t *testing.T) {
	in := singleFeederInput()
	in.Zones = map[string]model.Zone{}

	tg, err := fixture.BuildTopology(in)
	require.NoError(t, err)

	_, err = optimizer.Build(in, tg)
	require.ErrorIs(t, err, optimizer.ErrNoZones)
}
