package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridops/recovery-optimizer/model"
	"github.com/gridops/recovery-optimizer/topology/fixture"
)

func TestBuildTopology_WiresNodesAndSwitches(t *testing.T) {
	in := model.Input{
		SubstationNodes: []string{"main_bus", "T1_conn"},
		Switches: map[string]model.Switch{
			"Sw1": {Nodes: [2]string{"main_bus", "T1_conn"}, InitialState: 1, Cost: 2, SwitchType: model.SwitchTypeBreaker},
		},
	}

	tg, err := fixture.BuildTopology(in)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"T1_conn", "main_bus"}, tg.Nodes())

	sw, err := tg.Switch("Sw1")
	require.NoError(t, err)
	require.True(t, sw.IsBreaker)
	require.True(t, sw.Closed)
	require.Equal(t, 2.0, sw.Cost)
}

func TestBuildTopology_IsolatorDefaults(t *testing.T) {
	in := model.Input{
		SubstationNodes: []string{"a", "b"},
		Switches: map[string]model.Switch{
			"Sw1": {Nodes: [2]string{"a", "b"}, InitialState: 0},
		},
	}
	tg, err := fixture.BuildTopology(in)
	require.NoError(t, err)

	sw, err := tg.Switch("Sw1")
	require.NoError(t, err)
	require.False(t, sw.IsBreaker)
	require.False(t, sw.Closed)
	require.True(t, sw.Available)
}
