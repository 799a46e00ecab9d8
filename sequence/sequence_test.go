package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridops/recovery-optimizer/model"
	"github.com/gridops/recovery-optimizer/sequence"
	"github.com/gridops/recovery-optimizer/topology"
)

// ringTopology builds two islands joined by a tie breaker, each island
// fed through its own isolator-backed breaker, mirroring the canonical
// two-zone substation's bus-tie arrangement.
func ringTopology(t *testing.T) (*topology.Graph, map[string]model.Switch, []string) {
	t.Helper()
	tg := topology.NewGraph()
	for _, n := range []string{"busA", "busB", "feedA", "feedB"} {
		require.NoError(t, tg.AddNode(n))
	}

	switches := map[string]model.Switch{
		"Iso_A":  {Nodes: [2]string{"feedA", "busA"}, InitialState: 1, SwitchType: model.SwitchTypeIsolator},
		"Brk_A":  {Nodes: [2]string{"feedA", "busA"}, InitialState: 1, SwitchType: model.SwitchTypeBreaker},
		"Iso_B":  {Nodes: [2]string{"feedB", "busB"}, InitialState: 0, SwitchType: model.SwitchTypeIsolator},
		"Brk_B":  {Nodes: [2]string{"feedB", "busB"}, InitialState: 0, SwitchType: model.SwitchTypeBreaker},
		"Tie":    {Nodes: [2]string{"busA", "busB"}, InitialState: 0, SwitchType: model.SwitchTypeBreaker},
	}
	// Declaration order is deliberately not alphabetical, so a test that
	// relied on alphabetical fallback would fail to notice order being
	// ignored.
	order := []string{"Tie", "Brk_B", "Iso_B", "Brk_A", "Iso_A"}

	for name, sw := range switches {
		require.NoError(t, tg.AddSwitch(name, sw.Nodes[0], sw.Nodes[1],
			sw.EffectiveType() == model.SwitchTypeBreaker, sw.IsClosed(), sw.Cost, sw.IsAvailable()))
	}

	return tg, switches, order
}

func TestSynthesize_ClosesIsolatorBeforeBreaker(t *testing.T) {
	tg, switches, order := ringTopology(t)

	final := map[string]bool{
		"Iso_A": true,
		"Brk_A": false,
		"Iso_B": true,
		"Brk_B": true,
		"Tie":   false,
	}

	steps, err := sequence.Synthesize(tg, switches, final, order)
	require.NoError(t, err)

	idx := map[string]int{}
	for i, s := range steps {
		idx[s.Switch] = i
	}

	require.Contains(t, idx, "Brk_B")
	require.Contains(t, idx, "Iso_B")
	require.Less(t, idx["Iso_B"], idx["Brk_B"], "the isolator must close before its breaker")

	require.Contains(t, idx, "Brk_A")
	require.NotContains(t, idx, "Iso_A", "Iso_A's target state matches initial, so it is not operated")
}

func TestClassify(t *testing.T) {
	require.Equal(t, sequence.ActionNoop, sequence.Classify(true, true))
	require.Equal(t, sequence.ActionClose, sequence.Classify(false, true))
	require.Equal(t, sequence.ActionOpen, sequence.Classify(true, false))
}

func TestStep_Label(t *testing.T) {
	require.Equal(t, "Brk_A【close】", sequence.Step{Switch: "Brk_A", Action: sequence.ActionClose}.Label())
}
