package solverdriver_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gridops/recovery-optimizer/model"
	"github.com/gridops/recovery-optimizer/result"
	"github.com/gridops/recovery-optimizer/solverdriver"
	"github.com/gridops/recovery-optimizer/topology/fixture"
)

// loadSubstationFixture loads the canonical two-zone substation used by
// the end-to-end scenarios: two buses tied by Breaker_Tie, two
// transformers, four zone lines (two per zone), and Zone_A carrying the
// only dispatchable resources (operating, backup, hydro, storage and
// interruptible load).
func loadSubstationFixture(t *testing.T) model.Input {
	t.Helper()
	data, err := os.ReadFile("../testdata/substation.json")
	require.NoError(t, err)

	var in model.Input
	require.NoError(t, json.Unmarshal(data, &in))
	return in
}

func TestSubstationFixture_ValidatesAndBuildsTopology(t *testing.T) {
	in := loadSubstationFixture(t)
	require.NoError(t, in.Validate())

	tg, err := fixture.BuildTopology(in)
	require.NoError(t, err)
	require.Len(t, tg.Nodes(), len(in.SubstationNodes))
	require.Len(t, tg.Switches(), len(in.Switches))
}

// TestSubstationFixture_NoFaultKeepsZoneBBreakersOpen exercises the
// fixture's initial state directly: Breaker_Tie ties main_bus and
// aux_bus into a single island, and both transformers can be fed from
// Zone_A through Line_A1 and Line_A2 without operating any switch.
// Zone_B's fixed load is balanced against its own capacity and does not
// depend on its zone lines being connected, so a MIN_SWITCH_OP solve
// leaves Breaker_LineB1 and Breaker_LineB2 at their initial open state.
func TestSubstationFixture_NoFaultKeepsZoneBBreakersOpen(t *testing.T) {
	in := loadSubstationFixture(t)
	require.NoError(t, in.Validate())
	in.Objective = model.ObjectiveMinSwitchOp

	out, err := solverdriver.Solve(context.Background(), in, solverdriver.Options{})
	require.NoError(t, err)

	b1 := out.Solution.BoolValue(out.Model.Index.SVar["Breaker_LineB1"])
	b2 := out.Solution.BoolValue(out.Model.Index.SVar["Breaker_LineB2"])
	require.False(t, b1 || b2, "no fault: the initial configuration is feasible, so no Zone_B zone-line breaker is operated")
}

// TestSubstationFixture_AssembleProducesFullDispatchPlan exercises the
// full solverdriver -> result pipeline against the fixture and checks
// the shape of the assembled record rather than specific numeric
// values: one dispatch period per horizon slot, every switch accounted
// for in both state maps, and both zones reported.
func TestSubstationFixture_AssembleProducesFullDispatchPlan(t *testing.T) {
	in := loadSubstationFixture(t)
	require.NoError(t, in.Validate())

	out, err := solverdriver.Solve(context.Background(), in, solverdriver.Options{})
	require.NoError(t, err)

	record, err := result.Assemble(out, time.Date(2026, 7, 30, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Equal(t, result.StatusOptimalFound, record.Status)
	require.Len(t, record.Results.DispatchPlan, in.Horizon)
	require.Len(t, record.Results.TimeSlots, in.Horizon)
	require.Len(t, record.Results.FinalSwitchStates, len(in.Switches))
	require.Len(t, record.Results.InitialSwitchStates, len(in.Switches))
	require.Contains(t, record.Results.FinalZoneStatus, "Zone_A")
	require.Contains(t, record.Results.FinalZoneStatus, "Zone_B")
	require.Equal(t, record.Summary.TotalOperationsCount, len(record.Results.SwitchOperations))
}

// TestSubstationFixture_UnavailableZoneLineFreezesItsBreaker marks
// Line_B1 unavailable (simulating a persistent fault on that feeder)
// and checks that Breaker_LineB1 is frozen at its initial (open) state.
// The initial configuration stays feasible with Line_B1 out, so
// Breaker_LineB2 is not operated either.
func TestSubstationFixture_UnavailableZoneLineFreezesItsBreaker(t *testing.T) {
	in := loadSubstationFixture(t)
	line := in.ZoneLines["Line_B1"]
	unavailable := false
	line.Available = &unavailable
	in.ZoneLines["Line_B1"] = line
	require.NoError(t, in.Validate())

	out, err := solverdriver.Solve(context.Background(), in, solverdriver.Options{})
	require.NoError(t, err)

	require.False(t, out.Solution.BoolValue(out.Model.Index.SVar["Breaker_LineB1"]))
	require.False(t, out.Solution.BoolValue(out.Model.Index.SVar["Breaker_LineB2"]),
		"no transformer needs Zone_B, so Breaker_LineB2 keeps its initial open state")
}
