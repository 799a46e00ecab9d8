package result_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gridops/recovery-optimizer/model"
	"github.com/gridops/recovery-optimizer/result"
	"github.com/gridops/recovery-optimizer/solverdriver"
)

func singleFeederInput() model.Input {
	return model.Input{
		Horizon:         2,
		SubstationNodes: []string{"N1", "N2"},
		Zones: map[string]model.Zone{
			"Z1": {Capacity: 100, FixedLoad: []float64{50, 45}},
		},
		Transformers: map[string]model.Transformer{
			"T1": {
				Load:        []float64{50, 50},
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

func TestAssemble_PopulatesOutputRecord(t *testing.T) {
	in := singleFeederInput()
	require.NoError(t, in.Validate())

	out, err := solverdriver.Solve(context.Background(), in, solverdriver.Options{})
	require.NoError(t, err)

	start := time.Date(2026, 7, 30, 8, 0, 0, 0, time.UTC)
	output, err := result.Assemble(out, start)
	require.NoError(t, err)

	require.Equal(t, result.StatusOptimalFound, output.Status)
	require.Equal(t, []string{"08:00", "09:00"}, output.Results.TimeSlots)
	require.Equal(t, "Z1", output.Results.FinalTransformerAssignment["T1"].AssignedZone)
	require.Equal(t, 0, output.Summary.TotalOperationsCount)
	require.Len(t, output.Results.DispatchPlan, 2)
	require.Equal(t, result.StatusSafe, output.Results.FinalZoneStatus["Z1"].Status)
}
