package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridops/recovery-optimizer/model"
)

func validInput() model.Input {
	return model.Input{
		Horizon: 2,
		Zones: map[string]model.Zone{
			"Zone_A": {Capacity: 1000, FixedLoad: []float64{100, 110}},
		},
		SubstationNodes: []string{"main_bus", "T1_conn"},
		Transformers: map[string]model.Transformer{
			"T1": {
				Load:        []float64{50, 50},
				ConnNode:    "T1_conn",
				Sensitivity: map[string]float64{"Zone_A": 1},
				Cost:        map[string]float64{"Zone_A": 100},
			},
		},
		ZoneLines: map[string]model.ZoneLine{
			"Line_A1": {Zone: "Zone_A", ConnNode: "main_bus"},
		},
		Switches: map[string]model.Switch{
			"Sw1": {Nodes: [2]string{"main_bus", "T1_conn"}, InitialState: 1},
		},
	}
}

// TestValidate_AcceptsWellFormedInput checks the canonical fixture passes
// with no issues.
func TestValidate_AcceptsWellFormedInput(t *testing.T) {
	require.NoError(t, validInput().Validate())
}

// TestValidate_UnknownNode checks a transformer referencing a conn_node
// absent from substation_nodes is reported with ErrUnknownNode.
func TestValidate_UnknownNode(t *testing.T) {
	in := validInput()
	tr := in.Transformers["T1"]
	tr.ConnNode = "ghost_node"
	in.Transformers["T1"] = tr

	err := in.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrUnknownNode))
}

// TestValidate_SeriesLengthMismatch checks a fixed_load series shorter
// than horizon is reported with ErrSeriesLength.
func TestValidate_SeriesLengthMismatch(t *testing.T) {
	in := validInput()
	z := in.Zones["Zone_A"]
	z.FixedLoad = []float64{100}
	in.Zones["Zone_A"] = z

	err := in.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrSeriesLength))
}

// TestValidate_StorageBoundsOrdering checks soc_min > soc_max is reported
// with ErrInvertedBounds.
func TestValidate_StorageBoundsOrdering(t *testing.T) {
	in := validInput()
	in.StorageUnits = map[string]model.StorageUnit{
		"ES1": {Zone: "Zone_A", SOCMin: 200, SOCMax: 50, SOCInitial: 100},
	}

	err := in.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrInvertedBounds))
}

// TestValidate_StorageInitialOutOfRange checks soc_initial outside
// [soc_min, soc_max] is reported with ErrSOCOutOfRange.
func TestValidate_StorageInitialOutOfRange(t *testing.T) {
	in := validInput()
	in.StorageUnits = map[string]model.StorageUnit{
		"ES1": {Zone: "Zone_A", SOCMin: 20, SOCMax: 200, SOCInitial: 500},
	}

	err := in.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrSOCOutOfRange))
}

// TestSwitch_Defaults checks the *bool availability default and the
// switch-type default used when the fixture omits both fields.
func TestSwitch_Defaults(t *testing.T) {
	sw := model.Switch{Nodes: [2]string{"a", "b"}, InitialState: 1}
	require.True(t, sw.IsAvailable())
	require.Equal(t, model.SwitchTypeIsolator, sw.EffectiveType())
	require.True(t, sw.IsClosed())
}

// TestInput_EffectiveObjective checks the default objective applied when
// Objective is left unset.
func TestInput_EffectiveObjective(t *testing.T) {
	in := validInput()
	require.Equal(t, model.ObjectiveMinSwitchOp, in.EffectiveObjective())

	in.Objective = model.ObjectiveMaxSafetyRegion
	require.Equal(t, model.ObjectiveMaxSafetyRegion, in.EffectiveObjective())
}
