package model

import "sort"

// ObjectiveType selects which of the three objective modes the solver
// optimizes for; the zero value is accepted by Input.Validate and read
// as ObjectiveMinSwitchOp by Input.EffectiveObjective.
type ObjectiveType string

const (
	// ObjectiveMinSwitchOp minimizes the number (weighted by per-switch
	// cost) of switching operations relative to each switch's initial
	// state.
	ObjectiveMinSwitchOp ObjectiveType = "minimize_switch_operation"

	// ObjectiveMaxSafetyRegion maximizes the worst-case headroom between
	// each zone's assigned capacity and its served load.
	ObjectiveMaxSafetyRegion ObjectiveType = "maximize_safety_region"

	// ObjectiveMinCost minimizes total generation, backup startup and
	// transformer assignment cost across the horizon. Storage carries no
	// cost; the shedding penalty is part of every mode's objective.
	ObjectiveMinCost ObjectiveType = "minimize_gen_cost"
)

// Zone is a supply area: a capacity ceiling and a fixed (non-dispatchable)
// load time series over the recovery horizon.
type Zone struct {
	Capacity  float64   `json:"capacity" yaml:"capacity" validate:"gt=0"`
	FixedLoad []float64 `json:"fixed_load" yaml:"fixed_load" validate:"required,min=1,dive,gte=0"`
}

// Transformer feeds one substation node and may serve one or more zones,
// with per-zone sensitivity (how much of its load lands on that zone) and
// cost. Allocate pins it to a single zone up front; nil leaves the
// assignment to the solver.
type Transformer struct {
	Load        []float64          `json:"load" yaml:"load" validate:"required,min=1,dive,gte=0"`
	ConnNode    string             `json:"conn_node" yaml:"conn_node" validate:"required"`
	Sensitivity map[string]float64 `json:"sensitivity" yaml:"sensitivity" validate:"required,min=1"`
	Cost        map[string]float64 `json:"cost" yaml:"cost" validate:"required,min=1"`
	Allocate    *string            `json:"allocate,omitempty" yaml:"allocate,omitempty"`
}

// ZoneLine is a supply line for one zone, connected to the topology at
// ConnNode. Available defaults to true; a *bool lets callers omit the
// field from JSON/YAML and still get the default rather than a literal
// false.
type ZoneLine struct {
	Zone      string `json:"zone" yaml:"zone" validate:"required"`
	ConnNode  string `json:"conn_node" yaml:"conn_node" validate:"required"`
	Available *bool  `json:"available,omitempty" yaml:"available,omitempty"`
}

// IsAvailable reports the effective availability, defaulting to true when
// Available is unset.
func (z ZoneLine) IsAvailable() bool {
	return z.Available == nil || *z.Available
}

// SwitchType distinguishes remotely-operable breakers from manually
// racked isolators. The MILP may change the state of either kind; the
// type decides the breaker/isolator coupling and the switching order.
type SwitchType string

const (
	SwitchTypeBreaker  SwitchType = "breaker"
	SwitchTypeIsolator SwitchType = "switch"
)

// Switch is a topology edge between two substation nodes.
type Switch struct {
	Nodes        [2]string  `json:"nodes" yaml:"nodes" validate:"required,len=2,dive,required"`
	InitialState int        `json:"initial_state" yaml:"initial_state" validate:"oneof=0 1"`
	Cost         float64    `json:"cost" yaml:"cost" validate:"gte=0"`
	Available    *bool      `json:"available,omitempty" yaml:"available,omitempty"`
	SwitchType   SwitchType `json:"switch_type" yaml:"switch_type" validate:"omitempty,oneof=breaker switch"`
}

// IsAvailable reports the effective availability, defaulting to true when
// Available is unset.
func (s Switch) IsAvailable() bool {
	return s.Available == nil || *s.Available
}

// EffectiveType returns SwitchType, defaulting to SwitchTypeIsolator when
// unset, matching the upstream schema's default.
func (s Switch) EffectiveType() SwitchType {
	if s.SwitchType == "" {
		return SwitchTypeIsolator
	}
	return s.SwitchType
}

// IsClosed reports the switch's initial state as a boolean.
func (s Switch) IsClosed() bool {
	return s.InitialState == 1
}

// OperatingUnit is an already-running dispatchable generator.
type OperatingUnit struct {
	Zone        string  `json:"zone" yaml:"zone" validate:"required"`
	PMin        float64 `json:"p_min" yaml:"p_min" validate:"gte=0"`
	PMax        float64 `json:"p_max" yaml:"p_max" validate:"gtefield=PMin"`
	Cost        float64 `json:"cost" yaml:"cost" validate:"gte=0"`
	Sensitivity float64 `json:"sensitivity" yaml:"sensitivity"`
	PCurrent    float64 `json:"p_current" yaml:"p_current"`
}

// BackupUnit is an offline standby generator that, if started, incurs
// StartupCost once and then dispatches within [PMin, PMax].
type BackupUnit struct {
	Zone        string  `json:"zone" yaml:"zone" validate:"required"`
	PMin        float64 `json:"p_min" yaml:"p_min" validate:"gte=0"`
	PMax        float64 `json:"p_max" yaml:"p_max" validate:"gtefield=PMin"`
	Cost        float64 `json:"cost" yaml:"cost" validate:"gte=0"`
	StartupCost float64 `json:"startup_cost" yaml:"startup_cost" validate:"gte=0"`
	Sensitivity float64 `json:"sensitivity" yaml:"sensitivity"`
	Available   *bool   `json:"available,omitempty" yaml:"available,omitempty"`
}

// IsAvailable reports the effective availability, defaulting to true when
// Available is unset.
func (b BackupUnit) IsAvailable() bool {
	return b.Available == nil || *b.Available
}

// HydroUnit is a low-marginal-cost dispatchable unit with PMin implicitly
// zero.
type HydroUnit struct {
	Zone        string  `json:"zone" yaml:"zone" validate:"required"`
	PMax        float64 `json:"p_max" yaml:"p_max" validate:"gt=0"`
	Cost        float64 `json:"cost" yaml:"cost" validate:"gte=0"`
	Sensitivity float64 `json:"sensitivity" yaml:"sensitivity"`
	Available   *bool   `json:"available,omitempty" yaml:"available,omitempty"`
}

// IsAvailable reports the effective availability, defaulting to true when
// Available is unset.
func (h HydroUnit) IsAvailable() bool {
	return h.Available == nil || *h.Available
}

// StorageUnit is a battery-like device with independent charge/discharge
// limits and a state-of-charge trajectory the optimizer must respect
// across the horizon.
type StorageUnit struct {
	Zone          string  `json:"zone" yaml:"zone" validate:"required"`
	PChargeMax    float64 `json:"p_charge_max" yaml:"p_charge_max" validate:"gte=0"`
	PDischargeMax float64 `json:"p_discharge_max" yaml:"p_discharge_max" validate:"gte=0"`
	SOCMin        float64 `json:"soc_min" yaml:"soc_min" validate:"gte=0"`
	SOCMax        float64 `json:"soc_max" yaml:"soc_max" validate:"gtefield=SOCMin"`
	SOCInitial    float64 `json:"soc_initial" yaml:"soc_initial"`
	Sensitivity   float64 `json:"sensitivity" yaml:"sensitivity"`
	PCurrent      float64 `json:"p_current" yaml:"p_current"`
}

// InterruptibleLoad is load that may be shed at a (typically very high)
// cost rather than served.
type InterruptibleLoad struct {
	Zone        string  `json:"zone" yaml:"zone" validate:"required"`
	ShedMax     float64 `json:"shed_max" yaml:"shed_max" validate:"gte=0"`
	Cost        float64 `json:"cost" yaml:"cost" validate:"gte=0"`
	Sensitivity float64 `json:"sensitivity" yaml:"sensitivity"`
}

// Input is the full optimization request: substation topology, zones,
// dispatchable resources, and the objective to optimize.
type Input struct {
	Horizon          int                          `json:"horizon" yaml:"horizon" validate:"gte=1"`
	Zones            map[string]Zone              `json:"zones" yaml:"zones" validate:"required,min=1,dive"`
	SubstationNodes  []string                     `json:"substation_nodes" yaml:"substation_nodes" validate:"required,min=1"`
	Transformers     map[string]Transformer       `json:"transformers" yaml:"transformers" validate:"required,min=1,dive"`
	ZoneLines        map[string]ZoneLine          `json:"zone_lines" yaml:"zone_lines" validate:"required,min=1,dive"`
	Switches         map[string]Switch            `json:"switches" yaml:"switches" validate:"required,min=1,dive"`
	Objective        ObjectiveType                `json:"objective" yaml:"objective" validate:"omitempty,oneof=minimize_switch_operation maximize_safety_region minimize_gen_cost"`
	OperatingUnits   map[string]OperatingUnit     `json:"operating_units,omitempty" yaml:"operating_units,omitempty" validate:"omitempty,dive"`
	BackupUnits      map[string]BackupUnit        `json:"backup_units,omitempty" yaml:"backup_units,omitempty" validate:"omitempty,dive"`
	HydroUnits       map[string]HydroUnit         `json:"hydro_units,omitempty" yaml:"hydro_units,omitempty" validate:"omitempty,dive"`
	StorageUnits     map[string]StorageUnit       `json:"storage_units,omitempty" yaml:"storage_units,omitempty" validate:"omitempty,dive"`
	InterruptibleLoads map[string]InterruptibleLoad `json:"interruptible_loads,omitempty" yaml:"interruptible_loads,omitempty" validate:"omitempty,dive"`

	// SwitchOrder is the declaration order of Switches' keys in the
	// decoded document, captured by UnmarshalJSON/UnmarshalYAML since
	// neither encoding preserves map key order on decode. Left nil for
	// an Input built programmatically; see SwitchNames.
	SwitchOrder []string `json:"-" yaml:"-"`
}

// SwitchNames returns every key of Switches in declaration order when
// SwitchOrder was populated by a decode, falling back to sorted order
// for an Input assembled by hand (e.g. in tests).
func (in Input) SwitchNames() []string {
	if len(in.SwitchOrder) == len(in.Switches) {
		return in.SwitchOrder
	}
	names := make([]string, 0, len(in.Switches))
	for name := range in.Switches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EffectiveObjective returns Objective, defaulting to ObjectiveMinSwitchOp
// when unset, matching the upstream schema's default.
func (in Input) EffectiveObjective() ObjectiveType {
	if in.Objective == "" {
		return ObjectiveMinSwitchOp
	}
	return in.Objective
}
