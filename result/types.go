package result

// StatusOptimalFound is the status string emitted when a solve
// reached optimality. A "no solution" outcome never reaches this
// package, so there is no corresponding constant here: the caller
// reports solverdriver.ErrNoSolution as its own sentinel instead.
const StatusOptimalFound = "Optimal Solution Found"

// SwitchOperation is one record in Results.SwitchOperations: a switch
// whose initial and final state differ.
type SwitchOperation struct {
	SwitchName   string  `json:"switch_name"`
	InitialState int     `json:"initial_state"`
	FinalState   int     `json:"final_state"`
	Action       string  `json:"action"`
	Cost         float64 `json:"cost"`
}

// TransformerAssignment is the zone a transformer was assigned to and
// its load series, or the sentinel "unassigned" zone for a transformer
// with no feasible y[t,z]=1 (only possible for all-zero-load units).
type TransformerAssignment struct {
	AssignedZone string    `json:"assigned_zone"`
	Load         []float64 `json:"load"`
}

// Unassigned is the AssignedZone sentinel for a transformer with no
// y[t,z]=1 in the solution.
const Unassigned = "unassigned"

// ZoneStatus is one zone's served load, capacity and margin trajectory.
type ZoneStatus struct {
	FinalLoad           []float64 `json:"final_load"`
	Capacity            float64   `json:"capacity"`
	Status              string    `json:"status"`
	SafetyRegionPercent []float64 `json:"safety_region_percent"`
}

// StatusSafe and StatusOverloaded are the two ZoneStatus.Status values;
// the comparison is tautological given a feasible solution (margin is
// never negative), but the field exists for external consumers that
// may relax this later.
const (
	StatusSafe       = "safe"
	StatusOverloaded = "overloaded"
)

// StorageDispatch is one storage unit's power and state of charge in
// a single period.
type StorageDispatch struct {
	Power float64 `json:"power"`
	SOC   float64 `json:"soc"`
}

// DispatchPeriod is one period's full dispatch snapshot.
type DispatchPeriod struct {
	Time      string                     `json:"time"`
	Generation map[string]float64        `json:"generation"`
	Storage    map[string]StorageDispatch `json:"storage"`
	Shedding   map[string]float64        `json:"shedding"`
}

// Summary is the three headline numbers of the assembled record.
type Summary struct {
	OperationCost       float64 `json:"operation_cost"`
	SafetyRegionPercent float64 `json:"safety_region_percent"`
	TotalOperationsCount int    `json:"total_operations_count"`
}

// Results is the bulk of the Output record.
type Results struct {
	TimeSlots                  []string                          `json:"time_slots"`
	SwitchOperations           []SwitchOperation                  `json:"switch_operations"`
	FinalTransformerAssignment map[string]TransformerAssignment   `json:"final_transformer_assignment"`
	FinalZoneStatus            map[string]ZoneStatus               `json:"final_zone_status"`
	FinalSwitchStates          map[string]int                      `json:"final_switch_states"`
	InitialSwitchStates        map[string]int                      `json:"initial_sw_states"`
	Operations                 []string                            `json:"operations"`
	DispatchPlan               []DispatchPeriod                    `json:"dispatch_plan"`
}

// Output is the full result record returned by a solve.
type Output struct {
	Status         string  `json:"status,omitempty"`
	ObjectiveValue float64 `json:"objective_value"`
	Summary        Summary `json:"summary"`
	Results        Results `json:"results"`
}
