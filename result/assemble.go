package result

import (
	"fmt"
	"math"
	"time"

	"github.com/gridops/recovery-optimizer/optimizer"
	"github.com/gridops/recovery-optimizer/sequence"
	"github.com/gridops/recovery-optimizer/solverdriver"
)

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// Assemble turns a solved Outcome into the Output record. start anchors
// the dispatch plan's "HH:MM" time labels; callers pass time.Now() so
// the assembler itself stays a pure function of its arguments.
func Assemble(out *solverdriver.Outcome, start time.Time) (*Output, error) {
	m, sol := out.Model, out.Solution
	idx, in := m.Index, m.Input

	initialStates := make(map[string]int, len(idx.SwitchNames))
	finalStates := make(map[string]int, len(idx.SwitchNames))
	finalClosed := make(map[string]bool, len(idx.SwitchNames))
	var ops []SwitchOperation
	for _, name := range idx.SwitchNames {
		sw := in.Switches[name]
		initial := sw.InitialState
		final := 0
		if sol.BoolValue(idx.SVar[name]) {
			final = 1
		}
		initialStates[name] = initial
		finalStates[name] = final
		finalClosed[name] = final == 1

		if initial != final {
			action := "open"
			if final == 1 {
				action = "close"
			}
			ops = append(ops, SwitchOperation{
				SwitchName:   name,
				InitialState: initial,
				FinalState:   final,
				Action:       action,
				Cost:         sw.Cost,
			})
		}
	}

	steps, err := sequence.Synthesize(out.Topology, in.Switches, finalClosed, in.SwitchNames())
	if err != nil {
		return nil, fmt.Errorf("result: synthesize switching order: %w", err)
	}
	operations := make([]string, len(steps))
	for i, s := range steps {
		operations[i] = s.Label()
	}

	transformerNames := sortedKeys(in.Transformers)
	assignment := make(map[string]TransformerAssignment, len(transformerNames))
	for _, tName := range transformerNames {
		t := in.Transformers[tName]
		zone := Unassigned
		for _, z := range idx.Zones {
			if sol.BoolValue(idx.YVar[tName][z]) {
				zone = z
				break
			}
		}
		assignment[tName] = TransformerAssignment{
			AssignedZone: zone,
			Load:         append([]float64(nil), t.Load...),
		}
	}

	zoneStatus := make(map[string]ZoneStatus, len(idx.Zones))
	for _, z := range idx.Zones {
		zone := in.Zones[z]
		finalLoad := make([]float64, idx.Horizon)
		safety := make([]float64, idx.Horizon)
		overloaded := false
		for k := 0; k < idx.Horizon; k++ {
			margin := sol.Value(idx.Margin[z][k])
			finalLoad[k] = round(zone.Capacity-margin, 2)
			safety[k] = round(100*margin/zone.Capacity, 2)
			if finalLoad[k] > zone.Capacity {
				overloaded = true
			}
		}
		status := StatusSafe
		if overloaded {
			status = StatusOverloaded
		}
		zoneStatus[z] = ZoneStatus{FinalLoad: finalLoad, Capacity: zone.Capacity, Status: status, SafetyRegionPercent: safety}
	}

	dispatch := make([]DispatchPeriod, idx.Horizon)
	for k := 0; k < idx.Horizon; k++ {
		generation := map[string]float64{}
		for _, name := range sortedKeysOperatingUnits(in) {
			u := in.OperatingUnits[name]
			generation[name] = round(sol.Value(idx.POp[name][k])+u.PCurrent, 4)
		}
		for name := range in.BackupUnits {
			generation[name] = round(sol.Value(idx.PBk[name][k]), 4)
		}
		for name := range in.HydroUnits {
			generation[name] = round(sol.Value(idx.PHy[name][k]), 4)
		}

		storage := map[string]StorageDispatch{}
		for name := range in.StorageUnits {
			storage[name] = StorageDispatch{
				Power: round(sol.Value(idx.PEs[name][k]), 4),
				SOC:   round(sol.Value(idx.SOC[name][k]), 4),
			}
		}

		shedding := map[string]float64{}
		for name := range in.InterruptibleLoads {
			shedding[name] = round(sol.Value(idx.PSh[name][k]), 4)
		}

		dispatch[k] = DispatchPeriod{
			Time:       start.Add(time.Duration(k) * time.Hour).Format("15:04"),
			Generation: generation,
			Storage:    storage,
			Shedding:   shedding,
		}
	}

	return &Output{
		Status:         StatusOptimalFound,
		ObjectiveValue: sol.Objective,
		Summary: Summary{
			OperationCost:        round(optimizer.EvaluateOpCost(m, sol), 4),
			SafetyRegionPercent:  round(100*sol.Value(idx.MMin), 2),
			TotalOperationsCount: len(ops),
		},
		Results: Results{
			TimeSlots:                  timeSlots(dispatch),
			SwitchOperations:           ops,
			FinalTransformerAssignment: assignment,
			FinalZoneStatus:            zoneStatus,
			FinalSwitchStates:          finalStates,
			InitialSwitchStates:        initialStates,
			Operations:                 operations,
			DispatchPlan:               dispatch,
		},
	}, nil
}

func timeSlots(dispatch []DispatchPeriod) []string {
	slots := make([]string, len(dispatch))
	for i, d := range dispatch {
		slots[i] = d.Time
	}
	return slots
}
