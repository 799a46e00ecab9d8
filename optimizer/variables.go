package optimizer

import (
	"math"
	"strconv"

	"github.com/gridops/recovery-optimizer/model"
	"github.com/gridops/recovery-optimizer/simplex"
	"github.com/gridops/recovery-optimizer/topology"
)

// newIndex allocates every decision variable against p and returns the
// populated Index. It performs no constraint construction;
// connectivity.go and dispatch.go add constraints against the indices
// recorded here.
func newIndex(p *simplex.Problem, in model.Input, tg *topology.Graph) (*Index, error) {
	idx := &Index{
		Horizon:     in.Horizon,
		ZoneIdx:     make(map[string]int),
		Nonzero:     make(map[string]bool),
		SVar:        make(map[string]int),
		OpVar:       make(map[string]int),
		YVar:        make(map[string]map[string]int),
		EVar:        make(map[string]int),
		FFwd:        make(map[string]map[string]int),
		FRev:        make(map[string]map[string]int),
		FZL:         make(map[string]int),
		POp:         make(map[string][]int),
		PBk:         make(map[string][]int),
		PHy:         make(map[string][]int),
		PEs:         make(map[string][]int),
		SOC:         make(map[string][]int),
		UStart:      make(map[string][]int),
		UOp:         make(map[string][]int),
		PSh:         make(map[string][]int),
		Margin:      make(map[string][]int),
	}

	idx.Zones = sortedKeysZone(in.Zones)
	if len(idx.Zones) == 0 {
		return nil, ErrNoZones
	}
	for i, z := range idx.Zones {
		idx.ZoneIdx[z] = i
	}
	idx.NumZones = len(idx.Zones)

	idx.SwitchNames = sortedKeysSwitch(in.Switches)
	idx.NodeNames = append([]string(nil), tg.Nodes()...)

	transformerNames := sortedKeysTransformer(in.Transformers)
	idx.NumTransformers = len(transformerNames)
	for _, name := range transformerNames {
		t := in.Transformers[name]
		nz := false
		for _, v := range t.Load {
			if v != 0 {
				nz = true
				break
			}
		}
		idx.Nonzero[name] = nz
	}

	// S[s], op[s]: target/changed state of every switch.
	for _, name := range idx.SwitchNames {
		idx.SVar[name] = p.AddVar("S["+name+"]", simplex.Binary, 0, 1)
		idx.OpVar[name] = p.AddVar("op["+name+"]", simplex.Binary, 0, 1)
	}

	// y[t,z]: transformer-to-zone assignment, one per (transformer, zone)
	// pair regardless of load, since the flow balance and reachability
	// seal reference y[t,z] for every transformer, including an
	// all-zero-load one whose one-zone-per-transformer equality is skipped.
	for _, tName := range transformerNames {
		idx.YVar[tName] = make(map[string]int)
		for _, z := range idx.Zones {
			idx.YVar[tName][z] = p.AddVar("y["+tName+","+z+"]", simplex.Binary, 0, 1)
		}
	}

	// E[n]: energized-by label, integer in [0, |Z|] (the extra slot above
	// |Z|-1 is reserved for an unconstrained/isolated node).
	for _, n := range idx.NodeNames {
		idx.EVar[n] = p.AddVar("E["+n+"]", simplex.Integer, 0, float64(idx.NumZones))
	}

	// f[u->v,z], f[v->u,z]: per-switch, per-zone commodity flow. Bounds
	// are left open (+Inf); the per-switch and per-feeder capacity
	// constraints in connectivity.go are what actually limit them.
	nT := float64(idx.NumTransformers)
	for _, name := range idx.SwitchNames {
		idx.FFwd[name] = make(map[string]int)
		idx.FRev[name] = make(map[string]int)
		for _, z := range idx.Zones {
			idx.FFwd[name][z] = p.AddVar("f["+name+"->,"+z+"]", simplex.Continuous, 0, math.Inf(1))
			idx.FRev[name][z] = p.AddVar("f[<-"+name+","+z+"]", simplex.Continuous, 0, math.Inf(1))
		}
	}

	// f[zone->conn_node,z]: boundary arc letting a zone's own commodity
	// enter the graph at one of its (available) zone lines; the flow
	// balance equation implies such arcs must exist somewhere for
	// supply(z,z) to leave node z. See DESIGN.md for this modeling
	// decision.
	zoneLineNames := sortedKeysZoneLine(in.ZoneLines)
	for _, name := range zoneLineNames {
		zl := in.ZoneLines[name]
		ub := 0.0
		if zl.IsAvailable() {
			ub = nT
		}
		idx.FZL[name] = p.AddVar("f[zl:"+name+"]", simplex.Continuous, 0, ub)
	}

	H := in.Horizon

	opNames := sortedKeysOperating(in.OperatingUnits)
	for _, name := range opNames {
		u := in.OperatingUnits[name]
		ub := u.PMax - u.PCurrent
		if ub < 0 {
			ub = 0
		}
		idx.POp[name] = make([]int, H)
		for k := 0; k < H; k++ {
			idx.POp[name][k] = p.AddVar("P_op["+name+","+strconv.Itoa(k)+"]", simplex.Continuous, 0, ub)
		}
	}

	bkNames := sortedKeysBackup(in.BackupUnits)
	for _, name := range bkNames {
		u := in.BackupUnits[name]
		ub := u.PMax
		startUB, opUB := 1.0, 1.0
		if !u.IsAvailable() {
			ub, startUB, opUB = 0, 0, 0
		}
		idx.PBk[name] = make([]int, H)
		idx.UStart[name] = make([]int, H)
		idx.UOp[name] = make([]int, H)
		for k := 0; k < H; k++ {
			idx.PBk[name][k] = p.AddVar("P_bk["+name+","+strconv.Itoa(k)+"]", simplex.Continuous, 0, ub)
			idx.UStart[name][k] = p.AddVar("u_start["+name+","+strconv.Itoa(k)+"]", simplex.Binary, 0, startUB)
			idx.UOp[name][k] = p.AddVar("u_op["+name+","+strconv.Itoa(k)+"]", simplex.Binary, 0, opUB)
		}
	}

	hyNames := sortedKeysHydro(in.HydroUnits)
	for _, name := range hyNames {
		u := in.HydroUnits[name]
		ub := u.PMax
		if !u.IsAvailable() {
			ub = 0
		}
		idx.PHy[name] = make([]int, H)
		for k := 0; k < H; k++ {
			idx.PHy[name][k] = p.AddVar("P_hy["+name+","+strconv.Itoa(k)+"]", simplex.Continuous, 0, ub)
		}
	}

	esNames := sortedKeysStorage(in.StorageUnits)
	for _, name := range esNames {
		u := in.StorageUnits[name]
		idx.PEs[name] = make([]int, H)
		idx.SOC[name] = make([]int, H)
		for k := 0; k < H; k++ {
			idx.PEs[name][k] = p.AddVar("P_es["+name+","+strconv.Itoa(k)+"]", simplex.Continuous, -u.PChargeMax, u.PDischargeMax)
			idx.SOC[name][k] = p.AddVar("SOC["+name+","+strconv.Itoa(k)+"]", simplex.Continuous, u.SOCMin, u.SOCMax)
		}
	}

	ilNames := sortedKeysShed(in.InterruptibleLoads)
	for _, name := range ilNames {
		u := in.InterruptibleLoads[name]
		idx.PSh[name] = make([]int, H)
		for k := 0; k < H; k++ {
			idx.PSh[name][k] = p.AddVar("P_sh["+name+","+strconv.Itoa(k)+"]", simplex.Continuous, 0, u.ShedMax)
		}
	}

	for _, z := range idx.Zones {
		idx.Margin[z] = make([]int, H)
		for k := 0; k < H; k++ {
			idx.Margin[z][k] = p.AddVar("margin["+z+","+strconv.Itoa(k)+"]", simplex.Continuous, 0, math.Inf(1))
		}
	}

	idx.MMin = p.AddVar("m_min", simplex.Continuous, 0, math.Inf(1))

	return idx, nil
}

