package optimizer

import (
	"sort"

	"github.com/gridops/recovery-optimizer/model"
	"github.com/gridops/recovery-optimizer/simplex"
)

// Index records every decision variable's column in the underlying
// simplex.Problem, keyed the way result/ needs to decode a Solution back
// into named quantities. Built incrementally by variables.go and read by
// connectivity.go, dispatch.go, objective.go and the result package.
type Index struct {
	Zones        []string // sorted zone names; position is the z_idx used by E[n] and M
	ZoneIdx      map[string]int
	SwitchNames  []string // sorted
	NodeNames    []string // sorted
	Horizon      int
	NumZones     int
	NumTransformers int // |T|, used as the flow capacity M-1 and arc caps

	// Nonzero reports, per transformer, whether it carries any nonzero
	// load across the horizon, the qualifier that gates the assignment
	// equality onto only load-bearing transformers.
	Nonzero map[string]bool

	SVar  map[string]int            // switch -> S[s]
	OpVar map[string]int            // switch -> op[s]
	YVar  map[string]map[string]int // transformer -> zone -> y[t,z]
	EVar  map[string]int            // node -> E[n]

	FFwd map[string]map[string]int // switch -> zone -> f[u->v,z]
	FRev map[string]map[string]int // switch -> zone -> f[v->u,z]
	FZL  map[string]int            // zone line -> f[zone->conn_node] (own zone's commodity only)

	POp    map[string][]int // operating unit -> period -> var
	PBk    map[string][]int // backup unit -> period -> var
	PHy    map[string][]int // hydro unit -> period -> var
	PEs    map[string][]int // storage unit -> period -> var
	SOC    map[string][]int // storage unit -> period -> var
	UStart map[string][]int // backup unit -> period -> var
	UOp    map[string][]int // backup unit -> period -> var
	PSh    map[string][]int // interruptible load -> period -> var

	Margin map[string][]int // zone -> period -> var
	MMin   int
}

// Model pairs a built simplex.Problem with the Index needed to interpret
// its Solution, plus the originating input (dispatch.go and objective.go
// both need it during construction; result/ needs it afterward to
// recover names and original parameters).
type Model struct {
	Problem *simplex.Problem
	Index   *Index
	Input   model.Input
}

func sortedKeysSwitch(m map[string]model.Switch) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysZone(m map[string]model.Zone) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysTransformer(m map[string]model.Transformer) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysZoneLine(m map[string]model.ZoneLine) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysOperating(m map[string]model.OperatingUnit) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysBackup(m map[string]model.BackupUnit) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysHydro(m map[string]model.HydroUnit) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysStorage(m map[string]model.StorageUnit) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysShed(m map[string]model.InterruptibleLoad) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
