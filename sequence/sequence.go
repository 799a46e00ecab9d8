package sequence

import (
	"fmt"
	"sort"

	"github.com/gridops/recovery-optimizer/model"
	"github.com/gridops/recovery-optimizer/topology"
)

// Action classifies what a single switch operation does.
type Action string

const (
	ActionNoop  Action = "noop"
	ActionClose Action = "close"
	ActionOpen  Action = "open"
)

// OpFormat is the label template for an emitted operation, matching the
// upstream schema's "<name>【<action>】" convention.
const OpFormat = "%s【%s】"

// Step is one emitted switching-order entry.
type Step struct {
	Switch string
	Action Action
}

// Label renders s per OpFormat.
func (s Step) Label() string {
	return fmt.Sprintf(OpFormat, s.Switch, s.Action)
}

// Classify reports the action moving a switch from initial to final.
func Classify(initial, final bool) Action {
	switch {
	case initial == final:
		return ActionNoop
	case final:
		return ActionClose
	default:
		return ActionOpen
	}
}

// Synthesize builds the switching order from tg (whose Closed flags
// encode the initial, pre-fault topology G_0), the input switch set and
// the target final state of every switch. order is the switch names'
// declaration order in the original input document (see
// model.Input.SwitchNames); every group below iterates in that order,
// falling back to alphabetical for any name order omits, so the result
// stays deterministic even when order is nil.
func Synthesize(tg *topology.Graph, switches map[string]model.Switch, final map[string]bool, order []string) ([]Step, error) {
	rank := declarationRank(order)
	names := orderedKeys(switchNameSet(switches), rank)

	labels := tg.Islands(func(sw topology.SwitchEdge) bool { return sw.Closed })

	bClose := map[string]bool{}
	bOpen := map[string]bool{}
	iClose := map[string]bool{}
	iOpen := map[string]bool{}

	for _, name := range names {
		sw := switches[name]
		fin, ok := final[name]
		if !ok {
			return nil, fmt.Errorf("sequence: no target state for switch %q", name)
		}
		action := Classify(sw.IsClosed(), fin)
		if action == ActionNoop {
			continue
		}
		isBreaker := sw.EffectiveType() == model.SwitchTypeBreaker
		switch {
		case isBreaker && action == ActionClose:
			bClose[name] = true
		case isBreaker && action == ActionOpen:
			bOpen[name] = true
		case !isBreaker && action == ActionClose:
			iClose[name] = true
		case !isBreaker && action == ActionOpen:
			iOpen[name] = true
		}
	}

	shareNode := func(a, b model.Switch) bool {
		for _, x := range a.Nodes {
			for _, y := range b.Nodes {
				if x == y {
					return true
				}
			}
		}
		return false
	}

	sameIsland := func(a, b model.Switch) bool {
		for _, x := range a.Nodes {
			for _, y := range b.Nodes {
				if topology.SameIsland(labels, x, y) {
					return true
				}
			}
		}
		return false
	}

	var steps []Step

	bCloseNames := orderedKeys(bClose, rank)
	for _, bName := range bCloseNames {
		b := switches[bName]

		partner := ""
		for _, bpName := range orderedKeys(bOpen, rank) {
			if sameIsland(b, switches[bpName]) {
				partner = bpName
				break
			}
		}

		for _, iName := range orderedKeys(iClose, rank) {
			if shareNode(b, switches[iName]) {
				steps = append(steps, Step{Switch: iName, Action: ActionClose})
				delete(iClose, iName)
			}
		}

		steps = append(steps, Step{Switch: bName, Action: ActionClose})

		if partner != "" {
			delete(bOpen, partner)
			steps = append(steps, Step{Switch: partner, Action: ActionOpen})
			bp := switches[partner]
			for _, iName := range orderedKeys(iOpen, rank) {
				if shareNode(bp, switches[iName]) {
					steps = append(steps, Step{Switch: iName, Action: ActionOpen})
					delete(iOpen, iName)
				}
			}
		}
	}

	for _, iName := range orderedKeys(iClose, rank) {
		i := switches[iName]
		steps = append(steps, Step{Switch: iName, Action: ActionClose})
		for _, ipName := range orderedKeys(iOpen, rank) {
			if shareNode(i, switches[ipName]) {
				steps = append(steps, Step{Switch: ipName, Action: ActionOpen})
				delete(iOpen, ipName)
			}
		}
	}

	// Residual breaker opens: a breaker in B_open that was never claimed
	// as another breaker's partner during the main loop still has to
	// open. Emitted last, with its own adjacent isolators, since no
	// ordering constraint relates it to the closures above.
	for _, bName := range orderedKeys(bOpen, rank) {
		steps = append(steps, Step{Switch: bName, Action: ActionOpen})
		b := switches[bName]
		for _, iName := range orderedKeys(iOpen, rank) {
			if shareNode(b, switches[iName]) {
				steps = append(steps, Step{Switch: iName, Action: ActionOpen})
				delete(iOpen, iName)
			}
		}
	}

	return steps, nil
}

// declarationRank maps each name in order to its position, so callers
// can sort a subset of names by original declaration order.
func declarationRank(order []string) map[string]int {
	rank := make(map[string]int, len(order))
	for i, name := range order {
		rank[name] = i
	}
	return rank
}

// switchNameSet turns a switch map into the set orderedKeys expects.
func switchNameSet(switches map[string]model.Switch) map[string]bool {
	out := make(map[string]bool, len(switches))
	for name := range switches {
		out[name] = true
	}
	return out
}

// orderedKeys returns m's keys sorted by rank, falling back to
// alphabetical for any key rank does not cover (including the empty
// rank map, giving fully alphabetical order when no declaration order
// was supplied).
func orderedKeys(m map[string]bool, rank map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, iok := rank[out[i]]
		rj, jok := rank[out[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		case jok:
			return false
		default:
			return out[i] < out[j]
		}
	})
	return out
}
