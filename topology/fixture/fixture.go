// Package fixture assembles a topology.Graph from a model.Input in one
// orchestrated pass, mirroring the single-orchestrator shape of
// builder.BuildGraph: one entry point resolves every node and switch in
// a deterministic order and wraps the first failure with its call-site
// context rather than attempting partial cleanup.
package fixture

import (
	"fmt"

	"github.com/gridops/recovery-optimizer/model"
	"github.com/gridops/recovery-optimizer/topology"
)

// BuildTopology adds every substation node and switch named by in to a
// fresh topology.Graph. Node and switch validity (existence, uniqueness)
// is assumed already checked by model.Input.Validate; BuildTopology
// returns an error only for a structural defect Validate cannot see,
// such as a switch whose two endpoints are the same node or an empty
// node name.
func BuildTopology(in model.Input) (*topology.Graph, error) {
	tg := topology.NewGraph()

	for _, node := range in.SubstationNodes {
		if err := tg.AddNode(node); err != nil {
			return nil, fmt.Errorf("fixture: add node %q: %w", node, err)
		}
	}

	for _, name := range in.SwitchNames() {
		sw := in.Switches[name]
		err := tg.AddSwitch(
			name,
			sw.Nodes[0], sw.Nodes[1],
			sw.EffectiveType() == model.SwitchTypeBreaker,
			sw.IsClosed(),
			sw.Cost,
			sw.IsAvailable(),
		)
		if err != nil {
			return nil, fmt.Errorf("fixture: add switch %q: %w", name, err)
		}
	}

	return tg, nil
}
