package optimizer

import (
	"github.com/gridops/recovery-optimizer/model"
	"github.com/gridops/recovery-optimizer/simplex"
)

// flowTerms returns the flow-variable coefficients entering and leaving
// node for commodity zone, where node ranges over substation nodes *and*
// zone names: the same generic pass serves both the energized-by flow
// network's interior nodes and its zone-virtual-node sources, since a
// zone's own boundary arcs (f[zone->conn_node,z]) are the only arcs
// touching a zone name as a node.
func flowTerms(idx *Index, in model.Input, node, zone string) (inTerms, outTerms map[int]float64) {
	inTerms = map[int]float64{}
	outTerms = map[int]float64{}
	for _, name := range idx.SwitchNames {
		sw := in.Switches[name]
		u, v := sw.Nodes[0], sw.Nodes[1]
		if u == node {
			outTerms[idx.FFwd[name][zone]] += 1
			inTerms[idx.FRev[name][zone]] += 1
		}
		if v == node {
			outTerms[idx.FRev[name][zone]] += 1
			inTerms[idx.FFwd[name][zone]] += 1
		}
	}
	for name, zl := range in.ZoneLines {
		if zl.Zone != zone {
			continue
		}
		if zl.ConnNode == node {
			inTerms[idx.FZL[name]] += 1
		}
		if zl.Zone == node {
			outTerms[idx.FZL[name]] += 1
		}
	}
	return inTerms, outTerms
}

func addTerms(dst, src map[int]float64, sign float64) {
	for k, v := range src {
		dst[k] += sign * v
	}
}

// addConnectivity adds the energized-by label constraints, the
// multi-commodity flow capacity/feeder constraints, the node flow
// balance, the transformer assignment equality and the reachability
// seal.
func addConnectivity(m *Model) error {
	p, idx, in := m.Problem, m.Index, m.Input
	M := float64(idx.NumTransformers + 1)

	for _, name := range idx.SwitchNames {
		sw := in.Switches[name]
		u, v := sw.Nodes[0], sw.Nodes[1]
		eu, ev, s := idx.EVar[u], idx.EVar[v], idx.SVar[name]

		p.AddConstraint("energized_"+name+"_fwd",
			map[int]float64{eu: 1, ev: -1, s: M}, simplex.LE, M)
		p.AddConstraint("energized_"+name+"_rev",
			map[int]float64{ev: 1, eu: -1, s: M}, simplex.LE, M)

		for _, z := range idx.Zones {
			ffwd, frev := idx.FFwd[name][z], idx.FRev[name][z]
			p.AddConstraint("flowcap_"+name+"_"+z,
				map[int]float64{ffwd: 1, frev: 1, s: -float64(idx.NumTransformers)},
				simplex.LE, 0)
		}
	}

	zoneLineNames := sortedKeysZoneLine(in.ZoneLines)
	for _, name := range zoneLineNames {
		zl := in.ZoneLines[name]
		p.AddConstraint("boundary_"+name, map[int]float64{idx.EVar[zl.ConnNode]: 1}, simplex.EQ, float64(idx.ZoneIdx[zl.Zone]))

		for _, swName := range idx.SwitchNames {
			sw := in.Switches[swName]
			if sw.Nodes[0] != zl.ConnNode && sw.Nodes[1] != zl.ConnNode {
				continue
			}
			for _, z := range idx.Zones {
				ffwd, frev := idx.FFwd[swName][z], idx.FRev[swName][z]
				p.AddConstraint("feeder_"+name+"_"+swName+"_"+z,
					map[int]float64{ffwd: 1, frev: 1}, simplex.LE, 1.5)
			}
		}
	}

	transformerNames := sortedKeysTransformer(in.Transformers)

	allNodes := append([]string(nil), idx.NodeNames...)
	for _, z := range idx.Zones {
		for _, n := range allNodes {
			inT, outT := flowTerms(idx, in, n, z)
			terms := map[int]float64{}
			addTerms(terms, outT, 1)
			addTerms(terms, inT, -1)
			for _, tName := range transformerNames {
				if in.Transformers[tName].ConnNode == n {
					terms[idx.YVar[tName][z]] += 1
				}
			}
			p.AddConstraint("balance_"+n+"_"+z, terms, simplex.EQ, 0)
		}
		// Virtual zone node z: out(z,z) - in(z,z) = supply(z,z).
		inT, outT := flowTerms(idx, in, z, z)
		terms := map[int]float64{}
		addTerms(terms, outT, 1)
		addTerms(terms, inT, -1)
		for _, tName := range transformerNames {
			terms[idx.YVar[tName][z]] -= 1
		}
		p.AddConstraint("balance_zone_"+z, terms, simplex.EQ, 0)
	}

	for _, tName := range transformerNames {
		t := in.Transformers[tName]
		zm := idx.YVar[tName]
		if idx.Nonzero[tName] {
			terms := map[int]float64{}
			for _, z := range idx.Zones {
				terms[zm[z]] += 1
			}
			p.AddConstraint("assign_"+tName, terms, simplex.EQ, 1)
		}
		if t.Allocate != nil {
			p.AddConstraint("forced_assign_"+tName, map[int]float64{zm[*t.Allocate]: 1}, simplex.EQ, 1)
		}
		for _, z := range idx.Zones {
			inT, _ := flowTerms(idx, in, t.ConnNode, z)
			terms := map[int]float64{}
			addTerms(terms, inT, 1)
			terms[zm[z]] -= 1
			p.AddConstraint("seal_"+tName+"_"+z, terms, simplex.GE, 0)
		}
	}

	return nil
}
