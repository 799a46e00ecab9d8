package topology

// Islands computes the connected components of the subgraph formed by
// switches satisfying keep, via union-find with path compression and
// union by rank (mirroring prim_kruskal's disjoint-set, generalized from
// MST edge selection to component labeling). It returns a map from node
// ID to a representative ID shared by every node in the same component.
//
// A typical keep predicate selects only the initially-closed switches,
// to find the as-found de-energized/energized islands before the solver
// runs (package sequence and the validate command both use it that way).
func (tg *Graph) Islands(keep func(SwitchEdge) bool) map[string]string {
	nodes := tg.Nodes()
	tg.mu.RLock()
	defer tg.mu.RUnlock()
	parent := make(map[string]string, len(nodes))
	rank := make(map[string]int, len(nodes))
	for _, n := range nodes {
		parent[n] = n
	}

	var find func(string) string
	find = func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v string) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	for _, sw := range tg.switches {
		if keep(*sw) {
			union(sw.Nodes[0], sw.Nodes[1])
		}
	}

	labels := make(map[string]string, len(nodes))
	for _, n := range nodes {
		labels[n] = find(n)
	}
	return labels
}

// SameIsland reports whether a and b share a label under labels, a
// result previously returned by Islands.
func SameIsland(labels map[string]string, a, b string) bool {
	la, okA := labels[a]
	lb, okB := labels[b]
	return okA && okB && la == lb
}
