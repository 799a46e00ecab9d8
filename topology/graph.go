package topology

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors for topology construction and queries.
var (
	// ErrUnknownSwitch indicates a lookup referenced a switch name never
	// added to the Graph.
	ErrUnknownSwitch = errors.New("topology: unknown switch")

	// ErrDuplicateSwitch indicates AddSwitch was called twice with the
	// same name.
	ErrDuplicateSwitch = errors.New("topology: duplicate switch name")

	// ErrUnknownNode indicates a lookup referenced a node never added to
	// the Graph.
	ErrUnknownNode = errors.New("topology: unknown node")

	// ErrEmptyNodeID indicates AddNode or AddSwitch was called with an
	// empty node ID.
	ErrEmptyNodeID = errors.New("topology: empty node id")
)

// SwitchEdge records one switch's endpoints and static attributes.
type SwitchEdge struct {
	Name      string
	Nodes     [2]string
	IsBreaker bool
	Closed    bool // initial state
	Cost      float64
	Available bool
}

// incident is one adjacency-list entry: the switch reachable from a node
// and the node at its far end.
type incident struct {
	switchName string
	other      string
}

// Graph is the substation topology: nodes plus named switch edges, held
// as a plain adjacency list sized to exactly what connectivity queries
// (SwitchesAt, OtherEndpoint) and island/component labeling (Islands)
// need. A switch never connects a node to itself, and a pair of nodes
// may be joined by more than one switch (e.g. a busbar fed by several
// breaker/isolator pairs), so the adjacency list allows parallel edges.
//
// mu guards every field. Graphs are built once during fixture assembly
// and then only read, but the lock keeps that contract safe even if a
// future caller mutates one concurrently with a read.
type Graph struct {
	mu       sync.RWMutex
	nodes    map[string]struct{}
	adj      map[string][]incident
	switches map[string]*SwitchEdge // name -> attrs
}

// NewGraph returns an empty topology graph ready for AddNode/AddSwitch.
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[string]struct{}),
		adj:      make(map[string][]incident),
		switches: make(map[string]*SwitchEdge),
	}
}

// AddNode registers a substation node. Idempotent.
func (tg *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	tg.mu.Lock()
	defer tg.mu.Unlock()
	tg.nodes[id] = struct{}{}
	return nil
}

// AddSwitch registers a named switch between two nodes, adding both
// nodes if they are not already present. Returns ErrDuplicateSwitch if
// name was already used.
func (tg *Graph) AddSwitch(name string, nodeA, nodeB string, isBreaker, closed bool, cost float64, available bool) error {
	if nodeA == "" || nodeB == "" {
		return ErrEmptyNodeID
	}
	if nodeA == nodeB {
		return fmt.Errorf("topology: switch %q cannot connect a node to itself", name)
	}
	tg.mu.Lock()
	defer tg.mu.Unlock()
	if _, exists := tg.switches[name]; exists {
		return ErrDuplicateSwitch
	}
	tg.nodes[nodeA] = struct{}{}
	tg.nodes[nodeB] = struct{}{}
	tg.adj[nodeA] = append(tg.adj[nodeA], incident{switchName: name, other: nodeB})
	tg.adj[nodeB] = append(tg.adj[nodeB], incident{switchName: name, other: nodeA})
	tg.switches[name] = &SwitchEdge{
		Name:      name,
		Nodes:     [2]string{nodeA, nodeB},
		IsBreaker: isBreaker,
		Closed:    closed,
		Cost:      cost,
		Available: available,
	}
	return nil
}

// Switch returns the named switch's attributes.
func (tg *Graph) Switch(name string) (SwitchEdge, error) {
	tg.mu.RLock()
	defer tg.mu.RUnlock()
	sw, ok := tg.switches[name]
	if !ok {
		return SwitchEdge{}, ErrUnknownSwitch
	}
	return *sw, nil
}

// Switches returns all switches, in no particular order; callers needing
// determinism should sort by Name.
func (tg *Graph) Switches() []SwitchEdge {
	tg.mu.RLock()
	defer tg.mu.RUnlock()
	out := make([]SwitchEdge, 0, len(tg.switches))
	for _, sw := range tg.switches {
		out = append(out, *sw)
	}
	return out
}

// Nodes returns all substation node IDs, sorted.
func (tg *Graph) Nodes() []string {
	tg.mu.RLock()
	defer tg.mu.RUnlock()
	out := make([]string, 0, len(tg.nodes))
	for n := range tg.nodes {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// SwitchesAt returns the names of every switch incident to node.
func (tg *Graph) SwitchesAt(node string) ([]string, error) {
	tg.mu.RLock()
	defer tg.mu.RUnlock()
	if _, ok := tg.nodes[node]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, node)
	}
	links := tg.adj[node]
	names := make([]string, 0, len(links))
	for _, l := range links {
		names = append(names, l.switchName)
	}
	return names, nil
}

// OtherEndpoint returns the node at the far end of switch name from
// node.
func (tg *Graph) OtherEndpoint(name, node string) (string, error) {
	tg.mu.RLock()
	defer tg.mu.RUnlock()
	sw, ok := tg.switches[name]
	if !ok {
		return "", ErrUnknownSwitch
	}
	switch node {
	case sw.Nodes[0]:
		return sw.Nodes[1], nil
	case sw.Nodes[1]:
		return sw.Nodes[0], nil
	default:
		return "", fmt.Errorf("topology: node %q not an endpoint of switch %s", node, name)
	}
}
