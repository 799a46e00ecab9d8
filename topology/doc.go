// Package topology models the substation as an undirected multigraph of
// nodes connected by named switches, and computes the connected-component
// ("island") structure of the subgraph formed by switches that are
// initially closed.
//
// Graph is a plain adjacency list: a pair of nodes may share more than
// one switch (e.g. a busbar with several breaker/isolator pairs), and a
// switch never connects a node to itself. Each switch's name and
// attributes (breaker/isolator, cost, availability, initial state) live
// directly on its SwitchEdge, indexed by name.
package topology
