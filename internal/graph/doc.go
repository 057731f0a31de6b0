// Package graph defines the node graph the pruner operates on.
//
// A Graph is an ordered list of Nodes. Each node is keyed by its unique
// name and lists its inputs as raw reference strings (see package nodeid for
// the grammar). Node order is significant: every transformation that keeps
// a node must keep it in its original position relative to the other kept
// nodes.
//
// Graph values are treated as immutable by the packages that consume them.
// Clone returns a deep copy for callers that need to build a new graph from
// an existing one without aliasing its slices.
package graph
