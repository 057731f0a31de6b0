// Package prune computes the minimal sub-graph needed to produce a set of
// fetches.
//
// Reachability runs backwards from the fetch target nodes over both data
// edges (`name:index`, `name`) and control edges (`^name`). Nodes that
// survive keep their original relative order and their input lists are
// copied verbatim; pruning only ever removes whole nodes.
//
// Every referenced node must exist in the graph. A dangling reference fails
// the whole call with ErrMissingNode and no partial graph is returned.
package prune
