package graph

import "slices"

// Node is a single vertex of the graph.
type Node struct {
	// Name is the unique key of the node within its graph.
	Name string
	// Op and Device are opaque payload that travels with the node.
	Op     string
	Device string
	// Inputs holds raw input references in their declared order.
	Inputs []string
}

// Clone returns a copy of the node that shares no memory with n.
func (n Node) Clone() Node {
	out := n
	out.Inputs = slices.Clone(n.Inputs)
	return out
}

// Equal reports whether two nodes have identical content.
func (n Node) Equal(other Node) bool {
	return n.Name == other.Name &&
		n.Op == other.Op &&
		n.Device == other.Device &&
		slices.Equal(n.Inputs, other.Inputs)
}

// Graph is an ordered collection of nodes.
type Graph struct {
	Nodes []Node
}

// New creates a graph holding the given nodes in order.
func New(nodes ...Node) *Graph {
	return &Graph{Nodes: nodes}
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Nodes)
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	out := &Graph{Nodes: make([]Node, len(g.Nodes))}
	for i, n := range g.Nodes {
		out.Nodes[i] = n.Clone()
	}
	return out
}

// Equal reports whether both graphs hold the same nodes in the same order.
func (g *Graph) Equal(other *Graph) bool {
	if g.Len() != other.Len() {
		return false
	}
	for i := range g.Len() {
		if !g.Nodes[i].Equal(other.Nodes[i]) {
			return false
		}
	}
	return true
}

// Names returns node names in graph order.
func (g *Graph) Names() []string {
	names := make([]string, 0, g.Len())
	for i := range g.Len() {
		names = append(names, g.Nodes[i].Name)
	}
	return names
}

// Index maps each node name to its position in Nodes. If a name occurs more
// than once the last occurrence wins.
func (g *Graph) Index() map[string]int {
	index := make(map[string]int, g.Len())
	for i := range g.Len() {
		index[g.Nodes[i].Name] = i
	}
	return index
}

// Lookup returns the node with the given name, if present.
func (g *Graph) Lookup(name string) (Node, bool) {
	for i := g.Len() - 1; i >= 0; i-- {
		if g.Nodes[i].Name == name {
			return g.Nodes[i], true
		}
	}
	return Node{}, false
}
