// internal/nodeid/types.go
package nodeid

// Kind discriminates the two edge kinds an input reference can describe.
type Kind int

const (
	// Data is a dependency on a specific output value of the source node.
	Data Kind = iota
	// Control is an ordering-only dependency with no associated value.
	Control
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Data:
		return "data"
	case Control:
		return "control"
	default:
		return "unknown"
	}
}

// ControlIndex is the Index carried by control references.
const ControlIndex = -1

// Ref is the parsed form of a single node input reference.
type Ref struct {
	Kind Kind
	// Name is the source node name.
	Name string
	// Index is the source output slot. Always ControlIndex for Control refs.
	Index int
}

// NewDataRef creates a data reference to output `index` of node `name`.
func NewDataRef(name string, index int) Ref {
	return Ref{Kind: Data, Name: name, Index: index}
}

// NewControlRef creates a control reference to node `name`.
func NewControlRef(name string) Ref {
	return Ref{Kind: Control, Name: name, Index: ControlIndex}
}

// IsControl reports whether the reference is an ordering-only edge.
func (r Ref) IsControl() bool {
	return r.Kind == Control
}
