// internal/nodeid/ref.go
package nodeid

import "strconv"

// String serializes the Ref into its canonical form. Data references always
// carry an explicit index, so `a` and `a:0` both render as `a:0`.
func (r Ref) String() string {
	if r.Kind == Control {
		return controlPrefix + r.Name
	}
	return r.Name + ":" + strconv.Itoa(r.Index)
}

// Equal checks whether two references point at the same edge target.
func (r Ref) Equal(other Ref) bool {
	return r == other
}
