// internal/nodeid/parser.go
package nodeid

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedRef is returned for references that name no node.
var ErrMalformedRef = errors.New("malformed input reference")

// controlPrefix marks a control edge.
const controlPrefix = "^"

// dataRefRegex splits `name:index` on the last colon when the suffix is numeric.
// Anything else is taken verbatim as a node name with output 0.
var dataRefRegex = regexp.MustCompile(`^(.+):(\d+)$`)

// Parse creates a Ref from its string representation.
func Parse(raw string) (Ref, error) {
	if raw == "" {
		return Ref{}, fmt.Errorf("%w: reference cannot be empty", ErrMalformedRef)
	}

	if name, ok := strings.CutPrefix(raw, controlPrefix); ok {
		if name == "" {
			return Ref{}, fmt.Errorf("%w: control reference %q has no node name", ErrMalformedRef, raw)
		}
		return NewControlRef(name), nil
	}

	matches := dataRefRegex.FindStringSubmatch(raw)
	if matches == nil {
		if strings.HasPrefix(raw, ":") {
			return Ref{}, fmt.Errorf("%w: data reference %q has no node name", ErrMalformedRef, raw)
		}
		return NewDataRef(raw, 0), nil
	}

	index, err := strconv.Atoi(matches[2])
	if err != nil {
		return Ref{}, fmt.Errorf("%w: output index in %q: %v", ErrMalformedRef, raw, err)
	}
	return NewDataRef(matches[1], index), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level literals.
func MustParse(raw string) Ref {
	ref, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return ref
}
