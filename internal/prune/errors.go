package prune

import (
	"errors"
	"fmt"
)

// ErrMissingNode is the kind of every pruning failure: a fetch or an input
// reference names a node that the graph does not contain.
var ErrMissingNode = errors.New("missing node")

// Error is returned by Prune and PruneConfig.
type Error struct {
	Kind  error
	Msg   string
	cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.cause}
}

func missingf(format string, args ...any) error {
	return &Error{Kind: ErrMissingNode, Msg: fmt.Sprintf(format, args...)}
}
