package config

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySpecification = errors.New("empty specification")
	ErrInvalidNodeName    = errors.New("invalid node name")
	ErrInvalidOutputIndex = errors.New("invalid output index")
	ErrDuplicateName      = errors.New("duplicate name")
	ErrConflictingName    = errors.New("conflicting name")
)

// ValidationError describes the first problem found in a Config.
type ValidationError struct {
	Kind error
	Msg  string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return e.Msg
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func invalidf(kind error, format string, args ...any) error {
	return &ValidationError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
