package signalx

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTypeConstraint reports a value of the wrong kind reaching the graph: a nil
// node where a node is required, or a non-boolean where a state is required.
var ErrTypeConstraint = errors.New("signalx: type constraint violation")

var (
	ErrNilNode       = fmt.Errorf("%w: node must not be nil", ErrTypeConstraint)
	ErrUnknownNode   = errors.New("signalx: unknown node")
	ErrDuplicateNode = errors.New("signalx: duplicate node name")
	ErrEmptyName     = errors.New("signalx: node name is required")
)

// ParseState converts a textual state ("true", "0", "F", ...) into a bool.
// Anything strconv.ParseBool rejects is a type constraint violation.
func ParseState(s string) (bool, error) {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: state must be a boolean, got %q", ErrTypeConstraint, s)
	}
	return v, nil
}
