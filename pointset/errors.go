package pointset

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single error kind for precondition violations
// (m, k or radius out of range, empty or non-finite point sets, stale indexes).
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a rejected argument.
//
// errors.Is(err, ErrInvalidArgument) reports true for every ArgumentError.
type ArgumentError struct {
	Op     string // Operation that rejected the argument, e.g. "fps".
	Arg    string // Argument name, e.g. "m".
	Value  any    // Offending value.
	Reason string // Human-readable constraint.
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid %s %v: %s", e.Op, e.Arg, e.Value, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// NewArgumentError returns an *ArgumentError.
func NewArgumentError(op, arg string, value any, reason string) error {
	return &ArgumentError{Op: op, Arg: arg, Value: value, Reason: reason}
}

// IsInvalidArgument reports whether err is an invalid-argument error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
