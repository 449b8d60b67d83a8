package pointgo

import (
	"github.com/hupe1980/pointgo/pointset"
)

// ErrInvalidArgument is the error kind of every rejected input.
// Use errors.As with *ArgumentError for the offending argument.
var ErrInvalidArgument = pointset.ErrInvalidArgument

// ArgumentError describes a rejected argument.
type ArgumentError = pointset.ArgumentError

// IsInvalidArgument reports whether err is an ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return pointset.IsInvalidArgument(err)
}
