package query

import "fmt"

// Padding selects how Ball fills a result that has fewer than maxNeighbors
// qualifying points.
type Padding int

const (
	// PadNone returns only the qualifying points.
	PadNone Padding = iota
	// PadRepeatNearest repeats the nearest qualifying point up to
	// maxNeighbors. An empty result stays empty.
	PadRepeatNearest
)

// String returns a string representation of the Padding.
func (p Padding) String() string {
	switch p {
	case PadNone:
		return "None"
	case PadRepeatNearest:
		return "RepeatNearest"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// Option configures a query.
type Option func(*options)

type options struct {
	includeSelf bool
	padding     Padding
}

// IncludeSelf controls whether the query point may appear in its own result.
func IncludeSelf(include bool) Option {
	return func(o *options) {
		o.includeSelf = include
	}
}

// WithPadding sets the Ball padding policy. Defaults to PadNone.
func WithPadding(p Padding) Option {
	return func(o *options) {
		o.padding = p
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
