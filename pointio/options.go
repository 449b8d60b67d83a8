package pointio

import "github.com/hupe1980/pointgo/resource"

const (
	// DefaultBlockPoints is the number of points per block (1.5 MiB raw).
	DefaultBlockPoints = 64 * 1024

	// MaxBlockPoints bounds the block size a reader will allocate.
	MaxBlockPoints = 1 << 20
)

// Options configures encoding and loading.
type Options struct {
	// Compression selects the block compression algorithm.
	Compression Compression
	// BlockPoints is the number of points per block. Zero means DefaultBlockPoints.
	BlockPoints int
	// Resources reserves memory and throttles reads in Load. Nil means unlimited.
	Resources *resource.Controller
}

// Option configures Options.
type Option func(*Options)

// WithCompression sets the block compression algorithm.
func WithCompression(c Compression) Option {
	return func(o *Options) {
		o.Compression = c
	}
}

// WithBlockPoints sets the number of points per block.
func WithBlockPoints(n int) Option {
	return func(o *Options) {
		o.BlockPoints = n
	}
}

// WithResourceController sets the controller used by Load.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *Options) {
		o.Resources = rc
	}
}

func applyOptions(opts []Option) Options {
	o := Options{
		Compression: CompressionLZ4,
		BlockPoints: DefaultBlockPoints,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.BlockPoints <= 0 {
		o.BlockPoints = DefaultBlockPoints
	}
	o.BlockPoints = min(o.BlockPoints, MaxBlockPoints)
	return o
}
