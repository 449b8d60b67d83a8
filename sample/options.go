package sample

import (
	"math/rand/v2"

	"github.com/hupe1980/pointgo/index"
)

// Option configures a sampling call.
type Option func(*options)

type options struct {
	start    int
	idx      index.Index
	strategy index.Strategy
	rng      *rand.Rand
	seed     uint64
	seeded   bool
}

// WithStart sets the first point selected by FPS. Defaults to 0.
func WithStart(start int) Option {
	return func(o *options) {
		o.start = start
	}
}

// WithIndex makes FPS use idx for its distance updates.
// idx must have been built over the sampled point set.
func WithIndex(idx index.Index) Option {
	return func(o *options) {
		o.idx = idx
	}
}

// WithStrategy selects how FPS finds the points affected by a selection.
// StrategyBruteForce (the default) scans all points. Any other strategy
// builds a temporary index of that kind. Ignored when WithIndex is given.
func WithStrategy(s index.Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithSeed makes Random deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithRand makes Random draw from r. It takes precedence over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

func applyOptions(opts []Option) options {
	o := options{
		strategy: index.StrategyBruteForce,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options) generator() *rand.Rand {
	switch {
	case o.rng != nil:
		return o.rng
	case o.seeded:
		return rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15))
	default:
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
}
