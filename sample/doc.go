// Package sample implements point-cloud subsampling.
//
// Two strategies are provided:
//
//   - Random: m distinct indices drawn uniformly without replacement
//   - FPS: farthest point sampling, a greedy min-max-distance subset
//
// # Random Sampling
//
// Random never touches package-level random state. Pass WithSeed for a
// reproducible draw or WithRand to thread a generator through several calls.
// Without either, a fresh generator seeded from the runtime is used.
//
//	sel, err := sample.Random(ps, 512, sample.WithSeed(42))
//
// # Farthest Point Sampling
//
// FPS starts at index 0 unless WithStart is given. Each following selection
// is the unselected point farthest from everything selected so far, ties
// broken by the smallest index.
//
//	sel, err := sample.FPS(ps, 512)
//
// By default FPS scans every point on every step. With an index, either
// passed with WithIndex or built from WithStrategy(index.StrategyKDTree),
// each step only revisits points inside the ball whose radius is the current
// farthest distance. The output is identical either way.
package sample
