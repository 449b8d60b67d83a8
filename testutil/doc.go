// Package testutil provides testing utilities for pointgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random point clouds and brute-force
// reference answers that the accelerated code paths are checked against.
//
// # Random Clouds
//
//	rng := testutil.NewRNG(seed)
//	ps := rng.UniformCloud(1000)        // uniform in the unit cube
//	ps = rng.ClusteredCloud(1000, 8, 0.05)
//	ps = rng.LatticeCloud(6)            // many equal distances
//
// # Ground Truth
//
//	want := testutil.ExactKNN(ps, q, k)
//	sel := testutil.NaiveFPS(ps, m, start)
package testutil
