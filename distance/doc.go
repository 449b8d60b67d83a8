// Package distance provides Euclidean distance calculations on 3D points.
//
// All algorithms in pointgo compare squared distances internally. Squaring is
// monotone on non-negative values, so orderings and ties are the same as for
// the true Euclidean distance while avoiding a sqrt per comparison.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance
//   - MetricSquaredL2: Squared Euclidean distance
//
// # Usage
//
//	d2 := distance.SquaredL2(a, b)
//	d := distance.L2(a, b)
package distance
