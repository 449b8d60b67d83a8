// Package query implements neighborhood queries around a point of a cloud.
//
// Ball returns the points within a fixed radius, capped at a maximum count.
// KNN returns a fixed number of nearest points. Both run against an
// index.Index and order results by ascending distance, ties broken by
// ascending point index, so a shorter result is always a prefix of a longer
// one.
//
// The query point is excluded from results unless IncludeSelf(true) is
// given.
//
// # Padding
//
// Ball returns a variable-length result by default (PadNone). Networks that
// need fixed-size groups can ask for PadRepeatNearest, which repeats the
// nearest qualifying index until the result has maxNeighbors entries.
package query
