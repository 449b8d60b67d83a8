// Package index provides spatial index interfaces and implementations.
//
// pointgo supports two index strategies:
//
//   - Flat: exhaustive scan, O(N) per query, no build cost
//   - KDTree: k-d tree, O(N log N) build, sublinear queries on typical clouds
//
// Both strategies return identical results for identical inputs. Neighbor
// lists are ordered by ascending Euclidean distance, ties broken by ascending
// point index, and always include the query point itself.
//
// # Index Selection
//
//   - Flat: a few thousand points, or a single query per point set
//   - KDTree: large clouds, or many queries against the same point set
//
// # Index Interface
//
//	type Index interface {
//	    Name() string
//	    PointSet() *pointset.PointSet
//	    Len() int
//	    Point(i int) r3.Vec
//	    Range(q int, radius float64) (pointset.NeighborList, error)
//	    KNN(q int, k int) (pointset.NeighborList, error)
//	}
//
// An index is bound to the PointSet it was built from. Point sets are
// immutable, so an index never goes stale and is safe for concurrent use.
package index
