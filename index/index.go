package index

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hupe1980/pointgo/index/flat"
	"github.com/hupe1980/pointgo/index/kdtree"
	"github.com/hupe1980/pointgo/pointset"
)

// Index answers neighborhood queries over a fixed PointSet.
type Index interface {
	// Name returns the name of the index implementation.
	Name() string

	// PointSet returns the point set the index was built from.
	PointSet() *pointset.PointSet

	// Len returns the number of indexed points.
	Len() int

	// Point returns the coordinates of point i.
	Point(i int) r3.Vec

	// Range returns every point within radius (inclusive) of point q.
	Range(q int, radius float64) (pointset.NeighborList, error)

	// KNN returns the k nearest points to point q, q included. 1 <= k <= Len().
	KNN(q int, k int) (pointset.NeighborList, error)
}

// Compile time checks to ensure the implementations satisfy the interface.
var (
	_ Index = (*flat.Index)(nil)
	_ Index = (*kdtree.Index)(nil)
)

// Strategy selects an Index implementation.
type Strategy int

const (
	// StrategyBruteForce scans every point on every query.
	StrategyBruteForce Strategy = iota
	// StrategyKDTree builds a k-d tree.
	StrategyKDTree
)

// String returns a string representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyBruteForce:
		return "BruteForce"
	case StrategyKDTree:
		return "KDTree"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ParseStrategy parses a strategy name as produced by String. Matching is
// case-insensitive and also accepts "flat" for StrategyBruteForce.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bruteforce", "brute-force", "flat":
		return StrategyBruteForce, nil
	case "kdtree", "kd-tree":
		return StrategyKDTree, nil
	default:
		return 0, pointset.NewArgumentError("parse strategy", "strategy", s, "unknown index strategy")
	}
}

// Build creates an index over ps using the given strategy.
func Build(strategy Strategy, ps *pointset.PointSet) (Index, error) {
	if ps == nil {
		return nil, pointset.NewArgumentError("build", "point set", nil, "point set is nil")
	}

	switch strategy {
	case StrategyBruteForce:
		return flat.New(ps), nil
	case StrategyKDTree:
		return kdtree.New(ps), nil
	default:
		return nil, pointset.NewArgumentError("build", "strategy", strategy, "unknown index strategy")
	}
}

// Check returns an error if idx was not built over ps.
func Check(op string, idx Index, ps *pointset.PointSet) error {
	if idx == nil {
		return pointset.NewArgumentError(op, "index", nil, "index is nil")
	}
	if idx.PointSet().ID() != ps.ID() {
		return pointset.NewArgumentError(op, "index", idx.Name(), "index was built over a different point set")
	}
	return nil
}
