package query

import (
	"math"

	"github.com/hupe1980/pointgo/index"
	"github.com/hupe1980/pointgo/pointset"
)

// Ball returns up to maxNeighbors points whose distance to point q is at most
// radius. When more points qualify, the nearest are kept.
//
// radius must be positive and finite and maxNeighbors at least 1.
func Ball(idx index.Index, q int, radius float64, maxNeighbors int, opts ...Option) (pointset.NeighborList, error) {
	if idx == nil {
		return nil, pointset.NewArgumentError("ball query", "index", nil, "index is nil")
	}
	if err := idx.PointSet().CheckIndex("ball query", "query", q); err != nil {
		return nil, err
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, pointset.NewArgumentError("ball query", "radius", radius, "radius must be positive and finite")
	}
	if maxNeighbors < 1 {
		return nil, pointset.NewArgumentError("ball query", "max neighbors", maxNeighbors, "max neighbors must be at least 1")
	}

	o := applyOptions(opts)
	switch o.padding {
	case PadNone, PadRepeatNearest:
	default:
		return nil, pointset.NewArgumentError("ball query", "padding", o.padding, "unknown padding policy")
	}

	all, err := idx.Range(q, radius)
	if err != nil {
		return nil, err
	}

	out := make(pointset.NeighborList, 0, maxNeighbors)
	for _, nb := range all {
		if len(out) == maxNeighbors {
			break
		}
		if nb.Index == q && !o.includeSelf {
			continue
		}
		out = append(out, nb)
	}

	if o.padding == PadRepeatNearest && len(out) > 0 {
		for len(out) < maxNeighbors {
			out = append(out, out[0])
		}
	}
	return out, nil
}

// KNN returns exactly k points nearest to point q.
//
// k must be at least 1 and at most N, or N-1 when the query point is
// excluded.
func KNN(idx index.Index, q int, k int, opts ...Option) (pointset.NeighborList, error) {
	if idx == nil {
		return nil, pointset.NewArgumentError("knn query", "index", nil, "index is nil")
	}
	if err := idx.PointSet().CheckIndex("knn query", "query", q); err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	limit := idx.Len()
	if !o.includeSelf {
		limit--
	}
	if k < 1 || k > limit {
		return nil, pointset.NewArgumentError("knn query", "k", k, "k must be at least 1 and at most the number of candidate points")
	}

	if o.includeSelf {
		return idx.KNN(q, k)
	}

	// The query point is not necessarily first: coincident points at
	// distance zero with a smaller index sort ahead of it.
	all, err := idx.KNN(q, k+1)
	if err != nil {
		return nil, err
	}
	out := make(pointset.NeighborList, 0, k)
	for _, nb := range all {
		if nb.Index != q && len(out) < k {
			out = append(out, nb)
		}
	}
	return out, nil
}
