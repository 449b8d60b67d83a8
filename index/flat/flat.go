// Package flat provides an exhaustive-scan spatial index.
//
// Every query visits all N points. Flat is the reference implementation the
// accelerated indexes are tested against, and the fastest choice for small
// point sets where building a tree does not pay off.
package flat

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hupe1980/pointgo/distance"
	"github.com/hupe1980/pointgo/internal/queue"
	"github.com/hupe1980/pointgo/pointset"
)

// Index is a brute-force spatial index over a PointSet.
// It holds no state besides the PointSet and is safe for concurrent use.
type Index struct {
	ps *pointset.PointSet
}

// New creates a flat index over ps.
func New(ps *pointset.PointSet) *Index {
	return &Index{ps: ps}
}

func (*Index) Name() string { return "Flat" }

// PointSet returns the point set the index was built from.
func (f *Index) PointSet() *pointset.PointSet { return f.ps }

// Point returns the coordinates of point i.
func (f *Index) Point(i int) r3.Vec { return f.ps.At(i) }

// Len returns the number of indexed points.
func (f *Index) Len() int { return f.ps.Len() }

// Range returns every point within radius of point q, q itself included,
// ordered by ascending distance then ascending index.
func (f *Index) Range(q int, radius float64) (pointset.NeighborList, error) {
	if err := f.ps.CheckIndex("range", "query", q); err != nil {
		return nil, err
	}
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, pointset.NewArgumentError("range", "radius", radius, "radius must be finite and non-negative")
	}

	qp := f.ps.At(q)
	r2 := radius * radius
	var items []queue.Item
	for j, p := range f.ps.All() {
		if d2 := distance.SquaredL2(qp, p); d2 <= r2 {
			items = append(items, queue.Item{Index: j, Dist2: d2})
		}
	}
	queue.Sort(items)
	return queue.ToNeighbors(items), nil
}

// KNN returns the k points nearest to point q, q itself included, ordered by
// ascending distance then ascending index.
func (f *Index) KNN(q int, k int) (pointset.NeighborList, error) {
	if err := f.ps.CheckIndex("knn", "query", q); err != nil {
		return nil, err
	}
	if k < 1 || k > f.ps.Len() {
		return nil, pointset.NewArgumentError("knn", "k", k, "k must be in [1, N]")
	}

	qp := f.ps.At(q)
	pq := queue.NewMax(k)
	for j, p := range f.ps.All() {
		pq.PushBounded(queue.Item{Index: j, Dist2: distance.SquaredL2(qp, p)}, k)
	}
	return queue.ToNeighbors(pq.Items()), nil
}
