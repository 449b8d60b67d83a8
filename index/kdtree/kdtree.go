// Package kdtree provides a k-d tree spatial index backed by gonum.
//
// Results are exactly those of the flat index: the same squared distance is
// compared against the same inclusive bound, and ties at the k-th nearest
// distance are resolved by index.
package kdtree

import (
	"math"

	kd "gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hupe1980/pointgo/distance"
	"github.com/hupe1980/pointgo/internal/queue"
	"github.com/hupe1980/pointgo/pointset"
)

// randoms is the sample size used to pick a median when splitting a node.
const randoms = 100

// point is a tree node payload: a coordinate tagged with its index.
type point struct {
	idx int
	v   r3.Vec
}

var _ kd.Comparable = point{}

// Compare returns the signed distance of p from the plane through c
// perpendicular to dimension d.
func (p point) Compare(c kd.Comparable, d kd.Dim) float64 {
	q := c.(point)
	switch d {
	case 0:
		return p.v.X - q.v.X
	case 1:
		return p.v.Y - q.v.Y
	default:
		return p.v.Z - q.v.Z
	}
}

func (point) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between p and c.
func (p point) Distance(c kd.Comparable) float64 {
	return distance.SquaredL2(p.v, c.(point).v)
}

type points []point

var _ kd.Interface = points(nil)

func (p points) Index(i int) kd.Comparable         { return p[i] }
func (p points) Len() int                          { return len(p) }
func (p points) Pivot(d kd.Dim) int                { return plane{points: p, Dim: d}.Pivot() }
func (p points) Slice(start, end int) kd.Interface { return p[start:end] }

// plane sorts points along a single dimension.
type plane struct {
	kd.Dim
	points
}

func (p plane) Less(i, j int) bool {
	return p.points[i].Compare(p.points[j], p.Dim) < 0
}

func (p plane) Pivot() int { return kd.Partition(p, kd.MedianOfRandoms(p, randoms)) }

func (p plane) Slice(start, end int) kd.SortSlicer {
	p.points = p.points[start:end]
	return p
}

func (p plane) Swap(i, j int) { p.points[i], p.points[j] = p.points[j], p.points[i] }

// Index is a k-d tree over a PointSet. The tree is immutable once built and
// safe for concurrent queries.
type Index struct {
	ps   *pointset.PointSet
	tree *kd.Tree
}

// New builds a k-d tree over ps.
func New(ps *pointset.PointSet) *Index {
	pts := make(points, ps.Len())
	for i, v := range ps.All() {
		pts[i] = point{idx: i, v: v}
	}
	return &Index{
		ps:   ps,
		tree: kd.New(pts, false),
	}
}

func (*Index) Name() string { return "KDTree" }

// PointSet returns the point set the index was built from.
func (t *Index) PointSet() *pointset.PointSet { return t.ps }

// Point returns the coordinates of point i.
func (t *Index) Point(i int) r3.Vec { return t.ps.At(i) }

// Len returns the number of indexed points.
func (t *Index) Len() int { return t.ps.Len() }

// Range returns every point within radius of point q, q itself included,
// ordered by ascending distance then ascending index.
func (t *Index) Range(q int, radius float64) (pointset.NeighborList, error) {
	if err := t.ps.CheckIndex("range", "query", q); err != nil {
		return nil, err
	}
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, pointset.NewArgumentError("range", "radius", radius, "radius must be finite and non-negative")
	}

	items := t.within(q, radius*radius)
	return queue.ToNeighbors(items), nil
}

// KNN returns the k points nearest to point q, q itself included, ordered by
// ascending distance then ascending index.
func (t *Index) KNN(q int, k int) (pointset.NeighborList, error) {
	if err := t.ps.CheckIndex("knn", "query", q); err != nil {
		return nil, err
	}
	if k < 1 || k > t.ps.Len() {
		return nil, pointset.NewArgumentError("knn", "k", k, "k must be in [1, N]")
	}

	// The first pass finds the k-th smallest squared distance. Several points
	// may share it, and the tree returns an arbitrary subset of them, so the
	// second pass collects all of them and the tie is broken by index.
	keeper := kd.NewNKeeper(k)
	t.tree.NearestSet(keeper, point{idx: q, v: t.ps.At(q)})

	bound := 0.0
	for _, c := range keeper.Heap {
		if c.Comparable != nil && c.Dist > bound {
			bound = c.Dist
		}
	}

	items := t.within(q, bound)
	if len(items) > k {
		items = items[:k]
	}
	return queue.ToNeighbors(items), nil
}

// within returns the sorted items whose squared distance to q is at most r2.
func (t *Index) within(q int, r2 float64) []queue.Item {
	keeper := kd.NewDistKeeper(r2)
	t.tree.NearestSet(keeper, point{idx: q, v: t.ps.At(q)})

	items := make([]queue.Item, 0, len(keeper.Heap))
	for _, c := range keeper.Heap {
		if c.Comparable == nil {
			continue
		}
		items = append(items, queue.Item{Index: c.Comparable.(point).idx, Dist2: c.Dist})
	}
	queue.Sort(items)
	return items
}
