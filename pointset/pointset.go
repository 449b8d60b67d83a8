package pointset

import (
	"iter"
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hupe1980/pointgo/internal/conv"
)

var nextID atomic.Uint64

// PointSet is an immutable ordered sequence of N >= 1 points in R^3.
//
// Constructors copy their input and there are no mutators, so an index built
// over a PointSet can never observe changed contents. ID identifies the set
// for index binding checks.
type PointSet struct {
	id     uint64
	points []r3.Vec
}

// New creates a PointSet from a copy of points.
// It fails with ErrInvalidArgument if points is empty, holds more than
// math.MaxUint32 points, or any coordinate is NaN or infinite.
func New(points []r3.Vec) (*PointSet, error) {
	if len(points) == 0 {
		return nil, NewArgumentError("pointset", "points", 0, "point set must not be empty")
	}
	if _, err := conv.IntToUint32(len(points)); err != nil {
		return nil, NewArgumentError("pointset", "points", len(points), "point set exceeds the uint32 index space")
	}
	for i, p := range points {
		if !finite(p) {
			return nil, NewArgumentError("pointset", "points", i, "coordinates must be finite")
		}
	}
	cp := make([]r3.Vec, len(points))
	copy(cp, points)
	return wrap(cp), nil
}

// FromCoords creates a PointSet from coordinate triples.
func FromCoords(coords [][3]float64) (*PointSet, error) {
	points := make([]r3.Vec, len(coords))
	for i, c := range coords {
		points[i] = r3.Vec{X: c[0], Y: c[1], Z: c[2]}
	}
	return New(points)
}

// FromFlat creates a PointSet from a row-major N×3 array, the layout emitted
// by mesh-to-point-cloud converters.
func FromFlat(flat []float64) (*PointSet, error) {
	if len(flat)%3 != 0 {
		return nil, NewArgumentError("pointset", "flat", len(flat), "length must be a multiple of 3")
	}
	points := make([]r3.Vec, len(flat)/3)
	for i := range points {
		points[i] = r3.Vec{X: flat[3*i], Y: flat[3*i+1], Z: flat[3*i+2]}
	}
	return New(points)
}

// wrap takes ownership of points without copying or validating.
func wrap(points []r3.Vec) *PointSet {
	return &PointSet{id: nextID.Add(1), points: points}
}

func finite(p r3.Vec) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) &&
		!math.IsNaN(p.Z) && !math.IsInf(p.Z, 0)
}

// ID returns the process-unique identifier of the set.
func (ps *PointSet) ID() uint64 { return ps.id }

// Len returns the number of points.
func (ps *PointSet) Len() int { return len(ps.points) }

// At returns point i. It panics if i is out of range.
func (ps *PointSet) At(i int) r3.Vec { return ps.points[i] }

// Points returns a copy of the points.
func (ps *PointSet) Points() []r3.Vec {
	cp := make([]r3.Vec, len(ps.points))
	copy(cp, ps.points)
	return cp
}

// Flat returns the points as a row-major N×3 array.
func (ps *PointSet) Flat() []float64 {
	flat := make([]float64, 0, 3*len(ps.points))
	for _, p := range ps.points {
		flat = append(flat, p.X, p.Y, p.Z)
	}
	return flat
}

// All iterates over (index, point) pairs in index order.
func (ps *PointSet) All() iter.Seq2[int, r3.Vec] {
	return func(yield func(int, r3.Vec) bool) {
		for i, p := range ps.points {
			if !yield(i, p) {
				return
			}
		}
	}
}

// CheckIndex validates that i is a valid point index for op.
func (ps *PointSet) CheckIndex(op, arg string, i int) error {
	if i < 0 || i >= len(ps.points) {
		return NewArgumentError(op, arg, i, "index out of range")
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the set.
func (ps *PointSet) Bounds() (lo, hi r3.Vec) {
	lo, hi = ps.points[0], ps.points[0]
	for _, p := range ps.points[1:] {
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	return lo, hi
}

// Centroid returns the arithmetic mean of the points.
func (ps *PointSet) Centroid() r3.Vec {
	var sum r3.Vec
	for _, p := range ps.points {
		sum = r3.Add(sum, p)
	}
	return r3.Scale(1/float64(len(ps.points)), sum)
}

// Subset gathers the selected points into a new PointSet, preserving
// selection order. Point i of the result is point sel[i] of ps.
func (ps *PointSet) Subset(sel Selection) (*PointSet, error) {
	if len(sel) == 0 {
		return nil, NewArgumentError("subset", "selection", 0, "selection must not be empty")
	}
	points := make([]r3.Vec, len(sel))
	for i, idx := range sel {
		if err := ps.CheckIndex("subset", "selection", idx); err != nil {
			return nil, err
		}
		points[i] = ps.points[idx]
	}
	return wrap(points), nil
}
