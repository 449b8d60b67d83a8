package pointset

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Normalize returns a copy of ps centered on its centroid and scaled so the
// farthest point lies on the unit sphere.
//
// It fails with ErrInvalidArgument when all points coincide, since no scale
// factor exists.
func (ps *PointSet) Normalize() (*PointSet, error) {
	c := ps.Centroid()
	centered := make([]r3.Vec, len(ps.points))
	var scale float64
	for i, p := range ps.points {
		centered[i] = r3.Sub(p, c)
		scale = math.Max(scale, r3.Norm(centered[i]))
	}
	if scale == 0 {
		return nil, NewArgumentError("normalize", "points", len(ps.points), "all points coincide")
	}
	for i := range centered {
		centered[i] = r3.Scale(1/scale, centered[i])
	}
	return wrap(centered), nil
}
