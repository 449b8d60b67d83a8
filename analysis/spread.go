package analysis

import (
	"math"

	"github.com/hupe1980/pointgo/distance"
	"github.com/hupe1980/pointgo/pointset"
)

func checkSelection(op string, ps *pointset.PointSet, sel pointset.Selection, minLen int) error {
	if ps == nil {
		return pointset.NewArgumentError(op, "point set", nil, "point set is nil")
	}
	if len(sel) < minLen {
		return pointset.NewArgumentError(op, "selection", len(sel), "selection is too short")
	}
	for _, i := range sel {
		if err := ps.CheckIndex(op, "selection", i); err != nil {
			return err
		}
	}
	return nil
}

// MinPairwiseDistance returns the smallest distance between two selected
// points. The selection needs at least two entries.
func MinPairwiseDistance(ps *pointset.PointSet, sel pointset.Selection) (float64, error) {
	if err := checkSelection("min pairwise distance", ps, sel, 2); err != nil {
		return 0, err
	}

	best := math.Inf(1)
	for i := range sel {
		a := ps.At(sel[i])
		for _, j := range sel[i+1:] {
			best = min(best, distance.SquaredL2(a, ps.At(j)))
		}
	}
	return math.Sqrt(best), nil
}

// CoverageRadius returns the largest distance from any point of ps to its
// nearest selected point. Smaller is better covered.
func CoverageRadius(ps *pointset.PointSet, sel pointset.Selection) (float64, error) {
	if err := checkSelection("coverage radius", ps, sel, 1); err != nil {
		return 0, err
	}

	worst := 0.0
	for _, p := range ps.All() {
		best := math.Inf(1)
		for _, s := range sel {
			best = min(best, distance.SquaredL2(p, ps.At(s)))
		}
		worst = max(worst, best)
	}
	return math.Sqrt(worst), nil
}
