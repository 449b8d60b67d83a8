package sample

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/pointgo/pointset"
)

// Random draws m distinct indices from ps uniformly at random without
// replacement. 0 <= m <= ps.Len().
//
// The draw uses Floyd's algorithm, so it costs O(m) regardless of N.
// Indices are returned in draw order, which carries no meaning.
func Random(ps *pointset.PointSet, m int, opts ...Option) (pointset.Selection, error) {
	if ps == nil {
		return nil, pointset.NewArgumentError("random sample", "point set", nil, "point set is nil")
	}
	n := ps.Len()
	if m < 0 || m > n {
		return nil, pointset.NewArgumentError("random sample", "m", m, "m must be in [0, N]")
	}

	o := applyOptions(opts)
	rng := o.generator()

	seen := roaring.New()
	out := make(pointset.Selection, 0, m)
	for j := n - m; j < n; j++ {
		t := rng.IntN(j + 1)
		if seen.Contains(uint32(t)) {
			t = j
		}
		seen.Add(uint32(t))
		out = append(out, t)
	}
	return out, nil
}
