package sample

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/pointgo/distance"
	"github.com/hupe1980/pointgo/index"
	"github.com/hupe1980/pointgo/internal/queue"
	"github.com/hupe1980/pointgo/pointset"
)

// FPS selects m points by farthest point sampling. 1 <= m <= ps.Len().
//
// The first selection is the start index (0 unless WithStart is given).
// Every following selection is the unselected point with the largest
// distance to its nearest selected point, ties broken by the smallest index.
//
// FPS fails with ErrInvalidArgument when the next selection would coincide
// with an already selected point, which happens when m exceeds the number of
// distinct positions in ps.
func FPS(ps *pointset.PointSet, m int, opts ...Option) (pointset.Selection, error) {
	if ps == nil {
		return nil, pointset.NewArgumentError("fps", "point set", nil, "point set is nil")
	}
	n := ps.Len()
	if m < 1 || m > n {
		return nil, pointset.NewArgumentError("fps", "m", m, "m must be in [1, N]")
	}

	o := applyOptions(opts)
	if err := ps.CheckIndex("fps", "start", o.start); err != nil {
		return nil, err
	}

	idx := o.idx
	if idx != nil {
		if err := index.Check("fps", idx, ps); err != nil {
			return nil, err
		}
	} else if o.strategy != index.StrategyBruteForce {
		var err error
		if idx, err = index.Build(o.strategy, ps); err != nil {
			return nil, err
		}
	}

	s := &fpsState{
		ps:       ps,
		minDist2: make([]float64, n),
		selected: roaring.New(),
		out:      make(pointset.Selection, 0, m),
	}
	for i := range s.minDist2 {
		s.minDist2[i] = math.Inf(1)
	}

	if idx == nil {
		return s.naive(o.start, m)
	}
	return s.indexed(idx, o.start, m)
}

type fpsState struct {
	ps       *pointset.PointSet
	minDist2 []float64
	selected *roaring.Bitmap
	out      pointset.Selection
}

func (s *fpsState) take(i int) {
	s.out = append(s.out, i)
	s.selected.Add(uint32(i))
	s.minDist2[i] = 0
}

// relax lowers the bookkeeping distance of j against the new selection p.
// It reports whether the distance changed.
func (s *fpsState) relax(p int, j int) bool {
	if d2 := distance.SquaredL2(s.ps.At(p), s.ps.At(j)); d2 < s.minDist2[j] {
		s.minDist2[j] = d2
		return true
	}
	return false
}

func (s *fpsState) exhausted(m int) error {
	return pointset.NewArgumentError("fps", "m", m, "not enough distinct points")
}

// naive is the O(N*m) reference: a full scan per selection.
func (s *fpsState) naive(start, m int) (pointset.Selection, error) {
	n := s.ps.Len()
	cur := start
	s.take(cur)
	for len(s.out) < m {
		best, bestDist2 := -1, -1.0
		for j := range n {
			if s.selected.Contains(uint32(j)) {
				continue
			}
			s.relax(cur, j)
			if s.minDist2[j] > bestDist2 {
				best, bestDist2 = j, s.minDist2[j]
			}
		}
		if bestDist2 == 0 {
			return nil, s.exhausted(m)
		}
		cur = best
		s.take(cur)
	}
	return s.out, nil
}

// indexed revisits only the points within the current farthest distance of
// each new selection. A point farther than that from the new selection keeps
// its distance, because its distance is already at most the farthest one.
// Candidates live in a lazy max-heap; entries superseded by a smaller
// distance are skipped on pop.
func (s *fpsState) indexed(idx index.Index, start, m int) (pointset.Selection, error) {
	n := s.ps.Len()
	pq := queue.New(queue.Farthest, n)

	s.take(start)
	for j := range n {
		if j != start {
			s.relax(start, j)
			pq.Push(queue.Item{Index: j, Dist2: s.minDist2[j]})
		}
	}

	for len(s.out) < m {
		next, ok := s.pop(pq)
		if !ok || next.Dist2 == 0 {
			return nil, s.exhausted(m)
		}
		s.take(next.Index)
		if len(s.out) == m {
			break
		}

		// The radius is nudged up one ulp so the squared radius the index
		// compares against is never below next.Dist2.
		radius := math.Nextafter(math.Sqrt(next.Dist2), math.Inf(1))
		nbrs, err := idx.Range(next.Index, radius)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbrs {
			j := nb.Index
			if s.selected.Contains(uint32(j)) {
				continue
			}
			if s.relax(next.Index, j) {
				pq.Push(queue.Item{Index: j, Dist2: s.minDist2[j]})
			}
		}
	}
	return s.out, nil
}

// pop returns the top entry that is still current.
func (s *fpsState) pop(pq *queue.PriorityQueue) (queue.Item, bool) {
	for {
		it, ok := pq.Pop()
		if !ok {
			return queue.Item{}, false
		}
		if s.selected.Contains(uint32(it.Index)) || it.Dist2 != s.minDist2[it.Index] {
			continue
		}
		return it, true
	}
}
