package testutil

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hupe1980/pointgo/pointset"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// UniformCloud generates n points uniformly distributed in [0, 1)^3.
func (r *RNG) UniformCloud(n int) *pointset.PointSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]r3.Vec, n)
	for i := range pts {
		pts[i] = r3.Vec{X: r.rand.Float64(), Y: r.rand.Float64(), Z: r.rand.Float64()}
	}
	return mustNew(pts)
}

// GaussianCloud generates n points from a standard normal distribution.
func (r *RNG) GaussianCloud(n int) *pointset.PointSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]r3.Vec, n)
	for i := range pts {
		pts[i] = r3.Vec{X: r.rand.NormFloat64(), Y: r.rand.NormFloat64(), Z: r.rand.NormFloat64()}
	}
	return mustNew(pts)
}

// ClusteredCloud generates n points around random centers in the unit cube.
// spread is the standard deviation of the Gaussian noise around each center.
func (r *RNG) ClusteredCloud(n, clusters int, spread float64) *pointset.PointSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	centers := make([]r3.Vec, clusters)
	for i := range centers {
		centers[i] = r3.Vec{X: r.rand.Float64(), Y: r.rand.Float64(), Z: r.rand.Float64()}
	}

	pts := make([]r3.Vec, n)
	for i := range pts {
		c := centers[i%clusters]
		pts[i] = r3.Vec{
			X: c.X + r.rand.NormFloat64()*spread,
			Y: c.Y + r.rand.NormFloat64()*spread,
			Z: c.Z + r.rand.NormFloat64()*spread,
		}
	}
	return mustNew(pts)
}

// LatticeCloud generates the side^3 integer lattice points in shuffled order.
// Lattices have many exactly equal pairwise distances, which exercises tie
// handling.
func (r *RNG) LatticeCloud(side int) *pointset.PointSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]r3.Vec, 0, side*side*side)
	for x := range side {
		for y := range side {
			for z := range side {
				pts = append(pts, r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)})
			}
		}
	}
	r.rand.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })
	return mustNew(pts)
}

func mustNew(pts []r3.Vec) *pointset.PointSet {
	ps, err := pointset.New(pts)
	if err != nil {
		panic(err)
	}
	return ps
}

func squared(a, b r3.Vec) float64 {
	return r3.Norm2(r3.Sub(a, b))
}

// ExactRange returns every point within radius of point q by exhaustive
// scan, ordered by ascending distance then ascending index.
func ExactRange(ps *pointset.PointSet, q int, radius float64) pointset.NeighborList {
	qp := ps.At(q)
	r2 := radius * radius
	var out pointset.NeighborList
	dist2 := make(map[int]float64)
	for j, p := range ps.All() {
		if d2 := squared(qp, p); d2 <= r2 {
			dist2[j] = d2
			out = append(out, pointset.Neighbor{Index: j, Distance: math.Sqrt(d2)})
		}
	}
	slices.SortFunc(out, func(a, b pointset.Neighbor) int {
		if c := cmp.Compare(dist2[a.Index], dist2[b.Index]); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
	return out
}

// ExactKNN returns the k nearest points to point q by exhaustive scan,
// q itself included.
func ExactKNN(ps *pointset.PointSet, q, k int) pointset.NeighborList {
	all := ExactRange(ps, q, math.Inf(1))
	return all[:min(k, len(all))]
}

// NaiveFPS is the textbook O(N*M) farthest point sampling. Ties are broken
// by the smallest index.
func NaiveFPS(ps *pointset.PointSet, m, start int) []int {
	n := ps.Len()
	minDist := make([]float64, n)
	for i := range minDist {
		minDist[i] = math.Inf(1)
	}

	out := make([]int, 0, m)
	cur := start
	for len(out) < m {
		out = append(out, cur)
		minDist[cur] = 0
		best, bestDist := -1, -1.0
		for j, p := range ps.All() {
			if d := squared(ps.At(cur), p); d < minDist[j] {
				minDist[j] = d
			}
			if minDist[j] > bestDist {
				best, bestDist = j, minDist[j]
			}
		}
		cur = best
	}
	return out
}

// CoverageRadius returns the largest distance from any point to its
// nearest selected point.
func CoverageRadius(ps *pointset.PointSet, sel []int) float64 {
	worst := 0.0
	for _, p := range ps.All() {
		best := math.Inf(1)
		for _, s := range sel {
			best = min(best, squared(p, ps.At(s)))
		}
		worst = max(worst, best)
	}
	return math.Sqrt(worst)
}

// ComputeRecall computes the fraction of ground-truth indices present in
// the approximate result.
func ComputeRecall(groundTruth, approximate []int) float64 {
	if len(groundTruth) == 0 {
		if len(approximate) == 0 {
			return 1.0
		}
		return 0.0
	}

	truthSet := make(map[int]struct{}, len(groundTruth))
	for _, i := range groundTruth {
		truthSet[i] = struct{}{}
	}

	hits := 0
	for _, i := range approximate {
		if _, ok := truthSet[i]; ok {
			hits++
		}
	}

	return float64(hits) / float64(len(groundTruth))
}
