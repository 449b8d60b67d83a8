package pointset

import "slices"

// Selection is an ordered sequence of distinct point indices produced by a
// sampler. Order is significant for farthest point sampling (discovery order)
// and arbitrary for random sampling.
type Selection []int

// Clone returns a copy of s.
func (s Selection) Clone() Selection { return slices.Clone(s) }

// Neighbor is a point index paired with its Euclidean distance to a query point.
type Neighbor struct {
	Index    int     `json:"index"`
	Distance float64 `json:"distance"`
}

// NeighborList is the result of a neighborhood query, ordered by ascending
// distance with ascending index breaking ties.
type NeighborList []Neighbor

// Indices returns the neighbor indices in result order.
func (l NeighborList) Indices() []int {
	out := make([]int, len(l))
	for i, n := range l {
		out[i] = n.Index
	}
	return out
}

// Distances returns the neighbor distances in result order.
func (l NeighborList) Distances() []float64 {
	out := make([]float64, len(l))
	for i, n := range l {
		out[i] = n.Distance
	}
	return out
}
