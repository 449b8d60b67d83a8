// Package queue provides binary heaps of (index, squared distance) items.
//
// Items compare lexicographically by squared distance, then by index. This is
// the ordering every pointgo result follows, so heaps built on it produce
// deterministic output regardless of insertion order.
package queue

import (
	"cmp"
	"math"
	"slices"

	"github.com/hupe1980/pointgo/pointset"
)

// Item is a point index with its squared distance to a query point.
type Item struct {
	Index int
	Dist2 float64
}

// Compare orders items by ascending squared distance, then ascending index.
func Compare(a, b Item) int {
	if c := cmp.Compare(a.Dist2, b.Dist2); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}

// Sort sorts items in place by Compare.
func Sort(items []Item) {
	slices.SortFunc(items, Compare)
}

// Order selects which item sits on top of a PriorityQueue.
type Order int

const (
	// Nearest keeps the smallest item by Compare on top.
	Nearest Order = iota
	// Worst keeps the largest item by Compare on top.
	// A Worst heap bounded to k items holds the k nearest seen so far.
	Worst
	// Farthest keeps the largest distance on top, smallest index first among
	// equal distances.
	Farthest
)

// PriorityQueue is a value-based binary heap of Items.
type PriorityQueue struct {
	order Order
	items []Item
}

// New initializes a priority queue with the given order.
func New(order Order, capacity int) *PriorityQueue {
	return &PriorityQueue{
		order: order,
		items: make([]Item, 0, capacity),
	}
}

// NewMin initializes a priority queue with the nearest item on top.
func NewMin(capacity int) *PriorityQueue { return New(Nearest, capacity) }

// NewMax initializes a priority queue with the worst item on top.
func NewMax(capacity int) *PriorityQueue { return New(Worst, capacity) }

// Len returns the number of items in the queue.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

// Top returns the top item of the heap.
func (pq *PriorityQueue) Top() (Item, bool) {
	if len(pq.items) == 0 {
		return Item{}, false
	}
	return pq.items[0], true
}

// Push inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue) Push(item Item) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// Pop removes and returns the top item while maintaining the heap invariant.
func (pq *PriorityQueue) Pop() (Item, bool) {
	n := len(pq.items)
	if n == 0 {
		return Item{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

// PushBounded keeps at most k items in a Worst queue: the item is added if
// the queue has room or if it compares below the current top, which is
// then evicted. It reports whether the item was kept.
func (pq *PriorityQueue) PushBounded(item Item, k int) bool {
	if len(pq.items) < k {
		pq.Push(item)
		return true
	}
	if k == 0 || Compare(item, pq.items[0]) >= 0 {
		return false
	}
	pq.items[0] = item
	pq.siftDown(0)
	return true
}

// Items returns the queued items sorted by Compare. The queue is left empty.
func (pq *PriorityQueue) Items() []Item {
	out := pq.items
	pq.items = nil
	Sort(out)
	return out
}

// above reports whether item i belongs above item j.
func (pq *PriorityQueue) above(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	switch pq.order {
	case Worst:
		return Compare(a, b) > 0
	case Farthest:
		if a.Dist2 != b.Dist2 {
			return a.Dist2 > b.Dist2
		}
		return a.Index < b.Index
	default:
		return Compare(a, b) < 0
	}
}

func (pq *PriorityQueue) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.above(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && pq.above(r, l) {
			best = r
		}
		if !pq.above(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}

// ToNeighbors converts sorted items to a NeighborList with Euclidean distances.
func ToNeighbors(items []Item) pointset.NeighborList {
	out := make(pointset.NeighborList, len(items))
	for i, it := range items {
		out[i] = pointset.Neighbor{Index: it.Index, Distance: math.Sqrt(it.Dist2)}
	}
	return out
}
