package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, Compare(Item{Index: 5, Dist2: 1}, Item{Index: 0, Dist2: 2}))
	assert.Equal(t, -1, Compare(Item{Index: 1, Dist2: 2}, Item{Index: 3, Dist2: 2}))
	assert.Equal(t, 0, Compare(Item{Index: 3, Dist2: 2}, Item{Index: 3, Dist2: 2}))
	assert.Equal(t, 1, Compare(Item{Index: 0, Dist2: 3}, Item{Index: 9, Dist2: 2}))
}

func TestPriorityQueue(t *testing.T) {
	input := []Item{
		{Index: 4, Dist2: 2},
		{Index: 1, Dist2: 5},
		{Index: 2, Dist2: 2},
		{Index: 0, Dist2: 9},
		{Index: 3, Dist2: 1},
	}

	t.Run("Nearest", func(t *testing.T) {
		pq := NewMin(len(input))
		for _, it := range input {
			pq.Push(it)
		}
		var got []int
		for pq.Len() > 0 {
			it, ok := pq.Pop()
			require.True(t, ok)
			got = append(got, it.Index)
		}
		assert.Equal(t, []int{3, 2, 4, 1, 0}, got)
	})

	t.Run("Worst", func(t *testing.T) {
		pq := NewMax(len(input))
		for _, it := range input {
			pq.Push(it)
		}
		var got []int
		for pq.Len() > 0 {
			it, _ := pq.Pop()
			got = append(got, it.Index)
		}
		assert.Equal(t, []int{0, 1, 4, 2, 3}, got)
	})

	t.Run("Farthest", func(t *testing.T) {
		pq := New(Farthest, len(input))
		for _, it := range input {
			pq.Push(it)
		}
		var got []int
		for pq.Len() > 0 {
			it, _ := pq.Pop()
			got = append(got, it.Index)
		}
		assert.Equal(t, []int{0, 1, 2, 4, 3}, got)
	})

	t.Run("Empty", func(t *testing.T) {
		pq := NewMin(0)
		_, ok := pq.Pop()
		assert.False(t, ok)
		_, ok = pq.Top()
		assert.False(t, ok)
	})
}

func TestPushBounded(t *testing.T) {
	pq := NewMax(2)
	assert.True(t, pq.PushBounded(Item{Index: 0, Dist2: 4}, 2))
	assert.True(t, pq.PushBounded(Item{Index: 1, Dist2: 1}, 2))
	assert.False(t, pq.PushBounded(Item{Index: 2, Dist2: 4}, 2), "tie with larger index loses")
	assert.True(t, pq.PushBounded(Item{Index: 3, Dist2: 2}, 2))

	items := pq.Items()
	assert.Equal(t, []Item{{Index: 1, Dist2: 1}, {Index: 3, Dist2: 2}}, items)
	assert.Equal(t, 0, pq.Len())
}

func TestToNeighbors(t *testing.T) {
	got := ToNeighbors([]Item{{Index: 2, Dist2: 4}, {Index: 0, Dist2: 9}})
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Index)
	assert.InDelta(t, 2.0, got[0].Distance, 1e-12)
	assert.InDelta(t, 3.0, got[1].Distance, 1e-12)
}
