package pointset

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNew(t *testing.T) {
	t.Run("CopiesInput", func(t *testing.T) {
		in := []r3.Vec{{X: 1}, {Y: 2}}
		ps, err := New(in)
		require.NoError(t, err)

		in[0].X = 99
		assert.Equal(t, 1.0, ps.At(0).X)
		assert.Equal(t, 2, ps.Len())
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := New(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		var ae *ArgumentError
		require.True(t, errors.As(err, &ae))
		assert.Equal(t, "points", ae.Arg)
	})

	t.Run("NonFinite", func(t *testing.T) {
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := New([]r3.Vec{{}, {Z: v}})
			assert.ErrorIs(t, err, ErrInvalidArgument)
		}
	})

	t.Run("UniqueIDs", func(t *testing.T) {
		a, err := New([]r3.Vec{{}})
		require.NoError(t, err)
		b, err := New([]r3.Vec{{}})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID(), b.ID())
	})
}

func TestFromFlat(t *testing.T) {
	ps, err := FromFlat([]float64{0, 0, 0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 2, ps.Len())
	assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, ps.At(1))
	assert.Equal(t, []float64{0, 0, 0, 1, 2, 3}, ps.Flat())

	_, err = FromFlat([]float64{1, 2})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFromCoords(t *testing.T) {
	ps, err := FromCoords([][3]float64{{0, 0, 0}, {10, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 10.0, ps.At(1).X)
}

func TestCheckIndex(t *testing.T) {
	ps, err := FromCoords([][3]float64{{0, 0, 0}, {1, 0, 0}})
	require.NoError(t, err)

	assert.NoError(t, ps.CheckIndex("op", "q", 0))
	assert.NoError(t, ps.CheckIndex("op", "q", 1))
	assert.ErrorIs(t, ps.CheckIndex("op", "q", 2), ErrInvalidArgument)
	assert.ErrorIs(t, ps.CheckIndex("op", "q", -1), ErrInvalidArgument)
}

func TestBoundsAndCentroid(t *testing.T) {
	ps, err := FromCoords([][3]float64{{-1, 0, 2}, {3, -4, 0}, {1, 1, 1}})
	require.NoError(t, err)

	lo, hi := ps.Bounds()
	assert.Equal(t, r3.Vec{X: -1, Y: -4, Z: 0}, lo)
	assert.Equal(t, r3.Vec{X: 3, Y: 1, Z: 2}, hi)

	c := ps.Centroid()
	assert.InDelta(t, 1.0, c.X, 1e-12)
	assert.InDelta(t, -1.0, c.Y, 1e-12)
	assert.InDelta(t, 1.0, c.Z, 1e-12)
}

func TestNormalize(t *testing.T) {
	ps, err := FromCoords([][3]float64{{0, 0, 0}, {4, 0, 0}, {2, 2, 0}, {2, -2, 0}})
	require.NoError(t, err)

	n, err := ps.Normalize()
	require.NoError(t, err)
	assert.NotEqual(t, ps.ID(), n.ID())

	var maxNorm float64
	for _, p := range n.All() {
		maxNorm = math.Max(maxNorm, r3.Norm(p))
	}
	assert.InDelta(t, 1.0, maxNorm, 1e-12)

	c := n.Centroid()
	assert.InDelta(t, 0.0, r3.Norm(c), 1e-12)

	t.Run("Coincident", func(t *testing.T) {
		ps, err := FromCoords([][3]float64{{1, 1, 1}, {1, 1, 1}})
		require.NoError(t, err)
		_, err = ps.Normalize()
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestSubset(t *testing.T) {
	ps, err := FromCoords([][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}})
	require.NoError(t, err)

	sub, err := ps.Subset(Selection{2, 0})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Len())
	assert.Equal(t, 2.0, sub.At(0).X)
	assert.Equal(t, 0.0, sub.At(1).X)

	_, err = ps.Subset(Selection{5})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ps.Subset(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNeighborList(t *testing.T) {
	l := NeighborList{{Index: 4, Distance: 0.5}, {Index: 1, Distance: 2}}
	assert.Equal(t, []int{4, 1}, l.Indices())
	assert.Equal(t, []float64{0.5, 2}, l.Distances())
}

func TestArgumentError(t *testing.T) {
	err := NewArgumentError("knn", "k", 7, "k must not exceed 3")
	assert.Equal(t, "knn: invalid k 7: k must not exceed 3", err.Error())
	assert.True(t, IsInvalidArgument(err))
	assert.False(t, IsInvalidArgument(errors.New("other")))
}
