package flat

import (
	"testing"

	"github.com/hupe1980/pointgo/pointset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(t *testing.T) *pointset.PointSet {
	t.Helper()
	ps, err := pointset.FromCoords([][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {10, 0, 0}})
	require.NoError(t, err)
	return ps
}

func TestFlat(t *testing.T) {
	f := New(line(t))
	assert.Equal(t, "Flat", f.Name())
	assert.Equal(t, 4, f.Len())

	t.Run("Range", func(t *testing.T) {
		got, err := f.Range(0, 1.5)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, got.Indices())
		assert.Equal(t, []float64{0, 1}, got.Distances())
	})

	t.Run("RangeInclusive", func(t *testing.T) {
		got, err := f.Range(0, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, got.Indices())
	})

	t.Run("RangeZero", func(t *testing.T) {
		got, err := f.Range(3, 0)
		require.NoError(t, err)
		assert.Equal(t, []int{3}, got.Indices())
	})

	t.Run("KNN", func(t *testing.T) {
		got, err := f.KNN(0, 3)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, got.Indices())

		got, err = f.KNN(3, 4)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2, 1, 0}, got.Indices())
	})

	t.Run("KNNTieBreak", func(t *testing.T) {
		got, err := f.KNN(1, 3)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0, 2}, got.Indices())
	})

	t.Run("InvalidArguments", func(t *testing.T) {
		_, err := f.Range(4, 1)
		assert.ErrorIs(t, err, pointset.ErrInvalidArgument)
		_, err = f.Range(0, -1)
		assert.ErrorIs(t, err, pointset.ErrInvalidArgument)
		_, err = f.KNN(0, 0)
		assert.ErrorIs(t, err, pointset.ErrInvalidArgument)
		_, err = f.KNN(0, 5)
		assert.ErrorIs(t, err, pointset.ErrInvalidArgument)
	})
}
