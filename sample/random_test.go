package sample

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pointgo/pointset"
	"github.com/hupe1980/pointgo/testutil"
)

func assertDistinctInRange(t *testing.T, sel pointset.Selection, n int) {
	t.Helper()
	seen := make(map[int]bool, len(sel))
	for _, i := range sel {
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, n)
		require.False(t, seen[i], "duplicate index %d", i)
		seen[i] = true
	}
}

func TestRandom(t *testing.T) {
	ps := testutil.NewRNG(1).UniformCloud(200)

	for _, m := range []int{0, 1, 17, 199, 200} {
		sel, err := Random(ps, m, WithSeed(uint64(m)))
		require.NoError(t, err)
		assert.Len(t, sel, m)
		assertDistinctInRange(t, sel, ps.Len())
	}
}

func TestRandomDeterministic(t *testing.T) {
	ps := testutil.NewRNG(1).UniformCloud(1000)

	a, err := Random(ps, 50, WithSeed(42))
	require.NoError(t, err)
	b, err := Random(ps, 50, WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Random(ps, 50, WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRandomWithRand(t *testing.T) {
	ps := testutil.NewRNG(1).UniformCloud(100)

	r := rand.New(rand.NewPCG(1, 2))
	a, err := Random(ps, 10, WithRand(r))
	require.NoError(t, err)
	b, err := Random(ps, 10, WithRand(r))
	require.NoError(t, err)
	// A shared generator advances between calls.
	assert.NotEqual(t, a, b)

	r = rand.New(rand.NewPCG(1, 2))
	c, err := Random(ps, 10, WithRand(r), WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestRandomUniform(t *testing.T) {
	ps := testutil.NewRNG(1).UniformCloud(10)
	r := rand.New(rand.NewPCG(7, 7))

	const trials = 20000
	counts := make([]int, ps.Len())
	for range trials {
		sel, err := Random(ps, 3, WithRand(r))
		require.NoError(t, err)
		for _, i := range sel {
			counts[i]++
		}
	}

	want := float64(trials) * 3 / 10
	for i, c := range counts {
		assert.InDelta(t, want, float64(c), want*0.05, "index %d", i)
	}
}

func TestRandomInvalid(t *testing.T) {
	ps := testutil.NewRNG(1).UniformCloud(5)

	_, err := Random(ps, 6)
	assert.ErrorIs(t, err, pointset.ErrInvalidArgument)
	_, err = Random(ps, -1)
	assert.ErrorIs(t, err, pointset.ErrInvalidArgument)
	_, err = Random(nil, 0)
	assert.ErrorIs(t, err, pointset.ErrInvalidArgument)
}
