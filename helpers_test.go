package clusters

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws so tests can force particular seeds.
type scriptedSource struct {
	t      *testing.T
	ints   []int
	floats []float64
}

func (s *scriptedSource) Intn(n int) int {
	s.t.Helper()
	require.NotEmpty(s.t, s.ints, "unexpected Intn(%d)", n)

	v := s.ints[0]
	s.ints = s.ints[1:]

	require.Less(s.t, v, n)
	return v
}

func (s *scriptedSource) Float64() float64 {
	s.t.Helper()
	require.NotEmpty(s.t, s.floats, "unexpected Float64()")

	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func twoGroups() [][]float64 {
	return [][]float64{
		{0, 0}, {0, 1}, {1, 0},
		{10, 10}, {10, 11}, {11, 10},
	}
}

func deepCopy(d [][]float64) [][]float64 {
	c := make([][]float64, len(d))
	for i := range d {
		c[i] = copyPoint(d[i])
	}
	return c
}

func requireValid(t *testing.T, r *Result, n, k, p int) {
	t.Helper()

	require.Len(t, r.Assignment, n)
	for i, l := range r.Assignment {
		require.GreaterOrEqual(t, l, 0, "label of point %d", i)
		require.Less(t, l, k, "label of point %d", i)
	}

	require.Len(t, r.Centroids, k)
	for j, c := range r.Centroids {
		require.Len(t, c, p, "centroid %d", j)
		for _, v := range c {
			require.False(t, math.IsNaN(v), "centroid %d has NaN", j)
		}
	}
}
