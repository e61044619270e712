package clusters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobs(t *testing.T) {
	d, gt, err := Blobs(newRand(5), 250, 4, 3)
	require.NoError(t, err)

	require.Len(t, d, 250)
	require.Len(t, gt, 250)

	for i := range d {
		assert.Len(t, d[i], 4)
		assert.GreaterOrEqual(t, gt[i], 0)
		assert.Less(t, gt[i], 3)
	}

	e, egt, err := Blobs(newRand(5), 250, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, d, e)
	assert.Equal(t, gt, egt)

	_, _, err = Blobs(newRand(5), 0, 4, 3)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

// Recovers the generating clusters of a synthetic data set well enough that
// the mismatch rate is far below that of random labels (about 0.16 here).
func TestClusterRecoversBlobs(t *testing.T) {
	const (
		k = 5
		p = 10
		n = 1000
	)

	rng := newRand(2024)

	d, gt, err := Blobs(rng, n, p, k)
	require.NoError(t, err)

	r, err := BestOf(context.Background(), d, k, 5, 17, WithInit(InitPlusPlus), WithIterations(100))
	require.NoError(t, err)
	requireValid(t, r, n, k, p)

	mm, err := MismatchRate(r.Assignment, gt, 10000, rng)
	require.NoError(t, err)
	assert.Less(t, mm, 0.12)
}
