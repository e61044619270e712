package clusters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInitStrategy(t *testing.T) {
	for _, s := range []InitStrategy{InitRandom, InitDistinct, InitPlusPlus} {
		p, err := ParseInitStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, p)
	}

	p, err := ParseInitStrategy("KMeans++")
	require.NoError(t, err)
	assert.Equal(t, InitPlusPlus, p)

	_, err = ParseInitStrategy("forgy")
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Equal(t, "unknown", InitStrategy(-1).String())
}

func TestParseEmptyClusterPolicy(t *testing.T) {
	for _, s := range []EmptyClusterPolicy{EmptyClusterReseed, EmptyClusterKeep, EmptyClusterFail} {
		p, err := ParseEmptyClusterPolicy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, p)
	}

	_, err := ParseEmptyClusterPolicy("split")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDefaultConfig(t *testing.T) {
	c := newConfig(nil)

	assert.Equal(t, DefaultIterations, c.Iterations)
	assert.Equal(t, InitRandom, c.Init)
	assert.Equal(t, EmptyClusterReseed, c.EmptyCluster)
	assert.Nil(t, c.Rand)
	assert.NoError(t, c.validate())

	c = newConfig([]Option{WithIterations(3), WithInit(InitDistinct), WithEmptyClusterPolicy(EmptyClusterKeep)})
	assert.Equal(t, 3, c.Iterations)
	assert.Equal(t, InitDistinct, c.Init)
	assert.Equal(t, EmptyClusterKeep, c.EmptyCluster)
}
