package clusters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const TOLERANCE = 0.000001

func TestImportedLoadDataOfCorrectLength(t *testing.T) {
	d, err := NewCsvImporter().Import("testdata/points.csv", 0, 2)
	require.NoError(t, err)

	assert.Len(t, d, 3)
}

func TestImportedLoadCorrectData(t *testing.T) {
	s := [][]float64{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.6},
		{0.7, 0.8, 0.9},
	}

	d, err := NewCsvImporter().Import("testdata/points.csv", 0, 2)
	require.NoError(t, err)
	require.Len(t, d, len(s))

	for i := range s {
		assert.InDeltaSlice(t, s[i], d[i], TOLERANCE)
	}
}

func TestImportColumnSubset(t *testing.T) {
	in := "id,label,x,y\n1,a,1.5,2\n2,b,-3,4e1\n"

	d, err := NewCsvImporter().ImportReader(strings.NewReader(in), 2, 3)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1.5, 2}, {-3, 40}}, d)
}

func TestImportErrors(t *testing.T) {
	i := NewCsvImporter()

	_, err := i.ImportReader(strings.NewReader("1,2\n"), 2, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = i.ImportReader(strings.NewReader("1,2\n3\n"), 0, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = i.ImportReader(strings.NewReader("a,b\n"), 0, 1)
	assert.ErrorIs(t, err, ErrEmptySet)

	_, err = i.Import("testdata/missing.csv", 0, 1)
	assert.Error(t, err)
}

func TestImportFeedsCluster(t *testing.T) {
	d, err := NewCsvImporter().Import("testdata/points.csv", 0, 1)
	require.NoError(t, err)

	r, err := Cluster(d, 3, WithRand(newRand(1)), WithInit(InitDistinct))
	require.NoError(t, err)
	assert.True(t, r.Converged)
}

func BenchmarkCluster(b *testing.B) {
	d, _, err := Blobs(newRand(0), 10000, 8, 16)
	require.NoError(b, err)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Cluster(d, 16, WithRand(newRand(int64(i)))); err != nil {
			b.Fatal(err)
		}
	}
}
