package clusters

import "math/rand"

// Blobs generates n points of dimension p around k random centers. Centers
// and noise are standard normal and every point's true label is drawn
// uniformly from [0,k).
func Blobs(rng *rand.Rand, n, p, k int) ([][]float64, Assignment, error) {
	if n < 1 || p < 1 || k < 1 {
		return nil, nil, invalidf("blobs need positive n, p and k, got %d, %d, %d", n, p, k)
	}

	c := make([][]float64, k)
	for j := range c {
		c[j] = make([]float64, p)
		for i := range c[j] {
			c[j][i] = rng.NormFloat64()
		}
	}

	var (
		d  = make([][]float64, n)
		gt = make(Assignment, n)
	)

	for i := range d {
		gt[i] = rng.Intn(k)
	}

	for i := range d {
		d[i] = make([]float64, p)
		for j := range d[i] {
			d[i][j] = rng.NormFloat64() + c[gt[i]][j]
		}
	}

	return d, gt, nil
}
