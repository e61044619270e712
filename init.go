package clusters

// seed picks the k initial centroids. The returned rows are copies and never
// alias data.
func seed(data [][]float64, k int, s InitStrategy, rng RandomSource) [][]float64 {
	switch s {
	case InitDistinct:
		return seedDistinct(data, k, rng)
	case InitPlusPlus:
		return seedPlusPlus(data, k, rng)
	default:
		return seedRandom(data, k, rng)
	}
}

// seedRandom draws with replacement, so two centroids may start on the same
// point.
func seedRandom(data [][]float64, k int, rng RandomSource) [][]float64 {
	m := make([][]float64, k)
	for j := range m {
		m[j] = copyPoint(data[rng.Intn(len(data))])
	}
	return m
}

func seedDistinct(data [][]float64, k int, rng RandomSource) [][]float64 {
	var (
		n   = len(data)
		idx = make([]int, n)
		m   = make([][]float64, k)
	)

	for i := range idx {
		idx[i] = i
	}

	for j := 0; j < k; j++ {
		r := j + rng.Intn(n-j)
		idx[j], idx[r] = idx[r], idx[j]
		m[j] = copyPoint(data[idx[j]])
	}

	return m
}

// seedPlusPlus picks the first centroid uniformly and every further one with
// probability proportional to its squared distance from the nearest centroid
// chosen so far.
func seedPlusPlus(data [][]float64, k int, rng RandomSource) [][]float64 {
	var (
		n = len(data)
		m = make([][]float64, k)
		d = make([]float64, n)
	)

	m[0] = copyPoint(data[rng.Intn(n)])

	for i := range data {
		d[i] = squaredDistance(data[i], m[0])
	}

	for j := 1; j < k; j++ {
		var s float64
		for _, v := range d {
			s += v
		}

		var c int
		if s == 0 {
			// Every point already sits on a centroid.
			c = rng.Intn(n)
		} else {
			t := rng.Float64() * s
			for w := d[0]; w <= t && c < n-1; {
				c++
				w += d[c]
			}
		}

		m[j] = copyPoint(data[c])

		for i := range data {
			if f := squaredDistance(data[i], m[j]); f < d[i] {
				d[i] = f
			}
		}
	}

	return m
}
