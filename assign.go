package clusters

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Assign runs a single assignment step: every point gets the label of its
// nearest centroid under squared Euclidean distance, ties going to the lower
// label. Calling it with the centroids of a converged Result reproduces that
// Result's assignment.
func Assign(data, centroids [][]float64) (Assignment, error) {
	if err := validatePoints(data); err != nil {
		return nil, err
	}

	if len(centroids) == 0 {
		return nil, invalidf("no centroids")
	}

	for j, c := range centroids {
		if len(c) != len(data[0]) {
			return nil, errors.Wrapf(ErrDimensionMismatch, "centroid %d has dimension %d, points have %d", j, len(c), len(data[0]))
		}
	}

	var (
		d = mat.NewDense(len(data), len(centroids), nil)
		a = make(Assignment, len(data))
	)

	distances(d, data, centroids)
	nearest(d, a)

	return a, nil
}

// distances fills the n×k matrix d with the squared distance from every point
// to every centroid.
func distances(d *mat.Dense, data, centroids [][]float64) {
	for i, p := range data {
		row := d.RawRowView(i)
		for j, c := range centroids {
			row[j] = squaredDistance(p, c)
		}
	}
}

// nearest writes the row-wise argmin of d into a and returns the summed
// minimum distances.
func nearest(d *mat.Dense, a Assignment) float64 {
	var (
		s    float64
		n, _ = d.Dims()
	)

	for i := 0; i < n; i++ {
		row := d.RawRowView(i)
		j := floats.MinIdx(row)
		a[i] = j
		s += row[j]
	}

	return s
}

// means replaces each centroid by the mean of its assigned points. Centroids
// of clusters without points are left untouched and their labels returned in
// ascending order. Points are scaled by 1/count before summing, so a mean of
// finite points stays finite.
func means(data [][]float64, a Assignment, centroids [][]float64) []int {
	var (
		k     = len(centroids)
		c     = make([]int, k)
		s     = make([][]float64, k)
		empty []int
	)

	for _, l := range a {
		c[l]++
	}

	for j := range s {
		if c[j] == 0 {
			empty = append(empty, j)
			continue
		}
		s[j] = make([]float64, len(data[0]))
	}

	for i, l := range a {
		floats.AddScaled(s[l], 1/float64(c[l]), data[i])
	}

	for j := range s {
		if c[j] > 0 {
			centroids[j] = s[j]
		}
	}

	return empty
}

// farthest moves the centroid of every empty cluster onto the point farthest
// from the centroids of the non-empty clusters, ties going to the lowest point
// index. Later picks also keep away from earlier ones, so no chosen point sits
// on another centroid. It returns false if every point already sits on a
// centroid, in which case nothing is moved.
func farthest(data [][]float64, centroids [][]float64, empty []int) bool {
	var (
		r = make([]float64, len(data))
		e = make([]bool, len(centroids))
	)

	for _, j := range empty {
		e[j] = true
	}

	for i, p := range data {
		r[i] = math.Inf(1)
		for j, c := range centroids {
			if e[j] {
				continue
			}
			if v := squaredDistance(p, c); v < r[i] {
				r[i] = v
			}
		}
	}

	for _, j := range empty {
		i := floats.MaxIdx(r)
		if r[i] == 0 {
			return false
		}

		centroids[j] = copyPoint(data[i])

		for q, p := range data {
			if v := squaredDistance(p, centroids[j]); v < r[q] {
				r[q] = v
			}
		}
	}

	return true
}

// objective is the within-cluster sum of squared distances.
func objective(data [][]float64, a Assignment, centroids [][]float64) float64 {
	var s float64
	for i, l := range a {
		s += squaredDistance(data[i], centroids[l])
	}
	return s
}

func validatePoints(data [][]float64) error {
	if len(data) == 0 {
		return errors.Mark(invalidf("empty point set"), ErrEmptySet)
	}

	p := len(data[0])
	if p < 1 {
		return invalidf("points must have at least one coordinate")
	}

	b := maxCoordinate(len(data), p)

	for i, x := range data {
		if len(x) != p {
			return errors.Mark(invalidf("point %d has dimension %d, want %d", i, len(x), p), ErrDimensionMismatch)
		}

		for _, v := range x {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return invalidf("point %d has a non-finite coordinate", i)
			}

			if math.Abs(v) > b {
				return invalidf("point %d has coordinate %g beyond %g", i, v, b)
			}
		}
	}

	return nil
}

// maxCoordinate bounds coordinate magnitudes so that every squared distance
// between two points, and their sum over n points, stays finite.
func maxCoordinate(n, p int) float64 {
	return math.Sqrt(math.MaxFloat64 / (4 * float64(p) * float64(n)))
}

func squaredDistance(a, b []float64) float64 {
	var s float64
	for i, v := range a {
		d := v - b[i]
		s += d * d
	}
	return s
}

func copyPoint(p []float64) []float64 {
	return append([]float64(nil), p...)
}
