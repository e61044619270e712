// Package clusters partitions points into k groups with Lloyd's k-means
// algorithm.
//
// Randomness is never taken from package-level state: every run draws from a
// RandomSource supplied through WithRand, so seeded runs are reproducible.
// The package also carries the pieces used to validate a clustering: a
// synthetic Gaussian blob generator, a pairwise mismatch statistic and a CSV
// importer for numeric columns.
package clusters

import "slices"

// Assignment maps point indices to cluster labels.
type Assignment []int

func (a Assignment) Equal(b Assignment) bool {
	return slices.Equal(a, b)
}

// Sizes counts the points carrying each of the k labels.
func (a Assignment) Sizes(k int) []int {
	s := make([]int, k)
	for _, l := range a {
		s[l]++
	}
	return s
}

// RandomSource is the randomness consumed by seeding and empty-cluster
// recovery. *rand.Rand from math/rand satisfies it.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

type Clusterer interface {
	Learn(data [][]float64) error
}

type HardClusterer interface {
	Guesses() Assignment

	Sizes() []int

	Centroids() [][]float64

	Result() *Result

	Predict(observation []float64) (int, error)

	Clusterer
}
