package clusters

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat"
)

// MismatchRate estimates how often estimated lumps together points that
// truth keeps apart. It draws pairs random index pairs, discards those
// pointing at the same point twice, and returns the fraction of the rest that
// share a label in estimated but not in truth. Labels are only compared for
// equality, so the rate is invariant to relabelling either side. If every
// draw was discarded the rate is 0.
func MismatchRate(estimated, truth Assignment, pairs int, rng RandomSource) (float64, error) {
	if len(estimated) != len(truth) {
		return 0, errors.Wrapf(ErrDimensionMismatch, "%d estimated labels, %d true labels", len(estimated), len(truth))
	}

	if len(truth) < 2 {
		return 0, invalidf("need at least two points, got %d", len(truth))
	}

	if pairs < 1 {
		return 0, invalidf("number of pairs must be at least 1, got %d", pairs)
	}

	var (
		n = len(truth)
		x = make([]float64, 0, pairs)
	)

	for q := 0; q < pairs; q++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}

		if estimated[a] == estimated[b] && truth[a] != truth[b] {
			x = append(x, 1)
		} else {
			x = append(x, 0)
		}
	}

	if len(x) == 0 {
		return 0, nil
	}

	return stat.Mean(x, nil), nil
}
