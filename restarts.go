package clusters

import (
	"context"
	"math/rand"
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// BestOf runs restarts independent k-means runs in parallel and returns the
// one with the lowest objective, ties going to the earliest restart. Restart i
// draws from rand.NewSource(seed+i), overriding any WithRand option, so the
// outcome depends only on the inputs and seed.
//
// Cancelling ctx prevents restarts that have not started yet; a run already in
// progress finishes its iterations.
func BestOf(ctx context.Context, data [][]float64, k, restarts int, seed int64, opts ...Option) (*Result, error) {
	if restarts < 1 {
		return nil, invalidf("number of restarts must be at least 1, got %d", restarts)
	}

	var (
		r    = make([]*Result, restarts)
		g, c = errgroup.WithContext(ctx)
	)

	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < restarts; i++ {
		i := i
		g.Go(func() error {
			if err := c.Err(); err != nil {
				return err
			}

			o := make([]Option, 0, len(opts)+1)
			o = append(o, opts...)
			o = append(o, WithRand(rand.New(rand.NewSource(seed+int64(i)))))

			res, err := Cluster(data, k, o...)
			if err != nil {
				return errors.Wrapf(err, "restart %d", i)
			}

			r[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := r[0]
	for _, res := range r[1:] {
		if res.Objective < best.Objective {
			best = res
		}
	}

	return best, nil
}
