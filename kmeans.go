package clusters

import (
	"math/rand"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
)

// Result is the outcome of one k-means run.
type Result struct {
	// Assignment holds the label of every point, in input order.
	Assignment Assignment

	// Centroids holds k rows, each the mean of its cluster as of the last
	// update step, or its seed if the cluster was never updated.
	Centroids [][]float64

	// Iterations counts the assignment steps executed. A run that reaches a
	// fixed point spends one step detecting it.
	Iterations int

	Converged bool

	// Objective is the within-cluster sum of squared distances between the
	// returned assignment and the returned centroids.
	Objective float64

	// History records the objective measured by every assignment step against
	// the centroids that step used. It never increases.
	History []float64

	// EmptyClusters counts the recoveries applied to clusters left without
	// points by an assignment step.
	EmptyClusters int
}

// Cluster partitions data into k clusters with Lloyd's algorithm.
//
// Initial centroids are drawn from data according to the configured
// InitStrategy. Each round assigns every point to its nearest centroid and
// then moves every centroid to the mean of its points; the run stops as soon
// as an assignment step reproduces the previous assignment, or after the
// configured number of assignment steps. Running out of iterations is not an
// error: the last assignment is returned with Converged unset.
//
// data is never modified. Parameter problems are reported as
// ErrInvalidParameter; a cluster losing all its points is handled by the
// configured EmptyClusterPolicy.
func Cluster(data [][]float64, k int, opts ...Option) (*Result, error) {
	c := newConfig(opts)

	if err := c.validate(); err != nil {
		return nil, err
	}

	if err := validatePoints(data); err != nil {
		return nil, err
	}

	if k < 1 {
		return nil, invalidf("number of clusters must be at least 1, got %d", k)
	}

	if k > len(data) {
		return nil, invalidf("number of clusters %d exceeds number of points %d", k, len(data))
	}

	rng := c.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	}

	var (
		n   = len(data)
		log = c.Logger.With().Int("k", k).Int("points", n).Logger()
		m   = seed(data, k, c.Init, rng)
		d   = mat.NewDense(n, k, nil)
		res = &Result{}

		// nil until the first assignment step has run
		prev Assignment
	)

	for res.Iterations < c.Iterations {
		next := make(Assignment, n)

		distances(d, data, m)
		o := nearest(d, next)

		res.Iterations++
		res.History = append(res.History, o)

		if prev != nil && next.Equal(prev) {
			res.Converged = true
			break
		}

		log.Debug().
			Int("iteration", res.Iterations).
			Float64("objective", o).
			Int("changed", changed(prev, next)).
			Msg("assignment step")

		prev = next

		empty := means(data, prev, m)
		if len(empty) == 0 {
			continue
		}

		switch c.EmptyCluster {
		case EmptyClusterFail:
			return nil, errors.WithStack(&EmptyClusterError{Cluster: empty[0], Iteration: res.Iterations})
		case EmptyClusterReseed:
			if !farthest(data, m, empty) {
				log.Warn().
					Int("iteration", res.Iterations).
					Msg("every point sits on a centroid, keeping empty clusters in place")
			}
		}

		for _, j := range empty {
			res.EmptyClusters++

			log.Warn().
				Int("cluster", j).
				Int("iteration", res.Iterations).
				Stringer("policy", c.EmptyCluster).
				Msg("empty cluster")
		}
	}

	res.Assignment = prev
	res.Centroids = m
	res.Objective = objective(data, prev, m)

	log.Debug().
		Int("iterations", res.Iterations).
		Bool("converged", res.Converged).
		Float64("objective", res.Objective).
		Msg("k-means finished")

	return res, nil
}

func (r *Result) clone() *Result {
	c := *r
	c.Assignment = append(Assignment(nil), r.Assignment...)
	c.Centroids = copyPoints(r.Centroids)
	c.History = append([]float64(nil), r.History...)
	return &c
}

func copyPoints(d [][]float64) [][]float64 {
	c := make([][]float64, len(d))
	for i := range d {
		c[i] = copyPoint(d[i])
	}
	return c
}

func changed(prev, next Assignment) int {
	if prev == nil {
		return len(next)
	}

	var c int
	for i := range next {
		if prev[i] != next[i] {
			c++
		}
	}
	return c
}

type kmeansClusterer struct {
	iterations int
	number     int
	opts       []Option

	// Outcome of the last Learn. Access is synchronized.
	mu sync.RWMutex
	r  *Result
}

// Kmeans returns a HardClusterer running at most iterations assignment steps
// to find the given number of clusters.
func Kmeans(iterations, clusters int, opts ...Option) (HardClusterer, error) {
	if iterations < 1 {
		return nil, invalidf("number of iterations cannot be less than 1, got %d", iterations)
	}

	if clusters < 1 {
		return nil, invalidf("number of clusters cannot be less than 1, got %d", clusters)
	}

	return &kmeansClusterer{
		iterations: iterations,
		number:     clusters,
		opts:       opts,
	}, nil
}

func (c *kmeansClusterer) Learn(data [][]float64) error {
	o := make([]Option, 0, len(c.opts)+1)
	o = append(o, c.opts...)
	o = append(o, WithIterations(c.iterations))

	r, err := Cluster(data, c.number, o...)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.r = r
	c.mu.Unlock()

	return nil
}

func (c *kmeansClusterer) result() *Result {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.r
}

// Result returns a copy of the outcome of the last Learn.
func (c *kmeansClusterer) Result() *Result {
	if r := c.result(); r != nil {
		return r.clone()
	}
	return nil
}

func (c *kmeansClusterer) Guesses() Assignment {
	if r := c.result(); r != nil {
		return append(Assignment(nil), r.Assignment...)
	}
	return nil
}

func (c *kmeansClusterer) Sizes() []int {
	if r := c.result(); r != nil {
		return r.Assignment.Sizes(c.number)
	}
	return nil
}

func (c *kmeansClusterer) Centroids() [][]float64 {
	if r := c.result(); r != nil {
		return copyPoints(r.Centroids)
	}
	return nil
}

// Predict returns the label of the centroid nearest to p.
func (c *kmeansClusterer) Predict(p []float64) (int, error) {
	r := c.result()
	if r == nil {
		return 0, ErrNotTrained
	}

	if len(p) != len(r.Centroids[0]) {
		return 0, errors.Wrapf(ErrDimensionMismatch, "got %d, want %d", len(p), len(r.Centroids[0]))
	}

	var (
		l int
		d float64
		m = squaredDistance(p, r.Centroids[0])
	)

	for i := 1; i < len(r.Centroids); i++ {
		if d = squaredDistance(p, r.Centroids[i]); d < m {
			m = d
			l = i
		}
	}

	return l, nil
}

var _ zerolog.LogObjectMarshaler = (*Result)(nil)

// MarshalZerologObject logs the summary fields of a result.
func (r *Result) MarshalZerologObject(e *zerolog.Event) {
	e.Int("iterations", r.Iterations).
		Bool("converged", r.Converged).
		Float64("objective", r.Objective).
		Int("empty_clusters", r.EmptyClusters).
		Ints("sizes", r.Assignment.Sizes(len(r.Centroids)))
}
