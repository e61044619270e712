package clusters

import (
	"strings"

	"github.com/rs/zerolog"
)

const (
	DefaultIterations = 20
)

// InitStrategy selects how the initial centroids are drawn from the data.
type InitStrategy int

const (
	// InitRandom draws k point indices uniformly with replacement.
	InitRandom InitStrategy = iota
	// InitDistinct draws k distinct point indices.
	InitDistinct
	// InitPlusPlus uses k-means++ D² weighting.
	InitPlusPlus
)

var initNames = map[InitStrategy]string{
	InitRandom:   "random",
	InitDistinct: "distinct",
	InitPlusPlus: "kmeans++",
}

func (s InitStrategy) String() string {
	if n, ok := initNames[s]; ok {
		return n
	}
	return "unknown"
}

func ParseInitStrategy(s string) (InitStrategy, error) {
	for k, v := range initNames {
		if strings.EqualFold(s, v) {
			return k, nil
		}
	}
	return 0, invalidf("unknown init strategy %q", s)
}

// EmptyClusterPolicy decides what the update step does with a cluster that
// received no points.
type EmptyClusterPolicy int

const (
	// EmptyClusterReseed moves the centroid onto the point farthest from
	// the non-empty clusters' centroids, so the cluster takes at least that
	// point in the next assignment step. Empty clusters are handled in
	// ascending label order.
	EmptyClusterReseed EmptyClusterPolicy = iota
	// EmptyClusterKeep leaves the previous centroid in place.
	EmptyClusterKeep
	// EmptyClusterFail aborts the run with an *EmptyClusterError.
	EmptyClusterFail
)

var policyNames = map[EmptyClusterPolicy]string{
	EmptyClusterReseed: "reseed",
	EmptyClusterKeep:   "keep",
	EmptyClusterFail:   "fail",
}

func (p EmptyClusterPolicy) String() string {
	if n, ok := policyNames[p]; ok {
		return n
	}
	return "unknown"
}

func ParseEmptyClusterPolicy(s string) (EmptyClusterPolicy, error) {
	for k, v := range policyNames {
		if strings.EqualFold(s, v) {
			return k, nil
		}
	}
	return 0, invalidf("unknown empty cluster policy %q", s)
}

// Config holds the knobs of a single k-means run.
type Config struct {
	Iterations   int                // Maximum number of assignment steps
	Init         InitStrategy       // Initial centroid selection
	EmptyCluster EmptyClusterPolicy // Recovery for clusters left without points
	Rand         RandomSource       // Nil means a clock-seeded *rand.Rand
	Logger       zerolog.Logger
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Iterations:   DefaultIterations,
		Init:         InitRandom,
		EmptyCluster: EmptyClusterReseed,
		Logger:       zerolog.Nop(),
	}
}

type Option func(*Config)

func WithIterations(n int) Option {
	return func(c *Config) { c.Iterations = n }
}

func WithRand(r RandomSource) Option {
	return func(c *Config) { c.Rand = r }
}

func WithInit(s InitStrategy) Option {
	return func(c *Config) { c.Init = s }
}

func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(c *Config) { c.EmptyCluster = p }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func newConfig(opts []Option) Config {
	c := DefaultConfig()
	for _, o := range opts {
		o(&c)
	}
	return c
}

func (c Config) validate() error {
	if c.Iterations < 1 {
		return invalidf("iterations must be at least 1, got %d", c.Iterations)
	}

	if _, ok := initNames[c.Init]; !ok {
		return invalidf("unknown init strategy %d", int(c.Init))
	}

	if _, ok := policyNames[c.EmptyCluster]; !ok {
		return invalidf("unknown empty cluster policy %d", int(c.EmptyCluster))
	}

	return nil
}
