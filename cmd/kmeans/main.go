// Command kmeans clusters the rows of a CSV file, or a synthetic blob data
// set, and prints the labels and centroids.
//
//	kmeans -k 3 -columns 0:1 points.csv
//	kmeans -k 5 -synthetic-n 1000 -synthetic-p 10 -seed 7
//
// LOG_LEVEL selects the zerolog level written to stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/kshedden/clusters"
)

type options struct {
	k          int
	iterations int
	seed       int64
	restarts   int
	init       string
	empty      string
	columns    string
	syntheticN int
	syntheticP int
	pairs      int
	path       string
}

func main() {
	log := newLogger(os.Stderr, os.Getenv("LOG_LEVEL"))

	o, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	if err := run(context.Background(), o, os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("k-means failed")
	}
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	l := zerolog.InfoLevel
	if level != "" {
		if p, err := zerolog.ParseLevel(level); err == nil {
			l = p
		}
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: zerolog.SyncWriter(w), TimeFormat: "15:04:05"}).
		Level(l).
		With().
		Timestamp().
		Logger()
}

func parseFlags(args []string) (options, error) {
	var (
		o  options
		fs = flag.NewFlagSet("kmeans", flag.ContinueOnError)
	)

	fs.IntVar(&o.k, "k", 2, "number of clusters")
	fs.IntVar(&o.iterations, "iterations", clusters.DefaultIterations, "maximum number of assignment steps")
	fs.Int64Var(&o.seed, "seed", 1, "random seed")
	fs.IntVar(&o.restarts, "restarts", 1, "number of independent restarts, best objective wins")
	fs.StringVar(&o.init, "init", clusters.InitRandom.String(), "initialization: random, distinct or kmeans++")
	fs.StringVar(&o.empty, "empty", clusters.EmptyClusterReseed.String(), "empty cluster policy: reseed, keep or fail")
	fs.StringVar(&o.columns, "columns", "0:1", "inclusive CSV column range start:end")
	fs.IntVar(&o.syntheticN, "synthetic-n", 0, "generate this many synthetic points instead of reading a CSV")
	fs.IntVar(&o.syntheticP, "synthetic-p", 2, "dimension of synthetic points")
	fs.IntVar(&o.pairs, "pairs", 10000, "pairs drawn for the synthetic mismatch rate")

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	if o.syntheticN == 0 {
		if fs.NArg() != 1 {
			return o, errors.New("expected exactly one CSV path")
		}
		o.path = fs.Arg(0)
	}

	return o, nil
}

func parseColumns(s string) (int, int, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		b = a
	}

	start, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "column range %q", s)
	}

	end, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "column range %q", s)
	}

	return start, end, nil
}

func run(ctx context.Context, o options, out io.Writer, log zerolog.Logger) error {
	in, err := clusters.ParseInitStrategy(o.init)
	if err != nil {
		return err
	}

	ep, err := clusters.ParseEmptyClusterPolicy(o.empty)
	if err != nil {
		return err
	}

	var (
		data  [][]float64
		truth clusters.Assignment
		rng   = rand.New(rand.NewSource(o.seed))
	)

	if o.syntheticN > 0 {
		data, truth, err = clusters.Blobs(rng, o.syntheticN, o.syntheticP, o.k)
	} else {
		start, end, cerr := parseColumns(o.columns)
		if cerr != nil {
			return cerr
		}

		imp := clusters.NewCsvImporter()
		imp.Logger = log
		data, err = imp.Import(o.path, start, end)
	}

	if err != nil {
		return err
	}

	res, err := clusters.BestOf(ctx, data, o.k, o.restarts, o.seed,
		clusters.WithIterations(o.iterations),
		clusters.WithInit(in),
		clusters.WithEmptyClusterPolicy(ep),
		clusters.WithLogger(log),
	)
	if err != nil {
		return err
	}

	log.Info().Object("result", res).Msg("clustered")

	if truth != nil {
		mm, err := clusters.MismatchRate(res.Assignment, truth, o.pairs, rng)
		if err != nil {
			return err
		}

		log.Info().Float64("mismatch", mm).Msg("compared with ground truth")
	}

	return write(out, res)
}

func write(w io.Writer, res *clusters.Result) error {
	for i, l := range res.Assignment {
		if _, err := fmt.Fprintf(w, "label %d %d\n", i, l); err != nil {
			return err
		}
	}

	for j, c := range res.Centroids {
		f := make([]string, len(c))
		for i, v := range c {
			f[i] = strconv.FormatFloat(v, 'g', 6, 64)
		}

		if _, err := fmt.Fprintf(w, "centroid %d %s\n", j, strings.Join(f, " ")); err != nil {
			return err
		}
	}

	return nil
}
