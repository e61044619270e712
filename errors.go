package clusters

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrEmptySet          = errors.New("empty training set")
	ErrNotTrained        = errors.New("you need to train the algorithm first")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrInvalidRange      = errors.New("invalid column range")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrEmptyCluster      = errors.New("cluster has no points")
)

// EmptyClusterError is returned by a run using EmptyClusterFail when the update
// step finds a cluster without any assigned points.
type EmptyClusterError struct {
	Cluster   int
	Iteration int
}

func (e *EmptyClusterError) Error() string {
	return fmt.Sprintf("cluster %d is empty after iteration %d", e.Cluster, e.Iteration)
}

func (e *EmptyClusterError) Unwrap() error {
	return ErrEmptyCluster
}

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}
