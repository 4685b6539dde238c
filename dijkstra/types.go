// This file declares Dijkstra options, sentinel errors, and the Result type.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Inf marks an unreachable node in Result.Dist.
const Inf = int64(math.MaxInt64)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilAdjacency indicates a nil *adjacency.Weighted was passed.
	ErrNilAdjacency = errors.New("dijkstra: adjacency is nil")

	// ErrSourceOutOfRange indicates the source id is outside [0, n).
	ErrSourceOutOfRange = errors.New("dijkstra: source node out of range")

	// ErrNegativeWeight indicates a negative arc weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative arc weight encountered")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrUnreachable is returned by Result.PathTo for an unreached node.
	ErrUnreachable = errors.New("dijkstra: node not reachable from source")
)

// Option represents a functional option for configuring Run.
type Option func(*Options)

// Options configures the behavior of the algorithm.
type Options struct {
	// Ctx allows cancellation of the main loop.
	Ctx context.Context

	// MaxDistance caps exploration: nodes whose final distance would
	// exceed it are neither finalized nor relaxed. Default Inf (no cap).
	MaxDistance int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a Background context and no
// distance cap.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: Inf,
	}
}

// WithCancelContext sets the cancellation context for the main loop.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps the distances explored. Must be non-negative;
// a negative cap is surfaced as ErrOptionViolation when Run is invoked.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// Result holds shortest-path data from a single source:
//   - Dist: minimal distance per node, Inf if unreachable.
//   - Prev: predecessor on a shortest path, −1 for the source and for
//     unreached nodes.
type Result struct {
	Dist []int64
	Prev []int
}

// PathTo reconstructs the source→dest shortest path by back-walking
// Prev and reversing. Returns ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) || r.Dist[dest] == Inf {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dest)
	}
	var path []int
	for cur := dest; cur != -1; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
