package astar

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/avoskres/graphkit/adjacency"
	"github.com/avoskres/graphkit/indexheap"
)

// Sentinel errors for A* execution.
var (
	// ErrNilAdjacency indicates a nil *adjacency.Weighted was passed.
	ErrNilAdjacency = errors.New("astar: adjacency is nil")

	// ErrNilHeuristic indicates a nil heuristic function was passed.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrNodeOutOfRange indicates source or goal is outside [0, n).
	ErrNodeOutOfRange = errors.New("astar: node id out of range")

	// ErrNoPath indicates the goal is unreachable from the source.
	ErrNoPath = errors.New("astar: no path to goal")
)

// inf marks an undiscovered node's distance-so-far.
const inf = int64(math.MaxInt64)

// Heuristic estimates the remaining cost from a node to the goal.
// It must be non-negative and admissible (never overestimate).
type Heuristic func(node int) int64

// ZeroHeuristic estimates nothing; A* with it explores exactly like
// uniform-cost search.
func ZeroHeuristic(int) int64 { return 0 }

// Option represents a functional option for configuring Run.
type Option func(*Options)

// Options configures the behavior of the search.
type Options struct {
	// Ctx allows cancellation of the main loop.
	Ctx context.Context
}

// DefaultOptions returns Options with a Background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
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

// Run searches for the cheapest source→goal path in adj, ordering the
// frontier by distance-so-far plus h. On success it returns the total
// cost and the full path (source first, goal last); an unreachable
// goal yields ErrNoPath.
// Complexity: O((n + e) log n) time, O(n) memory.
func Run(adj *adjacency.Weighted, source, goal int, h Heuristic, opts ...Option) (int64, []int, error) {
	// 1) Validate inputs.
	if adj == nil {
		return 0, nil, ErrNilAdjacency
	}
	if h == nil {
		return 0, nil, ErrNilHeuristic
	}
	n := adj.Len()
	if source < 0 || source >= n {
		return 0, nil, fmt.Errorf("%w: source %d (n=%d)", ErrNodeOutOfRange, source, n)
	}
	if goal < 0 || goal >= n {
		return 0, nil, fmt.Errorf("%w: goal %d (n=%d)", ErrNodeOutOfRange, goal, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Per-call state: g = best-known cost from source, prev = tree.
	g := make([]int64, n)
	prev := make([]int, n)
	for i := 0; i < n; i++ {
		g[i] = inf
		prev[i] = -1
	}
	g[source] = 0

	pq, err := indexheap.New(n)
	if err != nil {
		return 0, nil, err
	}
	if err = pq.Insert(source, h(source)); err != nil {
		return 0, nil, err
	}

	// 3) Main loop: pop the most promising node, stop once it is the goal.
	for pq.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return 0, nil, o.Ctx.Err()
		default:
		}

		u, _, popErr := pq.PopMin()
		if popErr != nil {
			return 0, nil, popErr
		}
		if u == goal {
			break
		}
		gu := g[u]
		for _, a := range adj.Arcs(u) {
			next := gu + a.Weight
			if next >= g[a.To] {
				continue
			}
			g[a.To] = next
			prev[a.To] = u
			// Update reinserts nodes an inconsistent-but-admissible
			// heuristic had already closed, and reprioritizes frontier
			// nodes in either direction.
			if err = pq.Update(a.To, next+h(a.To)); err != nil {
				return 0, nil, fmt.Errorf("astar: heap update for %d: %w", a.To, err)
			}
		}
	}

	// 4) Heap drained before the goal was popped, or popped at inf: no path.
	if g[goal] == inf {
		return 0, nil, fmt.Errorf("%w: %d→%d", ErrNoPath, source, goal)
	}

	// 5) Reconstruct by back-walking prev, then reverse.
	var path []int
	for cur := goal; cur != -1; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return g[goal], path, nil
}
