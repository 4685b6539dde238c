package dijkstra

import (
	"fmt"

	"github.com/avoskres/graphkit/adjacency"
	"github.com/avoskres/graphkit/indexheap"
)

// Run computes shortest distances from source to every node of adj.
//
// Preconditions and validation (in order):
//  1. adj must be non-nil (ErrNilAdjacency).
//  2. Options must be valid (ErrOptionViolation).
//  3. source must lie in [0, n) (ErrSourceOutOfRange).
//  4. No arc may have negative weight (ErrNegativeWeight, fail-fast).
//
// Unreachable nodes are an expected outcome, not an error: they stay
// at Inf in Result.Dist with Prev −1.
//
// Complexity: O((n + e) log n) time, O(n) memory.
func Run(adj *adjacency.Weighted, source int, opts ...Option) (*Result, error) {
	// 1) Validate adjacency.
	if adj == nil {
		return nil, ErrNilAdjacency
	}

	// 2) Build options and catch invalid ones immediately.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate source.
	n := adj.Len()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrSourceOutOfRange, source, n)
	}

	// 4) Pre-scan all arcs to detect negative weights and fail fast.
	for u := 0; u < n; u++ {
		for _, a := range adj.Arcs(u) {
			if a.Weight < 0 {
				return nil, fmt.Errorf("%w: arc %d→%d weight=%d", ErrNegativeWeight, u, a.To, a.Weight)
			}
		}
	}

	// 5) Prepare per-call state: distances, predecessors, the heap.
	r := &runner{
		adj:     adj,
		options: cfg,
		res: &Result{
			Dist: make([]int64, n),
			Prev: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		r.res.Dist[i] = Inf
		r.res.Prev[i] = -1
	}

	pq, err := indexheap.New(n)
	if err != nil {
		return nil, err
	}
	r.pq = pq

	// 6) Seed: the source is at distance zero.
	r.res.Dist[source] = 0
	if err = r.pq.Insert(source, 0); err != nil {
		return nil, err
	}

	// 7) Main loop.
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Run invocation.
type runner struct {
	adj     *adjacency.Weighted
	options Options
	res     *Result
	pq      *indexheap.Heap
}

// process repeatedly finalizes the closest frontier node and relaxes
// its outgoing arcs until the heap drains or the distance cap is hit.
//
// A popped node's distance is final: with one live heap entry per node
// and non-negative weights, no later relaxation can improve it.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// cancellation check once per extraction
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		u, du, err := r.pq.PopMin()
		if err != nil {
			return err
		}
		// Beyond the cap nothing closer remains in a min-heap; stop.
		if du > r.options.MaxDistance {
			break
		}
		if err = r.relax(u, du); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of u,
// inserting first discoveries and decrease-keying improvements.
func (r *runner) relax(u int, du int64) error {
	for _, a := range r.adj.Arcs(u) {
		next := du + a.Weight
		if next > r.options.MaxDistance {
			continue
		}
		// Strict improvement only: equal distances never re-enter the heap.
		if next >= r.res.Dist[a.To] {
			continue
		}
		first := r.res.Dist[a.To] == Inf
		r.res.Dist[a.To] = next
		r.res.Prev[a.To] = u

		var err error
		if first {
			err = r.pq.Insert(a.To, next)
		} else {
			err = r.pq.DecreaseKey(a.To, next)
		}
		if err != nil {
			// The relaxation test guarantees the heap contract holds;
			// any failure here is a corrupted-state bug worth surfacing.
			return fmt.Errorf("dijkstra: heap update for %d: %w", a.To, err)
		}
	}

	return nil
}
