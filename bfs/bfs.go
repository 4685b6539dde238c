package bfs

import (
	"fmt"

	"github.com/avoskres/graphkit/adjacency"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state for one Run invocation.
type walker struct {
	adj   *adjacency.List
	opts  Options
	queue []queueItem
	res   *Result
}

// Distances computes unweighted shortest-path distances from source.
// Unreachable nodes are marked −1. It always succeeds on valid input.
// Complexity: O(n + e).
func Distances(adj *adjacency.List, source int) ([]int, error) {
	res, err := Run(adj, source)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// Run performs a breadth-first search on adj from source, applying any
// number of functional Options. Returns ErrNilAdjacency or
// ErrSourceOutOfRange for invalid input, ErrOptionViolation for bad
// options, a context error on cancellation, or any OnVisit error.
// Complexity: O(n + e).
func Run(adj *adjacency.List, source int, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := adj.Len()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrSourceOutOfRange, source, n)
	}

	w := &walker{
		adj:   adj,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Dist:   make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Dist[i] = -1
		w.res.Parent[i] = -1
	}

	// Seed the queue with the source at depth 0 (no parent).
	w.res.Dist[source] = 0
	w.queue = append(w.queue, queueItem{node: source, depth: 0})

	return w.res, w.loop()
}

// loop processes the FIFO queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for qi := 0; qi < len(w.queue); qi++ {
		// cancellation check once per dequeue
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[qi]
		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.node, err)
		}
		w.relaxNeighbors(item)
	}

	return nil
}

// relaxNeighbors enqueues each unseen neighbor of item, honoring
// FilterNeighbor and MaxDepth, in adjacency insertion order.
func (w *walker) relaxNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.adj.Neighbors(item.node) {
		if !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		// first discovery wins: BFS layers guarantee minimal depth
		if w.res.Dist[nbr] != -1 {
			continue
		}
		w.res.Dist[nbr] = nextDepth
		w.res.Parent[nbr] = item.node
		w.queue = append(w.queue, queueItem{node: nbr, depth: nextDepth})
	}
}
