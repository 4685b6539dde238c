package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoskres/graphkit/adjacency"
)

// Sentinel errors for DFS execution.
var (
	// ErrNilAdjacency is returned if a nil adjacency pointer is passed.
	ErrNilAdjacency = errors.New("dfs: adjacency is nil")

	// ErrSourceOutOfRange is returned when the source id is outside [0, n).
	ErrSourceOutOfRange = errors.New("dfs: source node out of range")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is first discovered.
	// Returning an error aborts the traversal and propagates it.
	OnVisit func(node int) error
}

// DefaultOptions returns Options with a Background context and a
// no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on each discovery; returning
// an error from this callback stops the traversal.
func WithOnVisit(fn func(node int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// frame is one simulated recursion frame: a node and the index of the
// next outgoing edge to explore.
type frame struct {
	node   int
	cursor int
}

// Preorder returns the nodes reachable from source in first-discovery
// order, exploring children in adjacency insertion order. The
// traversal is iterative: an explicit frame stack replaces recursion.
// Complexity: O(n + e) time, O(n) memory.
func Preorder(adj *adjacency.List, source int, opts ...Option) ([]int, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := adj.Len()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrSourceOutOfRange, source, n)
	}

	order := make([]int, 0, n)
	seen := make([]bool, n)
	stack := make([]frame, 0, n)

	discover := func(node int) error {
		seen[node] = true
		order = append(order, node)
		if err := o.OnVisit(node); err != nil {
			return fmt.Errorf("dfs: OnVisit error at %d: %w", node, err)
		}
		stack = append(stack, frame{node: node, cursor: 0})

		return nil
	}

	if err := discover(source); err != nil {
		return nil, err
	}

	for len(stack) > 0 {
		// cancellation check once per step
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		nbrs := adj.Neighbors(top.node)
		if top.cursor >= len(nbrs) {
			stack = stack[:len(stack)-1] // frame exhausted, "return"
			continue
		}
		next := nbrs[top.cursor]
		top.cursor++
		if !seen[next] {
			if err := discover(next); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}
