package scc

import (
	"context"
	"errors"

	"github.com/avoskres/graphkit/adjacency"
)

// ErrNilAdjacency is returned if a nil adjacency pointer is passed.
var ErrNilAdjacency = errors.New("scc: adjacency is nil")

// undiscovered marks a node not yet reached by the traversal.
const undiscovered = -1

// Option configures optional behavior for Tarjan.
type Option func(*options)

// options holds settings for Tarjan, currently only cancellation.
type options struct {
	ctx context.Context
}

// WithCancelContext returns an Option that sets the cancellation
// context. Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// frame is one simulated recursion frame of the depth-first walk.
type frame struct {
	node   int
	cursor int // index of the next outgoing edge to examine
}

// finder encapsulates state for one Tarjan decomposition.
type finder struct {
	adj     *adjacency.List
	index   []int  // discovery index per node, undiscovered if unseen
	low     []int  // low-link per node
	onStack []bool // membership flag for O(1) on-stack tests
	stack   []int  // nodes of the current partial components
	frames  []frame
	next    int // next discovery index to assign
	comps   [][]int
}

// Tarjan decomposes adj into strongly connected components. Each node
// appears in exactly one component; components are emitted in reverse
// topological order of the condensation.
// Complexity: O(n + e) time, O(n) memory.
func Tarjan(adj *adjacency.List, opts ...Option) ([][]int, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	n := adj.Len()
	f := &finder{
		adj:     adj,
		index:   make([]int, n),
		low:     make([]int, n),
		onStack: make([]bool, n),
	}
	for i := range f.index {
		f.index[i] = undiscovered
	}

	// Drive the walk from every undiscovered node, in ascending id
	// order for determinism.
	for u := 0; u < n; u++ {
		if f.index[u] != undiscovered {
			continue
		}
		if err := f.walk(o.ctx, u); err != nil {
			return nil, err
		}
	}

	return f.comps, nil
}

// walk runs the iterative depth-first traversal rooted at u,
// reproducing the recursive discovery/low-link update order.
func (f *finder) walk(ctx context.Context, u int) error {
	f.discover(u)

	for len(f.frames) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		top := &f.frames[len(f.frames)-1]
		nbrs := f.adj.Neighbors(top.node)

		if top.cursor < len(nbrs) {
			v := nbrs[top.cursor]
			top.cursor++
			switch {
			case f.index[v] == undiscovered:
				// tree edge: "recurse"; the child's low-link is folded
				// in when its frame finishes below
				f.discover(v)
			case f.onStack[v]:
				// back/cross edge into the current partial component
				if f.index[v] < f.low[top.node] {
					f.low[top.node] = f.index[v]
				}
			default:
				// finished node of an already-emitted component: ignore
			}

			continue
		}

		// Frame exhausted: finish top.node.
		done := top.node
		if f.low[done] == f.index[done] {
			f.emit(done)
		}
		f.frames = f.frames[:len(f.frames)-1]
		if len(f.frames) > 0 {
			parent := f.frames[len(f.frames)-1].node
			if f.low[done] < f.low[parent] {
				f.low[parent] = f.low[done]
			}
		}
	}

	return nil
}

// discover assigns the next discovery index to v and pushes it onto
// both the component stack and the frame stack.
func (f *finder) discover(v int) {
	f.index[v] = f.next
	f.low[v] = f.next
	f.next++
	f.stack = append(f.stack, v)
	f.onStack[v] = true
	f.frames = append(f.frames, frame{node: v})
}

// emit pops the component stack down to and including root and records
// the popped nodes as one component.
func (f *finder) emit(root int) {
	var comp []int
	for {
		w := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]
		f.onStack[w] = false
		comp = append(comp, w)
		if w == root {
			break
		}
	}
	f.comps = append(f.comps, comp)
}
