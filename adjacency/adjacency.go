package adjacency

import "fmt"

// List is a directed, unweighted adjacency over nodes [0, n).
// The zero value is an empty graph; use NewList for a sized one.
type List struct {
	next [][]int // next[u] = ordered outgoing neighbors of u
}

// NewList creates an adjacency for n nodes and no edges.
// Complexity: O(n).
func NewList(n int) (*List, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadNodeCount, n)
	}

	return &List{next: make([][]int, n)}, nil
}

// Len returns the node count n.
func (l *List) Len() int { return len(l.next) }

// AddEdge inserts the directed edge u→v.
// Parallel edges and self-loops are allowed.
// Complexity: amortized O(1).
func (l *List) AddEdge(u, v int) error {
	if err := l.check(u); err != nil {
		return err
	}
	if err := l.check(v); err != nil {
		return err
	}
	l.next[u] = append(l.next[u], v)

	return nil
}

// AddUndirected inserts both u→v and v→u.
func (l *List) AddUndirected(u, v int) error {
	if err := l.AddEdge(u, v); err != nil {
		return err
	}

	return l.AddEdge(v, u)
}

// Neighbors returns the outgoing neighbors of u in insertion order.
// The returned slice is the backing storage; treat it as read-only.
// Complexity: O(1).
func (l *List) Neighbors(u int) []int {
	if u < 0 || u >= len(l.next) {
		return nil
	}

	return l.next[u]
}

// Indegrees counts incoming edges per node (parallel edges counted
// individually). Used to seed Kahn's algorithm.
// Complexity: O(n + e).
func (l *List) Indegrees() []int {
	indeg := make([]int, len(l.next))
	for _, vs := range l.next {
		for _, v := range vs {
			indeg[v]++
		}
	}

	return indeg
}

func (l *List) check(u int) error {
	if u < 0 || u >= len(l.next) {
		return fmt.Errorf("%w: %d (n=%d)", ErrNodeOutOfRange, u, len(l.next))
	}

	return nil
}

// Arc is one weighted, directed edge endpoint: reach To at cost Weight.
type Arc struct {
	To     int
	Weight int64
}

// Weighted is a directed, integer-weighted adjacency over nodes [0, n).
// Weight signs are not policed here; Dijkstra rejects negative weights
// up front, A* assumes the same contract.
type Weighted struct {
	out [][]Arc // out[u] = ordered outgoing arcs of u
}

// NewWeighted creates a weighted adjacency for n nodes and no arcs.
// Complexity: O(n).
func NewWeighted(n int) (*Weighted, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadNodeCount, n)
	}

	return &Weighted{out: make([][]Arc, n)}, nil
}

// Len returns the node count n.
func (w *Weighted) Len() int { return len(w.out) }

// AddArc inserts the directed arc u→v with weight wt.
// Parallel arcs and self-loops are allowed.
// Complexity: amortized O(1).
func (w *Weighted) AddArc(u, v int, wt int64) error {
	if err := w.check(u); err != nil {
		return err
	}
	if err := w.check(v); err != nil {
		return err
	}
	w.out[u] = append(w.out[u], Arc{To: v, Weight: wt})

	return nil
}

// AddUndirected inserts u→v and v→u, both with weight wt.
func (w *Weighted) AddUndirected(u, v int, wt int64) error {
	if err := w.AddArc(u, v, wt); err != nil {
		return err
	}

	return w.AddArc(v, u, wt)
}

// Arcs returns the outgoing arcs of u in insertion order.
// The returned slice is the backing storage; treat it as read-only.
// Complexity: O(1).
func (w *Weighted) Arcs(u int) []Arc {
	if u < 0 || u >= len(w.out) {
		return nil
	}

	return w.out[u]
}

func (w *Weighted) check(u int) error {
	if u < 0 || u >= len(w.out) {
		return fmt.Errorf("%w: %d (n=%d)", ErrNodeOutOfRange, u, len(w.out))
	}

	return nil
}
