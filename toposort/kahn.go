package toposort

import (
	"errors"
	"fmt"

	"github.com/avoskres/graphkit/adjacency"
)

// Sentinel errors for topological sorting.
var (
	// ErrNilAdjacency is returned if a nil adjacency pointer is passed.
	ErrNilAdjacency = errors.New("toposort: adjacency is nil")

	// ErrCycleDetected indicates the graph admits no total order.
	ErrCycleDetected = errors.New("toposort: cycle detected")

	// ErrBadNode is returned by Builder.AddEdge on a negative node id.
	ErrBadNode = errors.New("toposort: node id must be non-negative")
)

// Kahn computes a topological order of adj.
//
// On success the returned slice is a permutation of [0, n) respecting
// every edge. On a cyclic graph it returns the nodes ordered before
// the cycle blocked progress (strictly fewer than n) together with
// ErrCycleDetected; the error message carries the ordered/total
// counts. Callers distinguish the cases with errors.Is.
// Complexity: O(n + e) time, O(n) memory.
func Kahn(adj *adjacency.List) ([]int, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}

	n := adj.Len()
	indeg := adj.Indegrees()

	// Seed the FIFO queue with indegree-zero nodes in ascending id order.
	queue := make([]int, 0, n)
	for u := 0; u < n; u++ {
		if indeg[u] == 0 {
			queue = append(queue, u)
		}
	}

	order := make([]int, 0, n)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		order = append(order, u)
		for _, v := range adj.Neighbors(u) {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(order) < n {
		return order, fmt.Errorf("%w: ordered %d of %d nodes", ErrCycleDetected, len(order), n)
	}

	return order, nil
}

// Builder accumulates loose dependency pairs and topologically sorts
// them in one call, without the caller pre-sizing a graph.
// The zero value is ready to use.
type Builder struct {
	edges [][2]int
	max   int // largest node id mentioned so far
}

// AddEdge records the dependency u→v (u must come before v).
func (b *Builder) AddEdge(u, v int) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrBadNode, u, v)
	}
	if u > b.max {
		b.max = u
	}
	if v > b.max {
		b.max = v
	}
	b.edges = append(b.edges, [2]int{u, v})

	return nil
}

// Solve builds the adjacency over [0, max mentioned id] and runs Kahn.
// Ids below the maximum that no edge mentions participate as isolated
// nodes (indegree zero). An empty Builder yields an empty order.
func (b *Builder) Solve() ([]int, error) {
	if len(b.edges) == 0 {
		return []int{}, nil
	}
	adj, err := adjacency.NewList(b.max + 1)
	if err != nil {
		return nil, err
	}
	for _, e := range b.edges {
		if err = adj.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return Kahn(adj)
}
