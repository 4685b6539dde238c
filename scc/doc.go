// Package scc partitions a directed graph into strongly connected
// components with Tarjan's algorithm.
//
// What
//
//   - Tarjan(adj, opts...) returns the components as slices of node
//     ids; every node of [0, n) appears in exactly one component.
//   - Components are emitted in reverse topological order of the
//     condensation: a component with no arcs into undiscovered
//     components comes out first.
//
// Why
//
//   - Collapsing each component to a single node turns any directed
//     graph into a DAG, unlocking ordering and reachability analyses
//     on graphs with cycles.
//
// Recursion
//
//	The depth-first traversal is iterative: explicit frames (node +
//	next-edge cursor) simulate recursion, preserving the recursive
//	discovery-index/low-link update order while keeping depth bounded
//	by heap memory, not the goroutine stack.
//
// Low-link discipline
//
//	A node's low-link is lowered by tree-child low-links and by arcs
//	to nodes still on the component stack (their discovery index).
//	Arcs to finished, off-stack nodes are ignored — they belong to an
//	already-emitted component. A node whose low-link equals its own
//	discovery index is a component root and pops the stack down to
//	itself.
//
// Complexity (n = nodes, e = edges)
//
//   - Time:   O(n + e)
//   - Memory: O(n)
//
// Errors
//
//   - ErrNilAdjacency if the adjacency pointer is nil.
//   - A context error if a supplied cancellation context fires.
package scc
