// Package toposort orders the nodes of a directed acyclic graph with
// Kahn's algorithm and reports cycles explicitly.
//
// What
//
//   - Kahn(adj) returns a permutation of [0, n) in which u precedes v
//     for every edge u→v. On a cyclic graph it returns
//     ErrCycleDetected together with the partial order of nodes
//     successfully placed before the cycle blocked progress — a
//     diagnostic, never a silently invalid total order.
//   - Builder collects loose (u, v) dependency pairs and solves them
//     in one call, sizing the graph from the largest id mentioned.
//
// Why
//
//   - Dependency scheduling: build orders, evaluation orders,
//     prerequisite chains — and cycle detection for free when the
//     dependencies are contradictory.
//
// Determinism
//
//	The FIFO queue is seeded with indegree-zero nodes in ascending id
//	order and nodes are enqueued as their indegree drains, so the
//	order is reproducible for a fixed graph.
//
// Complexity (n = nodes, e = edges)
//
//   - Time:   O(n + e)
//   - Memory: O(n)
//
// Errors
//
//   - ErrNilAdjacency  if the adjacency pointer is nil.
//   - ErrCycleDetected if no total order exists; the error message
//     carries how many nodes were ordered out of n.
//   - ErrBadNode       from Builder.AddEdge on a negative id.
package toposort
