// Package dfs provides iterative depth-first preorder traversal over
// an adjacency.List.
//
// What
//
//   - Preorder(adj, source, opts...): the sequence of nodes in the
//     order first discovered, children explored in adjacency insertion
//     order.
//   - Optional OnVisit hook (may abort) and context cancellation.
//
// Why
//
//   - Preorder discovery drives reachability checks, exit-path
//     puzzles, and is the skeleton the SCC package builds on.
//
// Recursion
//
//	The traversal simulates recursion with an explicit frame stack
//	(node + next-edge cursor), so depth is bounded by available memory
//	rather than the goroutine stack.
//
// Complexity (n = nodes, e = edges)
//
//   - Time:   O(n + e)
//   - Memory: O(n)
//
// Errors
//
//   - ErrNilAdjacency     if the adjacency pointer is nil.
//   - ErrSourceOutOfRange if the source id is outside [0, n).
//   - Context and OnVisit errors propagate to the caller.
package dfs
