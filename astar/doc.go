// Package astar implements goal-directed shortest-path search over a
// non-negatively weighted adjacency, ordered by distance-so-far plus a
// caller-supplied heuristic.
//
// What
//
//   - Run(adj, source, goal, h, opts...) returns the total cost and
//     the source→goal node sequence, or ErrNoPath when the goal is
//     unreachable.
//   - Heuristic is an injected function value node→estimated remaining
//     cost; the zero heuristic degrades gracefully to Dijkstra.
//
// Why
//
//   - When only one destination matters, steering the frontier toward
//     it finalizes far fewer nodes than uniform-cost search.
//
// Contract
//
//	The heuristic must be admissible — never overestimate the true
//	remaining cost — for the returned cost to be optimal, and arc
//	weights must be non-negative. Neither is detected at runtime;
//	both are caller obligations.
//
// Termination
//
//	The search stops as soon as the goal is popped from the heap: with
//	an admissible heuristic its distance is final at that point. If
//	the heap drains first, the goal is unreachable and ErrNoPath is
//	returned as a first-class outcome.
//
// Complexity (n = nodes, e = edges)
//
//   - Time:   O((n + e) log n) worst case, typically far less
//   - Memory: O(n)
//
// Errors
//
//   - ErrNilAdjacency   if the adjacency pointer is nil.
//   - ErrNilHeuristic   if no heuristic function is supplied.
//   - ErrNodeOutOfRange if source or goal is outside [0, n).
//   - ErrNoPath         if the goal cannot be reached (expected
//     negative result, distinct from every success value).
package astar
