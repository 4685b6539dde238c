// Package dijkstra implements Dijkstra's single-source shortest paths
// over a non-negatively weighted adjacency, driven by an indexed
// min-heap with true decrease-key.
//
// What
//
//   - Run(adj, source, opts...) returns a Result with Dist (Inf for
//     unreachable nodes) and Prev (−1 for the source and unreached
//     nodes), plus PathTo reconstruction.
//   - Options: WithMaxDistance caps exploration; WithCancelContext
//     threads a context through the main loop.
//
// Why
//
//   - Uniform-cost search over weighted puzzle graphs; also the
//     reference cost oracle the astar package is checked against.
//
// Heap discipline
//
//	Each node is inserted on first discovery and decrease-keyed on
//	improvement, so the heap holds at most one live entry per node and
//	a popped node's distance is final (non-negative weights guarantee
//	no later improvement). There are no stale entries to skip.
//
// Complexity (n = nodes, e = edges)
//
//   - Time:   O((n + e) log n)
//   - Memory: O(n)
//
// Errors
//
//   - ErrNilAdjacency     if the adjacency pointer is nil.
//   - ErrSourceOutOfRange if the source id is outside [0, n).
//   - ErrNegativeWeight   if any arc has negative weight (pre-scanned,
//     fail-fast, with the offending arc in the message).
//   - ErrOptionViolation  if an invalid Option is supplied.
//   - ErrUnreachable      from Result.PathTo on an unreached target.
package dijkstra
