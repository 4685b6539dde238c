// Package bfs provides breadth-first search over an adjacency.List,
// returning unweighted shortest-path distances, parent links, and
// visit order.
//
// What
//
//   - Distances(adj, source): just the distance slice, −1 marking
//     unreachable nodes.
//   - Run(adj, source, opts...): full Result with Order (visit
//     sequence), Dist and Parent slices, plus PathTo reconstruction.
//   - Optional hooks and limits: OnVisit callback (may abort the
//     search), neighbor filtering, MaxDepth, context cancellation.
//
// Why
//
//   - Unweighted shortest paths in O(n + e); the base layer every
//     uniform-cost puzzle reaches for first.
//
// Determinism
//
//	Neighbors are enqueued in adjacency insertion order through a FIFO
//	queue, so the visit sequence is fully reproducible.
//
// Complexity (n = nodes, e = edges)
//
//   - Time:   O(n + e)
//   - Memory: O(n) for the queue and result slices
//
// Errors
//
//   - ErrNilAdjacency      if the adjacency pointer is nil.
//   - ErrSourceOutOfRange  if the source id is outside [0, n).
//   - ErrOptionViolation   if an invalid Option was supplied.
//   - ErrUnreachable       from Result.PathTo on an unreached target.
//   - Context and OnVisit errors propagate to the caller.
package bfs
