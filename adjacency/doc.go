// Package adjacency provides the node-indexed adjacency lists consumed
// by every algorithm in graphkit.
//
// What
//
//   - List:     per node, an ordered slice of outgoing neighbor ids.
//   - Weighted: per node, an ordered slice of Arc{To, Weight} pairs.
//   - Nodes are dense integers in [0, n); n is fixed at construction
//     and never grows. Identity is the index itself — there is no
//     vertex object.
//   - Multi-edges and self-loops are always permitted; every consumer
//     in graphkit tolerates both.
//
// Why
//
//   - One shared, read-only input type keeps the algorithm packages
//     free of graph bookkeeping: they receive an adjacency, allocate
//     their own per-call state sized to Len(), and return.
//   - Flat integer slices sidestep pointer-chasing and ownership
//     cycles entirely.
//
// Aliasing discipline
//
//	Neighbors and Arcs return the backing slices, not copies. Callers
//	must treat them as read-only for the duration of any algorithm
//	call; mutating an adjacency while a traversal runs is undefined.
//
// Determinism
//
//	Neighbor order is insertion order. All graphkit algorithms iterate
//	neighbors in that order, so results are reproducible for a fixed
//	build sequence.
//
// Errors
//
//   - ErrBadNodeCount   if a constructor receives a negative n.
//   - ErrNodeOutOfRange if an edge endpoint falls outside [0, n).
package adjacency
