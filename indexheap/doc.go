// Package indexheap provides an indexed binary min-heap over dense node
// ids with O(log n) decrease-key, the priority queue behind graphkit's
// Dijkstra and A*.
//
// What
//
//   - Heap entries are (node id, int64 priority) pairs; node ids come
//     from [0, n) fixed at construction.
//   - A position map pos[node] tracks each present node's slot in the
//     heap array, so Insert, DecreaseKey, Update and PopMin all run in
//     O(log n), while Contains and PriorityOf are O(1).
//   - Update accepts both improving and worsening priorities, sifting
//     up or down as required; DecreaseKey enforces the improving-only
//     contract shortest-path relaxation relies on.
//
// Why
//
//   - A plain binary heap cannot reprioritize an element already
//     inside it; Dijkstra and A* need exactly that when a better path
//     to a frontier node is discovered. With decrease-key there is at
//     most one live entry per node, so a popped node is final and no
//     stale-entry skipping is needed.
//
// Invariants
//
//	On every mutation the heap-order property (parent priority ≤ child
//	priorities) and the pos↔slot bijection are restored together; the
//	struct owns both arrays and never exposes one without the other.
//	Violating either is a correctness bug, not a performance one:
//	DecreaseKey locates its entry through pos.
//
// Determinism
//
//	Sift comparisons are strict (<), so equal-priority entries never
//	swap; pop order among ties is a deterministic function of the
//	operation sequence.
//
// Errors
//
//   - ErrNodeOutOfRange if a node id falls outside [0, n).
//   - ErrDuplicateNode  on Insert of a node already present.
//   - ErrNodeAbsent     on DecreaseKey/PriorityOf of an absent node.
//   - ErrWorsePriority  on DecreaseKey with a strictly worse priority.
//   - ErrHeapEmpty      on PopMin of an empty heap.
package indexheap
