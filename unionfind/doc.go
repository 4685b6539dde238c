// Package unionfind provides a disjoint-set union (DSU) structure over
// dense node ids, answering connectivity queries in near-constant
// amortized time.
//
// What
//
//   - New(n) creates n singleton sets for nodes [0, n).
//   - Find returns the canonical representative of a node's set,
//     compressing the visited path as a side effect.
//   - Union merges two sets by size and reports whether a merge
//     actually occurred — the signal spanning-structure and
//     component-counting callers rely on.
//   - Connected, SizeOf and Count answer the derived queries.
//
// Why
//
//   - Incremental connectivity (did this edge join two islands?) is
//     awkward with traversal alone; DSU answers it in O(α(n))
//     amortized per operation once both union by size and path
//     compression are applied, which this implementation always does.
//
// Invariants
//
//	Find always terminates and two nodes share a representative iff
//	they have been unioned transitively. Compression and size-balancing
//	are opportunistic accelerations; correctness never depends on them.
//
// Errors
//
//   - ErrBadNodeCount   if New receives a negative n.
//   - ErrNodeOutOfRange if a queried node id falls outside [0, n).
package unionfind
