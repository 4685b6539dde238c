// Package graphkit is a toolbox of graph-algorithm building blocks for
// node-indexed puzzle graphs: traversal, shortest paths, connectivity,
// component decomposition and dependency ordering.
//
// 🚀 What is graphkit?
//
//	A compact, single-threaded library built around one idea: a node is
//	a dense integer in [0, n), and every structure is a flat array
//	indexed by it. On top of that arena it provides:
//		• Adjacency:      directed/undirected, unweighted & weighted lists
//		• Traversals:     BFS (distances, parents, order), DFS preorder
//		• Shortest paths: Dijkstra with a true decrease-key heap, A*
//		• Connectivity:   disjoint-set union (union by size + compression)
//		• Components:     Tarjan strongly connected components (iterative)
//		• Ordering:       Kahn topological sort with cycle reporting
//
// ✨ Why choose graphkit?
//
//   - Predictable – deterministic iteration and tie-breaking throughout
//   - Explicit – unreachable/no-path/cycle are first-class results,
//     never magic zero values
//   - Pure Go – no cgo, no hidden deps, no goroutines, no locks
//   - Composable – algorithms consume a plain adjacency and nothing else
//
// The packages, leaves first:
//
//	adjacency/ — node-indexed adjacency lists (the one shared input type)
//	indexheap/ — indexed min-heap with O(log n) decrease-key
//	unionfind/ — disjoint-set union over [0, n)
//	bfs/, dfs/ — unweighted traversal
//	dijkstra/  — single-source shortest paths (non-negative weights)
//	astar/     — goal-directed search with an injected heuristic
//	scc/       — Tarjan strongly connected components
//	toposort/  — Kahn ordering with partial-progress cycle diagnostics
//
// Quick ASCII example:
//
//	    0──▶1
//	    │   │
//	    ▼   ▼
//	    2──▶3
//
//	four nodes, four directed edges; BFS from 0 yields distances
//	[0 1 1 2], and toposort.Kahn emits 0 before 1 and 2, both before 3.
//
//	go get github.com/avoskres/graphkit
package graphkit
