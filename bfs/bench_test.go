package bfs_test

import (
	"testing"

	"github.com/avoskres/graphkit/adjacency"
	"github.com/avoskres/graphkit/bfs"
)

// BenchmarkRun_Chain measures BFS on a linear chain of N+1 nodes.
func BenchmarkRun_Chain(b *testing.B) {
	const N = 10000
	adj, _ := adjacency.NewList(N + 1)
	for i := 0; i < N; i++ {
		_ = adj.AddEdge(i, i+1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Run(adj, 0)
	}
}

// BenchmarkRun_BinaryTree runs BFS on a complete binary tree of depth 10.
func BenchmarkRun_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 nodes
	n := (1 << depth) - 1
	adj, _ := adjacency.NewList(n)
	for v := 1; v < n; v++ {
		_ = adj.AddEdge((v-1)/2, v)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Run(adj, 0)
	}
}
