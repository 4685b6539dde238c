package dfs_test

import (
	"fmt"

	"github.com/avoskres/graphkit/adjacency"
	"github.com/avoskres/graphkit/dfs"
)

// ExamplePreorder walks a small dependency tree depth-first: the
// first listed child's whole subtree comes before its sibling.
func ExamplePreorder() {
	adj, _ := adjacency.NewList(6)
	_ = adj.AddEdge(0, 1)
	_ = adj.AddEdge(0, 4)
	_ = adj.AddEdge(1, 2)
	_ = adj.AddEdge(1, 3)
	_ = adj.AddEdge(4, 5)

	order, _ := dfs.Preorder(adj, 0)
	fmt.Println(order)
	// Output:
	// [0 1 2 3 4 5]
}
