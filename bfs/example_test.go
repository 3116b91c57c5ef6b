package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/neuronet/bfs"
	"github.com/katalvlaran/neuronet/core"
)

// ExampleBFS traverses one level from node 1 of a small triangle.
// The edge 2→3 is reachable but not a discovery edge, so it is omitted.
func ExampleBFS() {
	g, _ := core.Build([]core.Edge{
		{From: 1, To: 2},
		{From: 2, To: 3},
		{From: 1, To: 3},
	})

	res, err := bfs.BFS(g, 1, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("nodes:", res.Nodes)
	fmt.Println("edges:", res.Edges)

	// Output:
	// nodes: [1 2 3]
	// edges: [1->2 1->3]
}

// ExampleBFS_depthZero shows that a depth below 1 is rejected.
func ExampleBFS_depthZero() {
	g, _ := core.Build([]core.Edge{{From: 1, To: 2}})

	_, err := bfs.BFS(g, 1, 0)
	fmt.Println(err)

	// Output:
	// bfs: invalid option supplied: maxDepth must be >= 1 (got 0)
}

// ExampleResult_PathTo reconstructs the discovery path to a node.
func ExampleResult_PathTo() {
	g, _ := core.Build([]core.Edge{
		{From: 10, To: 20},
		{From: 20, To: 30},
		{From: 10, To: 40},
	})

	res, _ := bfs.BFS(g, 10, 3)
	path, _ := res.PathTo(30)
	fmt.Println(path)

	// Output:
	// [10 20 30]
}
