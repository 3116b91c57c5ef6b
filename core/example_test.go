package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/neuronet/core"
)

// ExampleBuild demonstrates building a graph and querying it.
func ExampleBuild() {
	// 1) Build from an edge list; identifiers need not be contiguous.
	g, err := core.Build([]core.Edge{
		{From: 1, To: 2},
		{From: 2, To: 3},
		{From: 1, To: 3},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Totals are fixed at build time.
	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())

	// 3) Out-neighbors come back in ingestion order.
	nbrs, _ := g.Neighbors(1)
	fmt.Println("neighbors of 1:", nbrs)

	// 4) Unknown identifiers are reported, not guessed.
	_, err = g.Neighbors(42)
	fmt.Println("unknown:", errors.Is(err, core.ErrUnknownNode))

	// Output:
	// nodes: 3 edges: 3
	// neighbors of 1: [2 3]
	// unknown: true
}

// ExampleWithDedup shows the duplicate-edge policy switch.
func ExampleWithDedup() {
	edges := []core.Edge{{From: 1, To: 2}, {From: 1, To: 2}}

	multi, _ := core.Build(edges)
	dedup, _ := core.Build(edges, core.WithDedup())
	fmt.Println(multi.EdgeCount(), dedup.EdgeCount())

	// Output:
	// 2 1
}
