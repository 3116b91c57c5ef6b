package degree_test

import (
	"fmt"

	"github.com/katalvlaran/neuronet/core"
	"github.com/katalvlaran/neuronet/degree"
)

// ExampleIndex_MaxDegreeNode finds the most connected node of a small graph.
func ExampleIndex_MaxDegreeNode() {
	g, _ := core.Build([]core.Edge{
		{From: 1, To: 2},
		{From: 2, To: 3},
		{From: 1, To: 3},
	})
	ix, _ := degree.New(g)

	top, _ := ix.MaxDegreeNode()
	d1, _ := ix.Degree(1)
	d3, _ := ix.Degree(3)
	fmt.Println("critical:", top, "degree(1):", d1, "degree(3):", d3)

	// Output:
	// critical: 1 degree(1): 2 degree(3): 0
}
