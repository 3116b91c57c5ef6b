package stats_test

import (
	"fmt"

	"github.com/katalvlaran/neuronet/core"
	"github.com/katalvlaran/neuronet/degree"
	"github.com/katalvlaran/neuronet/stats"
)

func ExampleCompute() {
	g, _ := core.Build([]core.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 1, To: 3}})
	ix, _ := degree.New(g)

	s, _ := stats.Compute(g, ix)
	fmt.Printf("nodes=%d edges=%d bytes=%d critical=%d(%d)\n",
		s.NodeCount, s.EdgeCount, s.EstimatedMemoryBytes, s.MaxDegreeNode, s.MaxDegree)

	// Output:
	// nodes=3 edges=3 bytes=212 critical=1(2)
}
