package engine_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/neuronet/engine"
)

func ExampleEngine() {
	ctx := context.Background()
	e := engine.New()

	st, err := e.LoadReader(ctx, "inline", strings.NewReader("1 2\n2 3\n1 3\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	top, _ := e.MaxDegreeNode()
	res, _ := e.BFS(ctx, 1, 1)

	fmt.Printf("nodes=%d edges=%d critical=%d\n", st.NodeCount, st.EdgeCount, top)
	fmt.Println("bfs:", res.Nodes, res.Edges)

	// Output:
	// nodes=3 edges=3 critical=1
	// bfs: [1 2 3] [1->2 1->3]
}
