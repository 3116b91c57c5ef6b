// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/neuronet/builder"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		n, rows, cols int
		p             float64
		seed          int64
		bidirectional bool
		output        string
	)
	cmd := &cobra.Command{
		Use:       "generate path|star|cycle|wheel|complete|grid|random",
		Short:     "Write a synthetic edge list",
		Long:      `Generate a deterministic edge list and write it to stdout or --output (gzip when the name ends in .gz).`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"path", "star", "cycle", "wheel", "complete", "grid", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var ctor builder.Constructor
			switch args[0] {
			case "path":
				ctor = builder.Path(n)
			case "star":
				ctor = builder.Star(n)
			case "cycle":
				ctor = builder.Cycle(n)
			case "wheel":
				ctor = builder.Wheel(n)
			case "complete":
				ctor = builder.Complete(n)
			case "grid":
				ctor = builder.Grid(rows, cols)
			case "random":
				ctor = builder.RandomSparse(n, p)
			}

			opts := []builder.BuilderOption{builder.WithSeed(seed)}
			if bidirectional {
				opts = append(opts, builder.WithBidirectional())
			}
			edges, err := builder.BuildEdges(opts, ctor)
			if err != nil {
				return err
			}

			header := fmt.Sprintf("neuronet generate %s n=%d p=%g seed=%d", args[0], n, p, seed)
			if args[0] == "grid" {
				header = fmt.Sprintf("neuronet generate grid rows=%d cols=%d", rows, cols)
			}
			header += fmt.Sprintf("\nedges: %d", len(edges))

			if output == "" || output == "-" {
				return builder.WriteEdgeList(out(cmd), edges, header)
			}
			if err := builder.WriteFile(output, edges, header); err != nil {
				return err
			}
			a.log.Info("edge list written", "path", output, "edges", len(edges))
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&n, "n", 10, "number of nodes")
	f.IntVar(&rows, "rows", 3, "grid rows")
	f.IntVar(&cols, "cols", 3, "grid columns")
	f.Float64Var(&p, "p", 0.1, "edge probability for random")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.BoolVar(&bidirectional, "bidirectional", false, "emit every edge in both directions")
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
