// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/neuronet/bfs"
	"github.com/katalvlaran/neuronet/core"
	"github.com/katalvlaran/neuronet/export"
)

func newBFSCmd(a *app) *cobra.Command {
	var (
		depth  int
		format string
	)
	cmd := &cobra.Command{
		Use:   "bfs <start> [starts...]",
		Short: "Breadth-first subgraph from one or more start nodes",
		Long: `Run a bounded-depth BFS over out-edges and print the discovered nodes and
the tree edges that reached them. Several starts run concurrently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			starts := make([]core.NodeID, len(args))
			for i, s := range args {
				if starts[i], err = parseNodeID(s); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("depth") {
				depth = a.cfg.Query.DefaultDepth
			}
			if err := a.load(cmd); err != nil {
				return err
			}

			var results []*bfs.Result
			if len(starts) == 1 {
				res, err := a.eng.BFS(contextOf(cmd), starts[0], depth)
				if err != nil {
					return err
				}
				results = []*bfs.Result{res}
			} else if results, err = a.eng.BFSMany(contextOf(cmd), starts, depth); err != nil {
				return err
			}

			w := out(cmd)
			for i, res := range results {
				if i > 0 && f == export.FormatText {
					if _, err := fmt.Fprintln(w); err != nil {
						return err
					}
				}
				if err := export.Write(w, res, f); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 1, "maximum depth (>= 1); defaults to query.default_depth")
	cmd.Flags().StringVar(&format, "format", string(export.FormatText), "output format: text, json, dot, mermaid")
	return cmd
}
