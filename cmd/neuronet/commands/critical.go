// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCriticalCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "critical",
		Short: "Show the most connected nodes and a sample of their neighbors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			ranked, err := a.eng.TopK(top)
			if err != nil {
				return err
			}

			sample := a.cfg.Query.NeighborLimit
			p := &panel{title: fmt.Sprintf("Critical nodes (top %d)", len(ranked))}
			for i, r := range ranked {
				nbrs, err := a.eng.Neighbors(r.Node)
				if err != nil {
					return err
				}
				shown := nbrs
				if sample > 0 && len(shown) > sample {
					shown = shown[:sample]
				}
				ids := make([]string, len(shown))
				for j, n := range shown {
					ids[j] = fmt.Sprint(n)
				}
				list := strings.Join(ids, " ")
				if len(shown) < len(nbrs) {
					list += " ..."
				}
				p.add(fmt.Sprintf("#%d", i+1), "node %d  degree %d  neighbors: %s", r.Node, r.Degree, list)
			}
			return p.render(out(cmd))
		},
	}
	cmd.Flags().IntVar(&top, "top", 1, "number of nodes to rank")
	return cmd
}
