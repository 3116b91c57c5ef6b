// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDegreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "degree <id>",
		Short: "Print the out-degree and in-degree of a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNodeID(args[0])
			if err != nil {
				return err
			}
			if err := a.load(cmd); err != nil {
				return err
			}
			d, err := a.eng.Degree(id)
			if err != nil {
				return err
			}
			in, err := a.eng.InDegree(id)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out(cmd), "node %d: degree %d (in-degree %d)\n", id, d, in)
			return err
		},
	}
}

func newNeighborsCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "neighbors <id>",
		Short: "List the out-neighbors of a node in ingestion order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNodeID(args[0])
			if err != nil {
				return err
			}
			if err := a.load(cmd); err != nil {
				return err
			}
			nbrs, err := a.eng.Neighbors(id)
			if err != nil {
				return err
			}

			total := len(nbrs)
			if limit > 0 && limit < total {
				nbrs = nbrs[:limit]
			}
			w := out(cmd)
			if _, err := fmt.Fprintf(w, "node %d: %d neighbors\n", id, total); err != nil {
				return err
			}
			for _, n := range nbrs {
				if _, err := fmt.Fprintln(w, n); err != nil {
					return err
				}
			}
			if len(nbrs) < total {
				_, err = fmt.Fprintf(w, "... %d more\n", total-len(nbrs))
			}
			return err
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many neighbors (0 = all)")
	return cmd
}
