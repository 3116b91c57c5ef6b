// SPDX-License-Identifier: MIT

package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	var metrics bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Load the graph and print size, memory estimate and critical node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			st, err := a.eng.Statistics()
			if err != nil {
				return err
			}
			rep, err := a.eng.LastLoad()
			if err != nil {
				return err
			}

			p := &panel{title: "Graph statistics"}
			p.add("source", "%s", rep.Source)
			p.add("nodes", "%d", st.NodeCount)
			p.add("edges", "%d", st.EdgeCount)
			p.add("memory", "%.2f MB (%d bytes)", st.EstimatedMemoryMB, st.EstimatedMemoryBytes)
			p.add("critical node", "%d (degree %d)", st.MaxDegreeNode, st.MaxDegree)
			p.add("skipped lines", "%d of %d", rep.Skipped, rep.Lines)
			p.add("load time", "%s", rep.Duration.Round(time.Microsecond))
			if err := p.render(out(cmd)); err != nil {
				return err
			}

			if metrics {
				return a.tel.WriteMetrics(out(cmd))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&metrics, "metrics", false, "also print Prometheus metrics for the load")
	return cmd
}
