package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsketch/core"
	"github.com/katalvlaran/graphsketch/graphio"
)

func newShortestCmd() *cobra.Command {
	var source int64

	cmd := &cobra.Command{
		Use:   "shortest <sketch>",
		Short: "Single-source shortest paths (Dijkstra)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFromContext(cmd.Context())
			g, err := loadGraph(cmd, a, args[0])
			if err != nil {
				return err
			}

			out, err := a.runner.ShortestPaths(cmd.Context(), g, core.NodeID(source))
			if err != nil {
				return err
			}
			doc := graphio.NewShortestPathsDoc(g, out.Result)

			w := cmd.OutOrStdout()
			if a.jsonOut {
				return graphio.EncodeJSON(w, doc)
			}
			printTitle(w, "Shortest paths from "+strconv.FormatInt(source, 10))
			rows := make([][]string, 0, len(doc.Entries))
			for _, e := range doc.Entries {
				path := styleDim.Render("unreachable")
				if e.Reachable {
					path = formatNodes(e.Path)
				}
				rows = append(rows, []string{
					strconv.FormatInt(int64(e.Node), 10),
					formatNumber(float64(e.Distance)),
					path,
				})
			}
			renderTable(w, []string{"Node", "Distance", "Path"}, rows)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&source, "source", "s", 0, "source node ID")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}
