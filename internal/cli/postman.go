package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsketch/graphio"
	"github.com/katalvlaran/graphsketch/internal/pipeline"
)

func newPostmanCmd() *cobra.Command {
	var (
		matching string
		walk     string
		expand   bool
	)

	cmd := &cobra.Command{
		Use:     "postman <sketch>",
		Aliases: []string{"route"},
		Short:   "Route inspection: a closed walk covering every edge",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFromContext(cmd.Context())
			g, err := loadGraph(cmd, a, args[0])
			if err != nil {
				return err
			}

			ro := pipeline.RouteOptions{Matching: matching, Walk: walk}
			if cmd.Flags().Changed("expand") {
				ro.ExpandDeadheads = &expand
			}
			out, err := a.runner.RouteInspection(cmd.Context(), g, ro)
			if err != nil {
				return err
			}
			res := out.Result

			w := cmd.OutOrStdout()
			if a.jsonOut {
				return graphio.EncodeJSON(w, graphio.NewRouteDoc(res))
			}
			printTitle(w, "Route inspection")
			printField(w, "unbalanced", formatNodes(res.Unbalanced))
			printField(w, "start", res.Start)
			printField(w, "circuit", formatNodes(res.Circuit))
			printField(w, "original", styleNumber.Render(formatNumber(res.OriginalCost)))
			printField(w, "total", styleNumber.Render(formatNumber(res.TotalCost)))
			printField(w, "wasted", styleNumber.Render(formatNumber(res.WastedCost)))
			if len(res.Deadheads) > 0 {
				rows := make([][]string, 0, len(res.Deadheads))
				for _, e := range res.Deadheads {
					rows = append(rows, []string{
						strconv.FormatInt(int64(e.ID), 10),
						strconv.FormatInt(int64(e.From), 10),
						strconv.FormatInt(int64(e.To), 10),
						formatNumber(e.Weight),
					})
				}
				renderTable(w, []string{"Deadhead", "From", "To", "Weight"}, rows)
			}
			printStatus(w, res.Complete, completeness(res.Complete, "every edge covered", "walk stopped before covering every edge"))
			return nil
		},
	}

	cmd.Flags().StringVar(&matching, "matching", "", "matching strategy: greedy, exact (default from config)")
	cmd.Flags().StringVar(&walk, "walk", "", "walk strategy: hierholzer, greedy (default from config)")
	cmd.Flags().BoolVar(&expand, "expand", false, "replace deadheads by the real edges they stand for")
	return cmd
}

func completeness(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
