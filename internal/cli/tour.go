package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsketch/graphio"
)

func newTourCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "tour <sketch>",
		Short: "Travelling-salesman tour (exact or nearest neighbour)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFromContext(cmd.Context())
			g, err := loadGraph(cmd, a, args[0])
			if err != nil {
				return err
			}

			out, err := a.runner.Tour(cmd.Context(), g, strategy)
			if err != nil {
				return err
			}
			res := out.Result

			w := cmd.OutOrStdout()
			if a.jsonOut {
				return graphio.EncodeJSON(w, graphio.NewTourDoc(res))
			}
			printTitle(w, "Tour")
			printField(w, "strategy", res.Strategy)
			printField(w, "path", formatNodes(res.Path))
			printField(w, "distance", styleNumber.Render(formatNumber(res.Distance)))
			printField(w, "closed", res.Closed)
			for _, b := range res.Backtracks {
				printField(w, "backtrack", fmt.Sprintf("%d → %d at step %d", b.From, b.To, b.Index))
			}
			printStatus(w, res.Complete, completeness(res.Complete, "every node visited", "some nodes could not be reached"))
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "auto", "auto, exact or nearest")
	return cmd
}
