package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsketch/graphio"
)

func newMatrixCmd() *cobra.Command {
	var closure bool

	cmd := &cobra.Command{
		Use:   "matrix <sketch>",
		Short: "Adjacency matrix, or all-pairs distances with --closure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFromContext(cmd.Context())
			g, err := loadGraph(cmd, a, args[0])
			if err != nil {
				return err
			}

			out, err := a.runner.Matrix(cmd.Context(), g, closure)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.jsonOut {
				return graphio.EncodeJSON(w, graphio.NewMatrixDoc(out.Matrix, out.Nodes))
			}

			headers := []string{""}
			for _, id := range out.Nodes {
				headers = append(headers, strconv.FormatInt(int64(id), 10))
			}
			rows := make([][]string, 0, len(out.Nodes))
			for i, row := range out.Matrix.ToSlices() {
				cells := []string{strconv.FormatInt(int64(out.Nodes[i]), 10)}
				for _, v := range row {
					cells = append(cells, matrixCell(v))
				}
				rows = append(rows, cells)
			}
			title := "Adjacency matrix"
			if closure {
				title = "Shortest-path distances"
			}
			printTitle(w, title)
			renderTable(w, headers, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&closure, "closure", false, "close the matrix with Floyd–Warshall")
	return cmd
}

// matrixCell prints a missing edge as "-".
func matrixCell(v float64) string {
	if s := formatNumber(v); s != infinity {
		return s
	}
	return "-"
}
