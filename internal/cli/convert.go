package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsketch/graphio"
)

func newConvertCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <in> [out]",
		Short: "Translate a sketch between csv, json, dot and svg",
		Long: `Translate a sketch between formats.

The input format comes from the extension (or --input-format for "-").
The output format comes from --to, else from the output extension. Without
an output path the result goes to stdout.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFromContext(cmd.Context())
			g, err := loadGraph(cmd, a, args[0])
			if err != nil {
				return err
			}

			var out string
			if len(args) == 2 {
				out = args[1]
			}
			format, err := outputFormat(to, out)
			if err != nil {
				return err
			}
			w, closeOut, err := openOutput(cmd, out)
			if err != nil {
				return err
			}
			if err := graphio.WriteGraph(cmd.Context(), w, g, format, graphio.DOTOptions{}); err != nil {
				_ = closeOut()
				return err
			}
			a.logger.Debug("converted sketch", "from", args[0], "to", format)
			return closeOut()
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "output format: csv, json, dot, svg")
	return cmd
}
