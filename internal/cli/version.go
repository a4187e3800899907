package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if appFromContext(cmd.Context()).jsonOut {
				_, err := fmt.Fprintf(w, "{\"version\":%q,\"commit\":%q,\"date\":%q}\n", version, commit, date)
				return err
			}
			printTitle(w, "graphsketch "+version)
			printField(w, "commit", commit)
			printField(w, "built", date)
			return nil
		},
	}
}
