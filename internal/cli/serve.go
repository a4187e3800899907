package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsketch/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFromContext(cmd.Context())
			cfg := a.cfg.Server
			if addr != "" {
				cfg.Addr = addr
			}
			return server.New(a.logger, cfg, a.runner).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from server.addr)")
	return cmd
}
