// Package cli implements the graphsketch command-line interface.
//
// # Commands
//
//   - shortest: single-source shortest paths
//   - postman: route inspection (Chinese postman)
//   - tour: travelling-salesman tour
//   - matrix: adjacency matrix or its shortest-path closure
//   - generate: write a generated sketch
//   - convert: translate a sketch between csv, json, dot and svg
//   - render: draw a sketch, optionally with a solver result on top
//   - serve: run the HTTP API
//   - version: print build information
//
// # Logging
//
// Logs go to stderr through charmbracelet/log. The level comes from the
// configuration file; --verbose (-v) forces debug. Results go to stdout as
// styled tables or, with --json, as JSON documents.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsketch/internal/config"
	"github.com/katalvlaran/graphsketch/internal/pipeline"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the build information printed by `version` and --version.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	configPath    string
	verbose       bool
	bidirectional bool
	jsonOut       bool
	inputFormat   string
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:          "graphsketch",
		Short:        "Shortest paths, route inspection and tours on weighted sketches",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			level := cfg.LogLevel()
			if flags.verbose {
				level = log.DebugLevel
			}
			var direction *bool
			if cmd.Flags().Changed("bidirectional") {
				cfg.Graph.Bidirectional = flags.bidirectional
				direction = &flags.bidirectional
			}

			logger := newLogger(cmd.ErrOrStderr(), level)
			a := &app{
				cfg:         cfg,
				logger:      logger,
				runner:      pipeline.NewRunner(cfg, logger),
				jsonOut:     flags.jsonOut,
				inputFormat: flags.inputFormat,
				direction:   direction,
			}
			cmd.SetContext(withApp(cmd.Context(), a))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("graphsketch %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "TOML configuration file")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&flags.bidirectional, "bidirectional", false, "treat every edge as two-way; an explicit value also overrides the sketch file's own flag")
	pf.BoolVar(&flags.jsonOut, "json", false, "print results as JSON")
	pf.StringVar(&flags.inputFormat, "input-format", "json", "format of a sketch read from stdin (csv, json)")

	root.AddCommand(
		newShortestCmd(),
		newPostmanCmd(),
		newTourCmd(),
		newMatrixCmd(),
		newGenerateCmd(),
		newConvertCmd(),
		newRenderCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI with ctx as the root context.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
