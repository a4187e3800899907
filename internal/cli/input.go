package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsketch/core"
	"github.com/katalvlaran/graphsketch/graphio"
)

// stdio marks stdin or stdout in place of a path.
const stdio = "-"

// loadGraph reads the sketch at path ("-" for stdin). The format comes from
// the extension, or from --input-format for stdin. graph.bidirectional can
// only turn a JSON sketch two-way; an explicit --bidirectional=<bool> sets
// the mode whatever the file says.
func loadGraph(cmd *cobra.Command, a *app, path string) (*core.Graph, error) {
	var (
		r      io.Reader
		format graphio.Format
		err    error
	)
	if path == stdio {
		r = cmd.InOrStdin()
		format, err = graphio.ParseFormat(a.inputFormat)
	} else {
		format, err = graphio.FormatFromPath(path)
		if err == nil {
			f, openErr := os.Open(path)
			if openErr != nil {
				return nil, fmt.Errorf("open sketch: %w", openErr)
			}
			defer f.Close()
			r = f
		}
	}
	if err != nil {
		return nil, err
	}

	g, err := graphio.ReadGraph(r, format, a.cfg.Graph.Bidirectional)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if a.direction != nil && g.Bidirectional() != *a.direction {
		g = core.NewGraph(g.Nodes(), g.Edges(), core.WithBidirectional(*a.direction))
	}
	a.logger.Debug("loaded sketch", "path", path, "format", format, "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}

// openOutput returns stdout for "" or "-", else a created file.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == stdio {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
