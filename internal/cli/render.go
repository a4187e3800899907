package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsketch/bfs"
	"github.com/katalvlaran/graphsketch/core"
	"github.com/katalvlaran/graphsketch/graphio"
	"github.com/katalvlaran/graphsketch/internal/pipeline"
)

type renderFlags struct {
	output    string
	to        string
	highlight string
	title     string
	overlay   string
	source    int64
	target    int64
}

func newRenderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <sketch>",
		Short: "Draw a sketch as SVG or DOT, optionally with a solver result on top",
		Long: `Draw a sketch with Graphviz, every node pinned at its position.

--overlay picks a solver whose result is highlighted:
  route     the route-inspection circuit
  tour      the travelling-salesman tour
  shortest  the shortest path from --source to --target
  hops      the path with the fewest edges from --source to --target

--highlight takes an explicit node list instead, e.g. "1,2,3".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFromContext(cmd.Context())
			g, err := loadGraph(cmd, a, args[0])
			if err != nil {
				return err
			}

			highlight, err := parseNodeList(flags.highlight)
			if err != nil {
				return err
			}
			if flags.overlay != "" {
				if highlight, err = overlayPath(cmd, a.runner, g, flags); err != nil {
					return err
				}
			}

			format := graphio.FormatSVG
			if flags.to != "" || (flags.output != "" && flags.output != stdio) {
				if format, err = outputFormat(flags.to, flags.output); err != nil {
					return err
				}
			}
			if format != graphio.FormatSVG && format != graphio.FormatDOT {
				return fmt.Errorf("%w: render writes svg or dot, not %s", graphio.ErrUnsupportedFormat, format)
			}

			w, closeOut, err := openOutput(cmd, flags.output)
			if err != nil {
				return err
			}
			opts := graphio.DOTOptions{Highlight: highlight, Title: flags.title}
			if err := graphio.WriteGraph(cmd.Context(), w, g, format, opts); err != nil {
				_ = closeOut()
				return err
			}
			return closeOut()
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")
	f.StringVar(&flags.to, "to", "", "svg or dot (default from -o, else svg)")
	f.StringVar(&flags.highlight, "highlight", "", "comma-separated node IDs to highlight in order")
	f.StringVar(&flags.title, "title", "", "caption drawn under the sketch")
	f.StringVar(&flags.overlay, "overlay", "", "route, tour, shortest or hops")
	f.Int64Var(&flags.source, "source", 0, "source node for --overlay shortest or hops")
	f.Int64Var(&flags.target, "target", 0, "target node for --overlay shortest or hops")
	return cmd
}

// overlayPath runs the solver named by --overlay and returns the node
// sequence to highlight.
func overlayPath(cmd *cobra.Command, runner *pipeline.Runner, g *core.Graph, f renderFlags) ([]core.NodeID, error) {
	ctx := cmd.Context()
	switch f.overlay {
	case "route":
		out, err := runner.RouteInspection(ctx, g, pipeline.RouteOptions{})
		if err != nil {
			return nil, err
		}
		return out.Result.Circuit, nil
	case "tour":
		out, err := runner.Tour(ctx, g, "")
		if err != nil {
			return nil, err
		}
		path := append([]core.NodeID(nil), out.Result.Path...)
		if out.Result.Closed && len(path) > 1 {
			path = append(path, path[0])
		}
		return path, nil
	case "shortest":
		out, err := runner.ShortestPaths(ctx, g, core.NodeID(f.source))
		if err != nil {
			return nil, err
		}
		path, ok := out.Result.PathTo(core.NodeID(f.target))
		if !ok {
			return nil, fmt.Errorf("node %d is not reachable from %d", f.target, f.source)
		}
		return path, nil
	case "hops":
		res, err := bfs.BFS(g, core.NodeID(f.source), bfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		return res.PathTo(core.NodeID(f.target))
	default:
		return nil, fmt.Errorf("unknown overlay %q (want route, tour, shortest or hops)", f.overlay)
	}
}
