// Package pipeline runs the graphsketch solvers on behalf of the CLI and the
// HTTP server: it validates the sketch, applies configured strategies, tags
// every run with an ID and logs its start, finish and duration.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/graphsketch/core"
	"github.com/katalvlaran/graphsketch/dijkstra"
	"github.com/katalvlaran/graphsketch/internal/config"
	"github.com/katalvlaran/graphsketch/matrix"
	"github.com/katalvlaran/graphsketch/postman"
	"github.com/katalvlaran/graphsketch/tour"
)

var (
	// ErrInvalidGraph wraps a core.Validate failure.
	ErrInvalidGraph = errors.New("pipeline: invalid graph")

	// ErrExactTooLarge rejects an explicit exact tour above solver.max_exact_nodes.
	ErrExactTooLarge = errors.New("pipeline: too many nodes for an exact tour")
)

// Algorithm names, as logged and reported.
const (
	AlgoShortestPaths   = "shortest-paths"
	AlgoRouteInspection = "route-inspection"
	AlgoTour            = "tour"
	AlgoMatrix          = "matrix"
)

// Meta describes one run.
type Meta struct {
	RunID     string        `json:"runId"`
	Algorithm string        `json:"algorithm"`
	Started   time.Time     `json:"started"`
	Duration  time.Duration `json:"durationNs"`
	Nodes     int           `json:"nodes"`
	Edges     int           `json:"edges"`
}

// Runner executes solver runs. It holds no per-run state, so one Runner may
// serve concurrent requests.
type Runner struct {
	Config config.Config
	Logger *log.Logger
}

// NewRunner returns a Runner; a nil logger means log.Default().
func NewRunner(cfg config.Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Config: cfg, Logger: logger}
}

// run is the per-call bookkeeping shared by every entry point.
type run struct {
	meta   Meta
	logger *log.Logger
}

// begin checks ctx and the sketch, then logs the start of a run.
func (r *Runner) begin(ctx context.Context, algo string, g *core.Graph) (*run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := core.Validate(g); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	rn := &run{meta: Meta{
		RunID:     uuid.NewString(),
		Algorithm: algo,
		Started:   time.Now(),
		Nodes:     g.NodeCount(),
		Edges:     g.EdgeCount(),
	}}
	rn.logger = r.Logger.With("run", rn.meta.RunID, "algorithm", algo)
	rn.logger.Info("run started", "nodes", rn.meta.Nodes, "edges", rn.meta.Edges, "bidirectional", g.Bidirectional())
	return rn, nil
}

// finish stamps the duration and logs the outcome.
func (rn *run) finish(err error, keyvals ...any) Meta {
	rn.meta.Duration = time.Since(rn.meta.Started)
	if err != nil {
		rn.logger.Warn("run failed", "duration", rn.meta.Duration, "err", err)
		return rn.meta
	}
	rn.logger.Info("run finished", append([]any{"duration", rn.meta.Duration}, keyvals...)...)
	return rn.meta
}

// ShortestPathsOutput is the outcome of ShortestPaths.
type ShortestPathsOutput struct {
	Meta   Meta
	Result *dijkstra.Result
}

// ShortestPaths runs Dijkstra from source. Settle and relax events are
// logged at debug level.
func (r *Runner) ShortestPaths(ctx context.Context, g *core.Graph, source core.NodeID) (*ShortestPathsOutput, error) {
	rn, err := r.begin(ctx, AlgoShortestPaths, g)
	if err != nil {
		return nil, err
	}

	opts := []dijkstra.Option{
		dijkstra.WithOnSettle(func(id core.NodeID, d float64) {
			rn.logger.Debug("settled", "node", id, "dist", d)
		}),
		dijkstra.WithOnRelax(func(from, to core.NodeID, d float64) {
			rn.logger.Debug("relaxed", "from", from, "to", to, "dist", d)
		}),
	}
	if r.Config.Solver.DijkstraHeap {
		opts = append(opts, dijkstra.WithHeap())
	}

	res := dijkstra.ShortestPaths(g, source, opts...)
	meta := rn.finish(nil, "source", source, "settled", len(res.Order))
	return &ShortestPathsOutput{Meta: meta, Result: res}, nil
}

// RouteOptions overrides configured route-inspection strategies. Empty
// fields fall back to the configuration.
type RouteOptions struct {
	Matching        string
	Walk            string
	ExpandDeadheads *bool
}

// RouteOutput is the outcome of RouteInspection.
type RouteOutput struct {
	Meta   Meta
	Result *postman.Result
}

// RouteInspection runs the postman solver. A *postman.NotSolvableError is
// returned unchanged so callers can report it as a user-facing outcome.
func (r *Runner) RouteInspection(ctx context.Context, g *core.Graph, ro RouteOptions) (*RouteOutput, error) {
	matchName := firstNonEmpty(ro.Matching, r.Config.Solver.Matching)
	matcher, err := postman.ParseMatcher(matchName)
	if err != nil {
		return nil, err
	}
	walk, err := postman.ParseWalk(firstNonEmpty(ro.Walk, r.Config.Solver.Walk))
	if err != nil {
		return nil, err
	}
	expand := r.Config.Solver.ExpandDeadheads
	if ro.ExpandDeadheads != nil {
		expand = *ro.ExpandDeadheads
	}

	rn, err := r.begin(ctx, AlgoRouteInspection, g)
	if err != nil {
		return nil, err
	}

	var pathOpts []dijkstra.Option
	if r.Config.Solver.DijkstraHeap {
		pathOpts = append(pathOpts, dijkstra.WithHeap())
	}
	opts := []postman.Option{
		postman.WithMatcher(matcher),
		postman.WithWalk(walk),
		postman.WithPathOptions(pathOpts...),
		postman.WithContext(ctx),
	}
	if expand {
		opts = append(opts, postman.WithExpandDeadheads())
	}
	res, err := postman.Solve(g, opts...)
	if err != nil {
		rn.finish(err)
		return nil, err
	}

	meta := rn.finish(nil,
		"matching", matchName, "walk", walk,
		"unbalanced", len(res.Unbalanced), "deadheads", len(res.Deadheads),
		"total", res.TotalCost, "wasted", res.WastedCost, "complete", res.Complete)
	return &RouteOutput{Meta: meta, Result: res}, nil
}

// TourOutput is the outcome of Tour.
type TourOutput struct {
	Meta   Meta
	Result *tour.Result
}

// Tour runs the tour solver with the named strategy ("" means auto). The
// auto threshold is solver.exact_tour_limit; an explicit exact request above
// solver.max_exact_nodes fails with ErrExactTooLarge.
func (r *Runner) Tour(ctx context.Context, g *core.Graph, strategy string) (*TourOutput, error) {
	s, err := tour.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	if n := len(g.NodeIDs()); s == tour.StrategyExact && n > r.Config.Solver.MaxExactNodes {
		return nil, fmt.Errorf("%w: %d nodes, limit %d", ErrExactTooLarge, n, r.Config.Solver.MaxExactNodes)
	}

	rn, err := r.begin(ctx, AlgoTour, g)
	if err != nil {
		return nil, err
	}

	res, err := tour.Solve(g, tour.WithStrategy(s), tour.WithExactLimit(r.Config.Solver.ExactTourLimit))
	if err != nil {
		rn.finish(err)
		return nil, err
	}

	meta := rn.finish(nil, "strategy", res.Strategy, "distance", res.Distance,
		"complete", res.Complete, "backtracks", len(res.Backtracks))
	return &TourOutput{Meta: meta, Result: res}, nil
}

// MatrixOutput is the outcome of Matrix.
type MatrixOutput struct {
	Meta   Meta
	Matrix *matrix.Dense
	Nodes  []core.NodeID
}

// Matrix builds the adjacency matrix, or its Floyd–Warshall closure when
// closure is set.
func (r *Runner) Matrix(ctx context.Context, g *core.Graph, closure bool) (*MatrixOutput, error) {
	rn, err := r.begin(ctx, AlgoMatrix, g)
	if err != nil {
		return nil, err
	}

	m, ids := matrix.Adjacency(g)
	if closure {
		if m, err = matrix.FloydWarshall(m); err != nil {
			rn.finish(err)
			return nil, err
		}
	}

	meta := rn.finish(nil, "size", len(ids), "closure", closure)
	return &MatrixOutput{Meta: meta, Matrix: m, Nodes: ids}, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
