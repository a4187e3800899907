// SPDX-License-Identifier: MIT

package postman

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphsketch/core"
	"github.com/katalvlaran/graphsketch/dijkstra"
)

// Sentinel errors.
var (
	// ErrGraphNotSolvable reports a sketch that admits no covering walk:
	// a disconnected directed sketch, or an imbalance pattern that no single
	// deadhead can repair. Concrete failures are *NotSolvableError.
	ErrGraphNotSolvable = errors.New("postman: graph not solvable")

	// ErrMatchingTooLarge is returned by ExactMatcher above MaxExactMatching nodes.
	ErrMatchingTooLarge = errors.New("postman: too many unbalanced nodes for exact matching")

	// ErrUnknownMatching is returned by ParseMatcher for an unknown name.
	ErrUnknownMatching = errors.New("postman: unknown matching strategy")

	// ErrUnknownWalk is returned by ParseWalk for an unknown name.
	ErrUnknownWalk = errors.New("postman: unknown walk strategy")
)

// NotSolvableError carries the reason a sketch was rejected and the nodes
// responsible for it. It matches ErrGraphNotSolvable through errors.Is.
type NotSolvableError struct {
	Reason string
	Nodes  []core.NodeID
}

// Error implements error.
func (e *NotSolvableError) Error() string {
	if len(e.Nodes) == 0 {
		return fmt.Sprintf("%s: %s", ErrGraphNotSolvable, e.Reason)
	}
	ids := make([]string, len(e.Nodes))
	for i, id := range e.Nodes {
		ids[i] = fmt.Sprint(id)
	}
	return fmt.Sprintf("%s: %s (nodes %s)", ErrGraphNotSolvable, e.Reason, strings.Join(ids, ", "))
}

// Is lets errors.Is(err, ErrGraphNotSolvable) succeed.
func (e *NotSolvableError) Is(target error) bool { return target == ErrGraphNotSolvable }

func notSolvable(reason string, nodes ...core.NodeID) error {
	return &NotSolvableError{Reason: reason, Nodes: nodes}
}

// Result is a covering walk over the augmented sketch.
//
// Circuit is the node sequence walked, starting at Start. Traversed lists
// the ID of each edge walked, one per hop (len(Traversed) == len(Circuit)-1);
// synthetic IDs appear unless deadheads were expanded. Deadheads are the
// synthetic edges added by matching, oriented as added. Unbalanced lists the
// odd-degree (bidirectional) or imbalanced (directed) nodes in node order.
//
// TotalCost sums the weights of the edges actually walked and
// WastedCost = TotalCost − OriginalCost. Complete is false when the walk
// stopped before using every edge of the augmented sketch; such a partial
// walk is returned as-is and is not an error.
type Result struct {
	Circuit    []core.NodeID
	Traversed  []core.EdgeID
	Deadheads  []core.Edge
	Unbalanced []core.NodeID
	Start      core.NodeID

	TotalCost    float64
	WastedCost   float64
	OriginalCost float64

	Complete bool
}

// Closed reports whether the walk returns to its start.
func (r *Result) Closed() bool {
	n := len(r.Circuit)
	return n > 0 && r.Circuit[0] == r.Circuit[n-1]
}

// Walk selects the walk-construction strategy.
type Walk int

const (
	// WalkHierholzer splices sub-tours until every edge of the start's
	// component is used. Always completes when parity holds.
	WalkHierholzer Walk = iota

	// WalkGreedy follows the first unused arc leaving the current node and
	// falls back to walking an unused entering arc in reverse. It may stop early.
	WalkGreedy
)

// String returns the configuration name of the walk.
func (w Walk) String() string {
	switch w {
	case WalkHierholzer:
		return "hierholzer"
	case WalkGreedy:
		return "greedy"
	default:
		return fmt.Sprintf("Walk(%d)", int(w))
	}
}

// ParseWalk maps a configuration name to a Walk.
func ParseWalk(name string) (Walk, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hierholzer":
		return WalkHierholzer, nil
	case "greedy":
		return WalkGreedy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownWalk, name)
	}
}

// Options configures Solve.
type Options struct {
	Matcher         Matcher
	Walk            Walk
	ExpandDeadheads bool
	PathOptions     []dijkstra.Option

	// Ctx bounds the connectivity precheck. Nil means context.Background.
	Ctx context.Context
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns greedy matching with the Hierholzer walk.
func DefaultOptions() Options {
	return Options{
		Matcher: GreedyMatcher{},
		Walk:    WalkHierholzer,
	}
}

// WithMatcher sets the matching strategy. Nil is ignored.
func WithMatcher(m Matcher) Option {
	return func(o *Options) {
		if m != nil {
			o.Matcher = m
		}
	}
}

// WithWalk sets the walk strategy.
func WithWalk(w Walk) Option {
	return func(o *Options) { o.Walk = w }
}

// WithExpandDeadheads replaces every synthetic hop in the circuit by the
// shortest path it stands for. Costs are unchanged.
func WithExpandDeadheads() Option {
	return func(o *Options) { o.ExpandDeadheads = true }
}

// WithContext lets a cancelled ctx abort the connectivity precheck.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithPathOptions forwards options to every shortest-path run.
func WithPathOptions(opts ...dijkstra.Option) Option {
	return func(o *Options) { o.PathOptions = append(o.PathOptions, opts...) }
}
