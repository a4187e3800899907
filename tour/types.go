// SPDX-License-Identifier: MIT

package tour

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphsketch/core"
)

// ErrUnknownStrategy is returned for a strategy name Solve does not know.
var ErrUnknownStrategy = errors.New("tour: unknown strategy")

// DefaultExactLimit is the largest sketch StrategyAuto solves exactly.
// 9 nodes means 8! = 40320 orderings.
const DefaultExactLimit = 9

// Strategy names a tour algorithm.
type Strategy string

// Supported strategies.
const (
	StrategyAuto    Strategy = "auto"
	StrategyExact   Strategy = "exact"
	StrategyNearest Strategy = "nearest"
)

// ParseStrategy maps a configuration name to a Strategy. The empty name is auto.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(strings.ToLower(strings.TrimSpace(name))); s {
	case "":
		return StrategyAuto, nil
	case StrategyAuto, StrategyExact, StrategyNearest:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Backtrack records a jump from a dead end back to an earlier node.
// Index is the position in Result.Path where To was appended.
type Backtrack struct {
	From  core.NodeID
	To    core.NodeID
	Index int
}

// Result is a tour or a best-effort path.
//
// Exact results are closed: Path lists every node once and Distance includes
// the leg from the last node back to the first. Heuristic results are open
// paths whose Distance sums the weights of the edges walked; a backtrack
// appends its target node to Path again and costs nothing.
type Result struct {
	Strategy   Strategy
	Path       []core.NodeID
	Distance   float64
	Closed     bool
	Complete   bool
	Backtracks []Backtrack
}

// Options configures Solve.
type Options struct {
	Strategy   Strategy
	ExactLimit int
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns StrategyAuto with DefaultExactLimit.
func DefaultOptions() Options {
	return Options{Strategy: StrategyAuto, ExactLimit: DefaultExactLimit}
}

// WithStrategy forces a strategy. An unknown value fails in Solve.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithExactLimit sets the StrategyAuto threshold. Negative values disable
// exact search under StrategyAuto.
func WithExactLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.ExactLimit = n
	}
}
