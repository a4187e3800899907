// SPDX-License-Identifier: MIT

package tour

import (
	"fmt"

	"github.com/katalvlaran/graphsketch/core"
)

// Solve runs the configured strategy on g.
//
//   - StrategyAuto: Exact when g has at most ExactLimit nodes, else NearestNeighbor.
//   - StrategyExact: Exact regardless of size. Callers bound n themselves.
//   - StrategyNearest: NearestNeighbor.
//
// Errors: ErrUnknownStrategy.
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Strategy {
	case StrategyAuto:
		if len(g.NodeIDs()) <= cfg.ExactLimit {
			return Exact(distinctNodes(g)), nil
		}
		return NearestNeighbor(g), nil
	case StrategyExact:
		return Exact(distinctNodes(g)), nil
	case StrategyNearest:
		return NearestNeighbor(g), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
	}
}

// distinctNodes returns one node per ID in caller order.
func distinctNodes(g *core.Graph) []core.Node {
	ids := g.NodeIDs()
	out := make([]core.Node, 0, len(ids))
	for _, id := range ids {
		n, _ := g.Node(id)
		out = append(out, n)
	}
	return out
}
