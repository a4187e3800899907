// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsketch/core"
)

// Constructor appends one shape to the draft. Constructors validate their
// parameters first and add nothing on error.
type Constructor func(d *draft) error

// BuildGraph resolves bopts and applies cons in order, then freezes the draft
// into a core.Graph.
//
// Errors:
//   - the first option violation (ErrOptionViolation);
//   - ErrConstructFailed for a nil constructor;
//   - any constructor error, wrapped as "BuildGraph: %w".
//
// Complexity: the sum of the constructors plus O(V + E) for NewGraph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.err)
	}

	d := &draft{cfg: cfg}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		d.begin()
		if err := fn(d); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return core.NewGraph(d.nodes, d.edges, core.WithBidirectional(cfg.bidirectional)), nil
}
