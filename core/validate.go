// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: opt-in strict input checking for outer surfaces.
// Policy:
//   - Solvers never call Validate; they tolerate dangling endpoints by skipping.
//   - The first violation in caller order is reported.

package core

import (
	"fmt"
	"math"
)

// Validate checks a sketch strictly and returns the first violation found.
//
// Implementation:
//   - Stage 1: Nodes: unique IDs and finite coordinates.
//   - Stage 2: Edges: unique IDs, resolvable endpoints, finite non-negative weights.
//
// Errors (wrapped, test with errors.Is):
//   - ErrDuplicateNode, ErrInvalidCoordinate
//   - ErrDuplicateEdge, ErrDanglingEdge, ErrInvalidWeight, ErrNegativeWeight
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func Validate(g *Graph) error {
	if g == nil {
		return nil
	}

	// Stage 1: nodes.
	seenNodes := make(map[NodeID]struct{}, len(g.nodes))
	for _, n := range g.nodes {
		if _, dup := seenNodes[n.ID]; dup {
			return fmt.Errorf("node %d: %w", n.ID, ErrDuplicateNode)
		}
		seenNodes[n.ID] = struct{}{}
		if !finite(n.X) || !finite(n.Y) {
			return fmt.Errorf("node %d at (%v, %v): %w", n.ID, n.X, n.Y, ErrInvalidCoordinate)
		}
	}

	// Stage 2: edges.
	seenEdges := make(map[EdgeID]struct{}, len(g.edges))
	for _, e := range g.edges {
		if _, dup := seenEdges[e.ID]; dup {
			return fmt.Errorf("edge %d: %w", e.ID, ErrDuplicateEdge)
		}
		seenEdges[e.ID] = struct{}{}
		if !g.HasNode(e.From) {
			return fmt.Errorf("edge %d from %d: %w", e.ID, e.From, ErrDanglingEdge)
		}
		if !g.HasNode(e.To) {
			return fmt.Errorf("edge %d to %d: %w", e.ID, e.To, ErrDanglingEdge)
		}
		if !finite(e.Weight) {
			return fmt.Errorf("edge %d weight %v: %w", e.ID, e.Weight, ErrInvalidWeight)
		}
		if e.Weight < 0 {
			return fmt.Errorf("edge %d weight %v: %w", e.ID, e.Weight, ErrNegativeWeight)
		}
	}

	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
