// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a hub joined to n-1 leaves on a circle around
// it. The hub is added first; arcs run hub→leaf.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(d *draft) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		r := d.cfg.spacing
		hub := d.addNode(r, r)
		for i := 0; i < n-1; i++ {
			leaf := d.addNode(onCircle(i, n-1, r))
			d.addArc(hub, leaf)
		}
		return nil
	}
}
