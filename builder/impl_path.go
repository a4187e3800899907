// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsketch/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for P_n laid out left to right, arcs i→i+1.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(d *draft) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		var prev core.NodeID
		for i := 0; i < n; i++ {
			id := d.addNode(float64(i)*d.cfg.spacing, 0)
			if i > 0 {
				d.addArc(prev, id)
			}
			prev = id
		}
		return nil
	}
}
