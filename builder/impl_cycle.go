// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsketch/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for C_n: arcs i→i+1 and n-1→0, nodes on a circle.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(d *draft) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids := circle(d, n)
		for i := 0; i < n; i++ {
			d.addArc(ids[i], ids[(i+1)%n])
		}
		return nil
	}
}

// circle places n nodes on a circle of radius cfg.spacing.
func circle(d *draft, n int) []core.NodeID {
	ids := make([]core.NodeID, n)
	for i := range ids {
		ids[i] = d.addNode(onCircle(i, n, d.cfg.spacing))
	}
	return ids
}
