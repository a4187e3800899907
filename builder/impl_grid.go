// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsketch/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols lattice with 4-neighbourhood.
//
// Nodes are added row-major; cell (r,c) sits at (c·spacing, r·spacing).
// For each cell the right link is emitted before the bottom one.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(d *draft) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 1) Nodes, row-major.
		ids := make([]core.NodeID, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ids[r*cols+c] = d.addNode(float64(c)*d.cfg.spacing, float64(r)*d.cfg.spacing)
			}
		}

		// 2) Right then bottom neighbour.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					d.addLink(u, ids[r*cols+c+1])
				}
				if r+1 < rows {
					d.addLink(u, ids[(r+1)*cols+c])
				}
			}
		}
		return nil
	}
}
