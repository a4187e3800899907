// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphsketch/core"
)

const (
	methodRandomGeometric   = "RandomGeometric"
	minRandomGeometricNodes = 1
)

// RandomGeometric returns a Constructor that scatters n points uniformly in an
// area×area square and links every pair closer than or equal to the radius.
//
// Coordinates are rounded to two decimals. Pairs are visited in lexicographic
// order. Requires an RNG (WithSeed / WithRand).
//
// Complexity: O(n²).
func RandomGeometric(n int) Constructor {
	return func(d *draft) error {
		if n < minRandomGeometricNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomGeometric, n, minRandomGeometricNodes, ErrTooFewVertices)
		}
		if d.cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGeometric, ErrNeedRandSource)
		}

		ids := make([]core.NodeID, n)
		for i := range ids {
			x := round2(d.cfg.rng.Float64() * d.cfg.area)
			y := round2(d.cfg.rng.Float64() * d.cfg.area)
			ids[i] = d.addNode(x, y)
		}

		for i := 0; i < n; i++ {
			a := d.node(ids[i])
			for j := i + 1; j < n; j++ {
				b := d.node(ids[j])
				if math.Hypot(b.X-a.X, b.Y-a.Y) <= d.cfg.radius {
					d.addLink(ids[i], ids[j])
				}
			}
		}
		return nil
	}
}
