// SPDX-License-Identifier: MIT

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/graphsketch/core"
)

// WeightFn produces the weight of the edge from→to. rng is nil unless the
// builder was seeded; implementations must fall back to a deterministic value.
type WeightFn func(from, to core.Node, rng *rand.Rand) float64

// EuclideanWeightFn is the straight-line length between the endpoints rounded
// to two decimals. It is the default.
func EuclideanWeightFn(from, to core.Node, _ *rand.Rand) float64 {
	return math.Round(math.Hypot(to.X-from.X, to.Y-from.Y)*100) / 100
}

// ConstantWeightFn returns a WeightFn that always yields w.
func ConstantWeightFn(w float64) WeightFn {
	return func(_, _ core.Node, _ *rand.Rand) float64 { return w }
}

// UniformWeightFn returns a WeightFn sampling U[min, max) rounded to two
// decimals. Without an RNG it yields min.
func UniformWeightFn(min, max float64) WeightFn {
	return func(_, _ core.Node, rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}
		return math.Round((min+rng.Float64()*(max-min))*100) / 100
	}
}
