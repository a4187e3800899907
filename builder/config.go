// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// Defaults for builderConfig.
const (
	// DefaultSpacing is the distance between neighbouring nodes on lines and
	// grids, and the radius of circular layouts.
	DefaultSpacing = 100.0

	// DefaultRadius is the connection radius of RandomGeometric.
	DefaultRadius = 150.0

	// DefaultArea is the side of the square RandomGeometric samples from.
	DefaultArea = 500.0
)

// builderConfig holds every generator knob. It is passed by value.
type builderConfig struct {
	rng           *rand.Rand // nil unless seeded
	bidirectional bool
	weightFn      WeightFn
	spacing       float64
	radius        float64
	area          float64
	err           error // first option violation, surfaced by BuildGraph
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: EuclideanWeightFn,
		spacing:  DefaultSpacing,
		radius:   DefaultRadius,
		area:     DefaultArea,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
