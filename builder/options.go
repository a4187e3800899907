// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customises a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithSeed attaches a rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an existing generator. A nil r leaves the config unseeded.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) { c.rng = r }
}

// WithBidirectional marks the resulting sketch bidirectional.
func WithBidirectional(bidirectional bool) BuilderOption {
	return func(c *builderConfig) { c.bidirectional = bidirectional }
}

// WithWeightFn replaces the edge weight policy. nil restores EuclideanWeightFn.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			fn = EuclideanWeightFn
		}
		c.weightFn = fn
	}
}

// WithConstantWeight gives every edge weight w.
func WithConstantWeight(w float64) BuilderOption {
	return func(c *builderConfig) {
		if !validLength(w, true) {
			c.violate(fmt.Errorf("WithConstantWeight(%g): %w", w, ErrOptionViolation))
			return
		}
		c.weightFn = ConstantWeightFn(w)
	}
}

// WithUniformWeight draws weights from U[min, max) using the configured RNG.
func WithUniformWeight(min, max float64) BuilderOption {
	return func(c *builderConfig) {
		if !validLength(min, true) || !validLength(max, true) || max < min {
			c.violate(fmt.Errorf("WithUniformWeight(%g, %g): %w", min, max, ErrOptionViolation))
			return
		}
		c.weightFn = UniformWeightFn(min, max)
	}
}

// WithRadius sets the RandomGeometric connection radius (> 0).
func WithRadius(r float64) BuilderOption {
	return func(c *builderConfig) {
		if !validLength(r, false) {
			c.violate(fmt.Errorf("WithRadius(%g): %w", r, ErrOptionViolation))
			return
		}
		c.radius = r
	}
}

// WithSpacing sets the layout unit (> 0).
func WithSpacing(s float64) BuilderOption {
	return func(c *builderConfig) {
		if !validLength(s, false) {
			c.violate(fmt.Errorf("WithSpacing(%g): %w", s, ErrOptionViolation))
			return
		}
		c.spacing = s
	}
}

// WithArea sets the side of the RandomGeometric sampling square (> 0).
func WithArea(side float64) BuilderOption {
	return func(c *builderConfig) {
		if !validLength(side, false) {
			c.violate(fmt.Errorf("WithArea(%g): %w", side, ErrOptionViolation))
			return
		}
		c.area = side
	}
}

// violate keeps the first option error.
func (c *builderConfig) violate(err error) {
	if c.err == nil {
		c.err = err
	}
}

func validLength(v float64, zeroOK bool) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return false
	}
	return zeroOK || v > 0
}
