// SPDX-License-Identifier: MIT

package builder

import "math"

// onCircle returns position i of n evenly spaced on a circle of radius r
// whose left edge touches x = 0. Index 0 sits at the rightmost point.
func onCircle(i, n int, r float64) (x, y float64) {
	theta := 2 * math.Pi * float64(i) / float64(n)
	return round2(r + r*math.Cos(theta)), round2(r + r*math.Sin(theta))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
