// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/graphsketch/core"
)

// Euclidean returns the straight-line distance between every pair of nodes,
// indexed in the given order. The result is symmetric with a zero diagonal.
//
// Complexity: Time O(n²), Space O(n²).
func Euclidean(nodes []core.Node) *Dense {
	n := len(nodes)
	m := newSquare(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Distance(nodes[i], nodes[j])
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m
}

// Distance is the Euclidean length of the segment a–b.
func Distance(a, b core.Node) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
