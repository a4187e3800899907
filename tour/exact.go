// SPDX-License-Identifier: MIT

package tour

import (
	"github.com/katalvlaran/graphsketch/core"
	"github.com/katalvlaran/graphsketch/matrix"
)

// Exact returns the shortest closed tour through nodes under Euclidean
// distance, always starting at nodes[0].
//
// Implementation:
//   - Stage 1: Distance table from matrix.Euclidean.
//   - Stage 2: Enumerate orderings of nodes[1:] in lexicographic index order.
//   - Stage 3: Keep the first ordering with strictly smaller closed length.
//
// Edges are ignored; only coordinates matter.
//
// Complexity: Time O(n!·n), Space O(n²).
func Exact(nodes []core.Node) *Result {
	n := len(nodes)
	res := &Result{Strategy: StrategyExact, Path: []core.NodeID{}, Closed: true, Complete: true}
	if n == 0 {
		return res
	}

	// 1) Distance table.
	dist := matrix.Euclidean(nodes).ToSlices()

	// 2) perm[0] stays 0; perm[1:] starts sorted and walks all orderings.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := append([]int(nil), perm...)
	bestLen := closedLength(dist, perm)
	for nextPermutation(perm[1:]) {
		// 3) strict < keeps the first minimum
		if l := closedLength(dist, perm); l < bestLen {
			bestLen = l
			copy(best, perm)
		}
	}

	res.Distance = bestLen
	for _, i := range best {
		res.Path = append(res.Path, nodes[i].ID)
	}
	return res
}

// closedLength is the length of perm plus the leg back to perm[0].
func closedLength(dist [][]float64, perm []int) float64 {
	var sum float64
	for i := 0; i+1 < len(perm); i++ {
		sum += dist[perm[i]][perm[i+1]]
	}
	return sum + dist[perm[len(perm)-1]][perm[0]]
}

// nextPermutation rearranges p into its lexicographic successor and reports
// false once p is the last ordering.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}
