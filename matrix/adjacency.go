// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/graphsketch/core"
)

// Adjacency returns the weight table of g and the node order of its rows.
//
// Cell (i, j) holds the lightest arc ids[i]→ids[j] as seen by
// g.OutgoingEdges, so a bidirectional sketch yields a symmetric table.
// The diagonal is 0 and missing arcs are +Inf. Dangling edges are skipped.
//
// Complexity: Time O(V² + E), Space O(V²).
func Adjacency(g *core.Graph) (*Dense, []core.NodeID) {
	ids := g.NodeIDs()
	pos := make(map[core.NodeID]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	n := len(ids)
	m := newSquare(n)
	inf := math.Inf(1)
	for i := range m.data {
		m.data[i] = inf
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 0
	}

	for i, id := range ids {
		for _, e := range g.OutgoingEdges(id) {
			j := pos[e.To]
			if i == j {
				continue // self-loops never beat the zero diagonal
			}
			if e.Weight < m.data[i*n+j] {
				m.data[i*n+j] = e.Weight
			}
		}
	}

	return m, ids
}
