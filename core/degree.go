// SPDX-License-Identifier: MIT

package core

// Degree returns the number of incident edge endpoints at id: every resolved
// edge touching id counts once, a self-loop counts twice. Direction is ignored.
// Complexity: O(deg(id)) in the presence of loops, O(1) otherwise.
func (g *Graph) Degree(id NodeID) int {
	if g == nil {
		return 0
	}
	d := 0
	for _, i := range g.incident[id] {
		d++
		if g.edges[i].IsLoop() {
			d++
		}
	}
	return d
}

// OutDegree returns the number of resolved arcs with From == id.
func (g *Graph) OutDegree(id NodeID) int {
	if g == nil {
		return 0
	}
	return len(g.out[id])
}

// InDegree returns the number of resolved arcs with To == id.
func (g *Graph) InDegree(id NodeID) int {
	if g == nil {
		return 0
	}
	return len(g.in[id])
}

// Imbalance returns OutDegree(id) − InDegree(id). A directed graph admits an
// Eulerian circuit only when every node has imbalance 0.
func (g *Graph) Imbalance(id NodeID) int {
	return g.OutDegree(id) - g.InDegree(id)
}
