// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: per-node edge views under the graph's directionality mode.
// Determinism:
//   - Every view lists edges in caller edge order.
// Policy:
//   - Unknown node → empty slice, never nil-deref, never error.

package core

// OutgoingEdges returns the arcs that can be walked away from id.
//
// Directed graphs yield edges with From == id. Bidirectional graphs also yield
// every edge with To == id, oriented so that From == id; the returned copy
// keeps the original ID and Weight. A self-loop is returned once.
//
// Complexity: O(deg(id)).
func (g *Graph) OutgoingEdges(id NodeID) []Edge {
	if g == nil {
		return nil
	}
	if !g.bidirectional {
		return g.collect(g.out[id], id)
	}
	return g.collect(g.incident[id], id)
}

// IncomingEdges returns the arcs with To == id, regardless of directionality.
// Complexity: O(indeg(id)).
func (g *Graph) IncomingEdges(id NodeID) []Edge {
	if g == nil {
		return nil
	}
	idx := g.in[id]
	res := make([]Edge, 0, len(idx))
	for _, i := range idx {
		res = append(res, g.edges[i])
	}
	return res
}

// IncidentEdges returns every resolved edge touching id as stored, without
// orientation. A self-loop is returned once.
// Complexity: O(deg(id)).
func (g *Graph) IncidentEdges(id NodeID) []Edge {
	if g == nil {
		return nil
	}
	idx := g.incident[id]
	res := make([]Edge, 0, len(idx))
	for _, i := range idx {
		res = append(res, g.edges[i])
	}
	return res
}

// Neighbors returns the distinct nodes reachable from id in one step, in the
// order their first connecting arc appears.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id NodeID) []NodeID {
	arcs := g.OutgoingEdges(id)
	seen := make(map[NodeID]struct{}, len(arcs))
	res := make([]NodeID, 0, len(arcs))
	for _, e := range arcs {
		if _, ok := seen[e.To]; ok {
			continue
		}
		seen[e.To] = struct{}{}
		res = append(res, e.To)
	}
	return res
}

// collect materializes edge indices as arcs leaving id.
func (g *Graph) collect(idx []int, id NodeID) []Edge {
	res := make([]Edge, 0, len(idx))
	for _, i := range idx {
		e := g.edges[i]
		if e.From != id {
			e = e.Reversed()
		}
		res = append(res, e)
	}
	return res
}
