// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: construction and read-only catalog accessors.
// Policy:
//   - Inputs are copied; the caller may reuse its slices afterwards.
//   - Edges with an unknown endpoint are kept in the catalog but never indexed.

package core

// NewGraph builds an immutable Graph from the given nodes and edges.
//
// Implementation:
//   - Stage 1: Apply options (directionality).
//   - Stage 2: Copy nodes and build the ID index; a repeated ID keeps its first position.
//   - Stage 3: Copy edges and index every edge whose endpoints both resolve.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func NewGraph(nodes []Node, edges []Edge, opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:    append([]Node(nil), nodes...),
		edges:    append([]Edge(nil), edges...),
		index:    make(map[NodeID]int, len(nodes)),
		out:      make(map[NodeID][]int, len(nodes)),
		in:       make(map[NodeID][]int, len(nodes)),
		incident: make(map[NodeID][]int, len(nodes)),
		resolved: make([]bool, len(edges)),
	}
	for _, opt := range opts {
		opt(g)
	}

	for i, n := range g.nodes {
		if _, seen := g.index[n.ID]; seen {
			continue
		}
		g.index[n.ID] = i
	}

	var (
		i int
		e Edge
	)
	for i, e = range g.edges {
		if !g.HasNode(e.From) || !g.HasNode(e.To) {
			continue // lookup miss: the edge stays invisible to every view
		}
		g.resolved[i] = true
		g.out[e.From] = append(g.out[e.From], i)
		g.in[e.To] = append(g.in[e.To], i)
		g.incident[e.From] = append(g.incident[e.From], i)
		if !e.IsLoop() {
			g.incident[e.To] = append(g.incident[e.To], i)
		}
	}

	return g
}

// Bidirectional reports whether edges are traversable in both directions.
func (g *Graph) Bidirectional() bool { return g != nil && g.bidirectional }

// Nodes returns a copy of the nodes in caller order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	if g == nil {
		return nil
	}
	return append([]Node(nil), g.nodes...)
}

// NodeIDs returns the distinct node IDs in caller order. A repeated ID is
// listed at its first position only.
// Complexity: O(V).
func (g *Graph) NodeIDs() []NodeID {
	if g == nil {
		return nil
	}
	ids := make([]NodeID, 0, len(g.index))
	for i, n := range g.nodes {
		if g.index[n.ID] == i {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// Edges returns a copy of every edge in caller order, including edges whose
// endpoints do not resolve.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}
	return append([]Edge(nil), g.edges...)
}

// ResolvedEdges returns, in caller order, only the edges whose endpoints both
// reference existing nodes. These are the edges the solvers operate on.
// Complexity: O(E).
func (g *Graph) ResolvedEdges() []Edge {
	if g == nil {
		return nil
	}
	out := make([]Edge, 0, len(g.edges))
	for i, e := range g.edges {
		if g.resolved[i] {
			out = append(out, e)
		}
	}
	return out
}

// Node returns the node with the given ID.
func (g *Graph) Node(id NodeID) (Node, bool) {
	if g == nil {
		return Node{}, false
	}
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// HasNode reports whether id belongs to the sketch.
func (g *Graph) HasNode(id NodeID) bool {
	if g == nil {
		return false
	}
	_, ok := g.index[id]
	return ok
}

// Rank returns the enumeration position of id, used for tie breaking.
func (g *Graph) Rank(id NodeID) (int, bool) {
	if g == nil {
		return 0, false
	}
	i, ok := g.index[id]
	return i, ok
}

// NodeCount returns the number of nodes as supplied.
func (g *Graph) NodeCount() int {
	if g == nil {
		return 0
	}
	return len(g.nodes)
}

// EdgeCount returns the number of edges as supplied.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	return len(g.edges)
}

// TotalWeight sums the weights of the resolved edges.
// Complexity: O(E).
func (g *Graph) TotalWeight() float64 {
	var sum float64
	for _, e := range g.ResolvedEdges() {
		sum += e.Weight
	}
	return sum
}

// MaxEdgeID returns the largest edge ID, or 0 for an edgeless sketch.
// Fresh synthetic edges are numbered from MaxEdgeID()+1.
func (g *Graph) MaxEdgeID() EdgeID {
	var max EdgeID
	if g == nil {
		return max
	}
	for i, e := range g.edges {
		if i == 0 || e.ID > max {
			max = e.ID
		}
	}
	return max
}
