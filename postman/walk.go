// SPDX-License-Identifier: MIT

package postman

import "github.com/katalvlaran/graphsketch/core"

// multigraph indexes the augmented edge list for the walks.
// Edge indices in every list are ascending, so "first unused" means first in
// edge order.
type multigraph struct {
	edges []core.Edge
	out   map[core.NodeID][]int // From == node
	in    map[core.NodeID][]int // To == node
	inc   map[core.NodeID][]int // either endpoint, loop once
	used  []bool
}

func newMultigraph(edges []core.Edge) *multigraph {
	m := &multigraph{
		edges: edges,
		out:   make(map[core.NodeID][]int),
		in:    make(map[core.NodeID][]int),
		inc:   make(map[core.NodeID][]int),
		used:  make([]bool, len(edges)),
	}
	for i, e := range edges {
		m.out[e.From] = append(m.out[e.From], i)
		m.in[e.To] = append(m.in[e.To], i)
		m.inc[e.From] = append(m.inc[e.From], i)
		if !e.IsLoop() {
			m.inc[e.To] = append(m.inc[e.To], i)
		}
	}
	return m
}

// firstUnused advances *cur past used entries of list and returns the first
// unused edge index, or -1.
func (m *multigraph) firstUnused(list []int, cur *int) int {
	for *cur < len(list) && m.used[list[*cur]] {
		*cur++
	}
	if *cur < len(list) {
		return list[*cur]
	}
	return -1
}

// take marks edge i used and returns it oriented away from from.
func (m *multigraph) take(i int, from core.NodeID) core.Edge {
	m.used[i] = true
	e := m.edges[i]
	if e.From != from {
		e = e.Reversed()
	}
	return e
}

// walkHierholzer builds an Eulerian circuit of start's component by
// splicing sub-tours.
//
// Implementation:
//   - Stage 1: Push start. While the stack is non-empty, look at its top.
//   - Stage 2: If the top has an unused arc, consume it and push its head.
//   - Stage 3: Otherwise pop the top into the circuit with the arc that led to it.
//   - Stage 4: Reverse the popped sequence.
//
// Directed sketches follow arcs forward only; bidirectional sketches may walk
// an edge either way. Every edge is used at most once.
//
// Complexity: O(V + E).
func walkHierholzer(m *multigraph, start core.NodeID, bidirectional bool) ([]core.NodeID, []core.Edge) {
	adj := m.out
	if bidirectional {
		adj = m.inc
	}
	cursor := make(map[core.NodeID]int)

	type frame struct {
		node core.NodeID
		via  core.Edge
		root bool
	}
	stack := []frame{{node: start, root: true}}
	var (
		nodesRev []core.NodeID
		arcsRev  []core.Edge
	)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		c := cursor[top.node]
		i := m.firstUnused(adj[top.node], &c)
		cursor[top.node] = c
		if i >= 0 {
			arc := m.take(i, top.node)
			stack = append(stack, frame{node: arc.To, via: arc})
			continue
		}
		// dead end: back out
		stack = stack[:len(stack)-1]
		nodesRev = append(nodesRev, top.node)
		if !top.root {
			arcsRev = append(arcsRev, top.via)
		}
	}

	reverseNodes(nodesRev)
	for i, j := 0, len(arcsRev)-1; i < j; i, j = i+1, j-1 {
		arcsRev[i], arcsRev[j] = arcsRev[j], arcsRev[i]
	}
	return nodesRev, arcsRev
}

// walkGreedy follows, from the current node, the first unused edge leaving
// it; failing that, the first unused edge entering it, walked in reverse.
// It stops when every edge is used or the current node has no unused edge,
// so the result may be a partial walk.
//
// Complexity: O(V + E).
func walkGreedy(m *multigraph, start core.NodeID) ([]core.NodeID, []core.Edge) {
	outCur := make(map[core.NodeID]int)
	inCur := make(map[core.NodeID]int)

	nodes := []core.NodeID{start}
	arcs := make([]core.Edge, 0, len(m.edges))
	cur := start
	for len(arcs) < len(m.edges) {
		c := outCur[cur]
		i := m.firstUnused(m.out[cur], &c)
		outCur[cur] = c
		if i < 0 {
			c = inCur[cur]
			i = m.firstUnused(m.in[cur], &c)
			inCur[cur] = c
		}
		if i < 0 {
			break // stuck
		}
		arc := m.take(i, cur)
		arcs = append(arcs, arc)
		cur = arc.To
		nodes = append(nodes, cur)
	}
	return nodes, arcs
}

func reverseNodes(s []core.NodeID) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
