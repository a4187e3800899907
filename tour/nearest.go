// SPDX-License-Identifier: MIT

package tour

import "github.com/katalvlaran/graphsketch/core"

// NearestNeighbor walks g from its first node, always taking the lightest
// edge to an unvisited node (ties go to the earlier edge).
//
// When the current node has no unvisited neighbour, the walk scans the nodes
// visited so far, most recent first, for one that still has an unvisited
// neighbour, appends it to the path and records a Backtrack. The walk stops
// when no visited node has an unvisited neighbour; the path may then miss
// nodes, which Result.Complete reports.
//
// Complexity: O(V·(V + E)) in the worst case because of backtrack scans.
func NearestNeighbor(g *core.Graph) *Result {
	ids := g.NodeIDs()
	res := &Result{Strategy: StrategyNearest, Path: []core.NodeID{}}
	if len(ids) == 0 {
		res.Complete = true
		return res
	}

	visited := make(map[core.NodeID]bool, len(ids))
	order := make([]core.NodeID, 0, len(ids)) // first-visit order

	cur := ids[0]
	visited[cur] = true
	order = append(order, cur)
	res.Path = append(res.Path, cur)

	for len(order) < len(ids) {
		if e, ok := nearest(g, cur, visited); ok {
			res.Distance += e.Weight
			cur = e.To
			visited[cur] = true
			order = append(order, cur)
			res.Path = append(res.Path, cur)
			continue
		}

		// stuck: back up to the most recent node with an open neighbour
		back, ok := core.NodeID(0), false
		for i := len(order) - 1; i >= 0 && !ok; i-- {
			if order[i] == cur {
				continue
			}
			if hasOpenNeighbor(g, order[i], visited) {
				back, ok = order[i], true
			}
		}
		if !ok {
			break
		}
		res.Path = append(res.Path, back)
		res.Backtracks = append(res.Backtracks, Backtrack{From: cur, To: back, Index: len(res.Path) - 1})
		cur = back
	}

	res.Complete = len(order) == len(ids)
	return res
}

// nearest returns the lightest arc from id to an unvisited node.
func nearest(g *core.Graph, id core.NodeID, visited map[core.NodeID]bool) (core.Edge, bool) {
	var (
		best  core.Edge
		found bool
	)
	for _, e := range g.OutgoingEdges(id) {
		if visited[e.To] {
			continue
		}
		if !found || e.Weight < best.Weight {
			best, found = e, true
		}
	}
	return best, found
}

// hasOpenNeighbor reports whether id has an unvisited neighbour.
func hasOpenNeighbor(g *core.Graph, id core.NodeID, visited map[core.NodeID]bool) bool {
	for _, n := range g.Neighbors(id) {
		if !visited[n] {
			return true
		}
	}
	return false
}
