// Package dijkstra computes single-source shortest paths over a core.Graph
// with non-negative edge weights.
//
// Overview:
//
//   - ShortestPaths(g, source) settles nodes in increasing distance order and
//     returns distances, predecessors, full paths and the settle order.
//   - Arcs come from core.Graph.OutgoingEdges, so a bidirectional sketch is
//     searched in both directions at the same weight.
//   - Ties on distance are broken by node enumeration order. The result is a
//     pure function of its inputs.
//
// Frontier strategies:
//
//   - Linear scan (default): O(V²). Simple and fast enough for hand-drawn
//     sketches of a few dozen nodes.
//   - WithHeap(): container/heap ordered by (distance, rank) with lazy
//     decrease-key. Identical output, O((V + E) log V).
//
// Sentinel results:
//
//   - Unreachable t: Distances[t] = +Inf, no Predecessors entry, Paths[t] = [t].
//   - Source not in g: every node unreachable.
//   - nil or empty g: empty maps.
//
// ShortestPaths has no error return. Negative weights are not rejected here;
// outer surfaces run core.Validate first.
//
// Hooks:
//
//	res := dijkstra.ShortestPaths(g, 1,
//	    dijkstra.WithOnSettle(func(id core.NodeID, d float64) { log.Debug("settle", "node", id, "dist", d) }),
//	    dijkstra.WithOnRelax(func(u, v core.NodeID, d float64) { log.Debug("relax", "from", u, "to", v, "dist", d) }),
//	)
//
// Thread safety:
//
//   - The graph is only read. Concurrent runs on one *core.Graph are safe.
package dijkstra
