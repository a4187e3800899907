// SPDX-License-Identifier: MIT

// Package core provides the read-only graph model shared by every solver in
// graphsketch: plane-positioned nodes, weighted arcs, and a graph-level
// bidirectional flag.
//
// A sketch G = (V, E, bidirectional) is handed to the solvers as a whole and is
// never mutated by them:
//
//   - Node{ID, X, Y}: IDs are unique and stable; coordinates matter only to the
//     Euclidean tour metric and to renderers.
//   - Edge{ID, From, To, Weight}: a directed arc. When the graph is
//     bidirectional every arc is also traversable To→From at the same weight.
//   - Enumeration order of Nodes() and Edges() is exactly the order supplied to
//     NewGraph. All solvers use it to break ties, which keeps their results
//     deterministic.
//
// Views:
//
//	OutgoingEdges(id)  // arcs leaving id, reverse arcs oriented when bidirectional
//	IncomingEdges(id)  // arcs entering id (directed view)
//	Degree(id)         // incident edge count, self-loop counts twice
//	InDegree / OutDegree / Imbalance
//
// Missing endpoints:
//
//	NewGraph does not reject edges that reference unknown node IDs. Such an edge
//	is kept in Edges() but is invisible to every adjacency and degree view, so
//	algorithms simply skip it. Callers that want strict input checking run
//	Validate first.
//
// Concurrency:
//
//	A *Graph is immutable after NewGraph returns. Any number of goroutines may
//	read it at the same time without synchronisation.
//
// Complexity:
//
//	NewGraph is O(V + E). Adjacency lookups are O(1) to locate plus O(deg) to
//	copy. InDegree and OutDegree are O(1); Degree is O(deg).
package core
