// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing Order, Depth and Parent.
//   - PathTo rebuilds the fewest-hops path to any reached node.
//   - Undirected() ignores the direction of arcs for this search only.
//   - WithContext(ctx) stops the search once ctx is done.
//
// Why
//
//   - Reachability and connected components in O(V + E).
//   - The route-inspection solver uses Unreached(g, s, Undirected()) as its
//     connectivity precheck on directed sketches.
//   - `graphsketch render --overlay hops` draws PathTo between two nodes.
//
// Determinism
//
//	Neighbors are enqueued in core edge order (incident order for the
//	undirected view of a directed sketch), so the visit sequence is fully
//	reproducible for a given sketch.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 1, bfs.Undirected(), bfs.WithContext(ctx))
//	hops, err := res.PathTo(4)
//	missing, err := bfs.Unreached(g, 1, bfs.Undirected())
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartNodeNotFound    if the start node does not exist.
//   - ctx.Err() when the context is done.
package bfs
