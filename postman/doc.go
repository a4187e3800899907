// Package postman solves route inspection on a sketch: find a walk that uses
// every edge at least once, adding the cheapest-looking deadheads where the
// degree pattern makes a plain Eulerian walk impossible.
//
// Pipeline (see Solve):
//
//	connectivity (directed only, via bfs.Undirected)
//	  → parity / imbalance analysis
//	  → dijkstra.ShortestPaths from each unbalanced node
//	  → Matcher pairs unbalanced nodes
//	  → deadheads appended with fresh IDs
//	  → Euler walk (Hierholzer or greedy)
//	  → cost accounting
//
// Strategies:
//
//   - Matching: GreedyMatcher (default) pairs the first remaining node with its
//     nearest partner. ExactMatcher solves minimum-weight perfect matching by
//     subset DP for up to MaxExactMatching nodes.
//   - Walk: WalkHierholzer (default) always uses every edge of the start's
//     component once parity holds. WalkGreedy follows unused arcs and may walk
//     an entering arc backwards; it can stop early.
//
// Results:
//
//	Result.Complete is false when the walk left edges unused (a disconnected
//	bidirectional sketch, or the greedy walk getting stuck). This is reported,
//	not raised. A directed sketch with one +1/−1 pair and no way back from the
//	−1 node is walked as an open route and Result.Closed reports false.
//	Infeasible sketches fail with *NotSolvableError, which matches
//	ErrGraphNotSolvable under errors.Is.
//
// Preconditions:
//
//	Self-loops and parallel edges are accepted but not covered by any
//	optimality claim. Negative weights are not checked here.
//
// The package performs no logging and keeps no state between calls.
package postman
