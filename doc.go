// Package graphsketch solves routing problems on small weighted sketches:
// nodes placed on a plane and joined by weighted arcs, either directed or
// walkable both ways.
//
// What is in the box?
//
//	core/       the immutable sketch model: Node, Edge, Graph, Validate
//	bfs/        reachability and connectivity checks used by the solvers
//	dijkstra/   single-source shortest paths with deterministic tie breaking
//	matrix/     adjacency and Euclidean matrices, Floyd–Warshall closure
//	postman/    route inspection (Chinese postman): closed walk over every edge
//	tour/       travelling-salesman tour, exact for small sketches, greedy beyond
//	builder/    deterministic generators: complete, cycle, path, star, grid, random
//	graphio/    CSV, JSON, DOT and SVG codecs
//
// Every solver reads a *core.Graph and never mutates it. Ties are broken by
// the order nodes and edges were supplied, so repeated runs on the same input
// always agree.
//
// The graphsketch binary (cmd/graphsketch) wraps the solvers in a CLI and an
// HTTP API configured from a TOML file and GRAPHSKETCH_* environment
// variables.
//
// Quick ASCII example:
//
//	1───2
//	│ ╲ │
//	4───3
//
// A closed walk covering those five edges repeats the cheapest path between
// the two odd-degree corners 1 and 3.
//
//	go install github.com/katalvlaran/graphsketch/cmd/graphsketch@latest
package graphsketch
