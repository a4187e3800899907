// Package tour solves the travelling-salesman question on a sketch with two
// interchangeable strategies behind one entry point.
//
//   - Exact: fixes the first node, tries every ordering of the rest and keeps
//     the shortest closed tour under straight-line distances between node
//     coordinates. Time O(n!), so it is meant for small n.
//   - NearestNeighbor: follows the cheapest edge to an unvisited node, backs
//     up to an earlier node when stuck, and stops when no move is left. It
//     uses edge weights, not coordinates, and returns an open path.
//
// Solve picks a strategy: StrategyAuto runs Exact when the sketch has at most
// ExactLimit nodes (default DefaultExactLimit) and NearestNeighbor otherwise.
// The result records which strategy ran and whether the path is closed, so
// the two shapes are never confused.
//
// Incomplete heuristic paths are not errors: Result.Complete reports whether
// every node was visited. An empty sketch yields an empty path of length 0.
package tour
