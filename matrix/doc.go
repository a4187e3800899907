// Package matrix offers dense matrix views of a sketch.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set.
//   - Adjacency(g): the node-by-node weight table of a sketch, +Inf where no
//     arc exists and 0 on the diagonal.
//   - Euclidean(nodes): straight-line distances between node coordinates, the
//     metric of the exact tour search.
//   - FloydWarshall(m): the all-pairs shortest-path closure of a distance table.
//
// Matrices are best for the small sketches graphsketch targets, where O(V²)
// memory and O(V³) closure time are acceptable.
package matrix
