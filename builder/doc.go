// Package builder generates deterministic graph sketches for fixtures, demos
// and the CLI `generate` command.
//
// Every generator places its nodes on the plane, so the Euclidean tour and the
// renderer have real coordinates to work with, and weighs every edge with a
// WeightFn (default: Euclidean length rounded to two decimals).
//
// Composition:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithBidirectional(true)},
//	    builder.Cycle(5),
//	    builder.Grid(2, 3),
//	)
//
// Constructors run in order against one draft. Node and edge IDs continue
// from the previous constructor (both start at 1), and each shape is shifted
// right of the shapes already placed, so composed shapes never overlap.
//
// Generators:
//
//	Complete(n)            K_n on a circle, n ≥ 1
//	Cycle(n)               C_n on a circle, n ≥ 3
//	Path(n)                P_n on a horizontal line, n ≥ 2
//	Star(n)                one hub at the centre plus n-1 leaves, n ≥ 2
//	Grid(rows, cols)       4-neighbourhood lattice, rows, cols ≥ 1
//	RandomGeometric(n)     n random points joined when closer than the radius
//
// Direction:
//
//	With WithBidirectional(true) each edge is emitted once. In directed mode
//	(the default) Complete, Grid and RandomGeometric also emit the reverse arc
//	so the neighbourhood stays symmetric; Cycle, Path and Star emit forward
//	arcs only, which keeps a directed Cycle Eulerian.
//
// Determinism:
//
//	Same options, seed and constructor order give an identical sketch.
//	RandomGeometric requires WithSeed or WithRand and fails with
//	ErrNeedRandSource otherwise.
package builder
