package tour_test

import (
	"fmt"

	"github.com/katalvlaran/graphsketch/core"
	"github.com/katalvlaran/graphsketch/tour"
)

// ExampleSolve shows the closed exact tour on a small sketch and the open
// heuristic path on the same input.
func ExampleSolve() {
	nodes := []core.Node{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 0, Y: 3}, {ID: 3, X: 4, Y: 0}}
	edges := []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 3},
		{ID: 2, From: 2, To: 3, Weight: 5},
		{ID: 3, From: 3, To: 1, Weight: 4},
	}
	g := core.NewGraph(nodes, edges, core.WithBidirectional(true))

	exact, _ := tour.Solve(g)
	fmt.Println(exact.Strategy, exact.Path, exact.Distance, exact.Closed)

	nn, _ := tour.Solve(g, tour.WithStrategy(tour.StrategyNearest))
	fmt.Println(nn.Strategy, nn.Path, nn.Distance, nn.Complete)

	// Output:
	// exact [1 2 3] 12 true
	// nearest [1 2 3] 8 true
}
