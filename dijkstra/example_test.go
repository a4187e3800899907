// Package dijkstra_test provides runnable examples of ShortestPaths.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/graphsketch/core"
	"github.com/katalvlaran/graphsketch/dijkstra"
)

// ExampleShortestPaths shows distances and reconstructed paths on a small
// directed sketch.
func ExampleShortestPaths() {
	// Source graph:
	//	    (5)
	//	  3/   \4
	//	  /     \
	//	(3)──10─(4)
	//	 |       |
	//	2|       |5
	//	 |       |
	//	(1)──4──(2)
	nodes := []core.Node{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}
	edges := []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 4},
		{ID: 2, From: 1, To: 3, Weight: 2},
		{ID: 3, From: 2, To: 4, Weight: 5},
		{ID: 4, From: 3, To: 4, Weight: 10},
		{ID: 5, From: 3, To: 5, Weight: 3},
		{ID: 6, From: 5, To: 4, Weight: 4},
	}
	g := core.NewGraph(nodes, edges)

	res := dijkstra.ShortestPaths(g, 1)
	fmt.Printf("dist[4]=%g path=%v\n", res.Distances[4], res.Paths[4])
	fmt.Printf("dist[5]=%g path=%v\n", res.Distances[5], res.Paths[5])
	// Output:
	// dist[4]=9 path=[1 2 4]
	// dist[5]=5 path=[1 3 5]
}

// ExampleShortestPaths_unreachable shows the sentinel values for a node that
// cannot be reached against the arc direction.
func ExampleShortestPaths_unreachable() {
	nodes := []core.Node{{ID: 1}, {ID: 2}}
	edges := []core.Edge{{ID: 1, From: 2, To: 1, Weight: 3}}

	directed := dijkstra.ShortestPaths(core.NewGraph(nodes, edges), 1)
	fmt.Println(directed.Distances[2], directed.Paths[2], directed.Reachable(2))

	both := dijkstra.ShortestPaths(core.NewGraph(nodes, edges, core.WithBidirectional(true)), 1)
	fmt.Println(both.Distances[2], both.Paths[2], both.Reachable(2))
	// Output:
	// +Inf [2] false
	// 3 [1 2] true
}
