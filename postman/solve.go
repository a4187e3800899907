// SPDX-License-Identifier: MIT

package postman

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphsketch/bfs"
	"github.com/katalvlaran/graphsketch/core"
	"github.com/katalvlaran/graphsketch/dijkstra"
)

// Solve finds a walk covering every edge of g, adding deadheads where the
// degree pattern requires them.
//
// Steps:
//  1. Directed sketches only: every node must be reachable from the first
//     node when arcs are read both ways.
//  2. Parity: bidirectional sketches collect odd-degree nodes. Directed
//     sketches require every |imbalance| ≤ 1 and at most one +1/−1 pair.
//  3. Shortest paths from every unbalanced node.
//  4. Matching of unbalanced nodes. A directed deadhead runs from the −1 node
//     to the +1 node. When the −1 node cannot reach the +1 node there is no
//     deadhead: the sketch is walked as an open route from the +1 node.
//  5. Augmentation: deadheads get IDs MaxEdgeID()+1, +2, ….
//  6. Walk from the first unbalanced node (directed: the +1 node), else from
//     the tail of the first edge.
//  7. Costs over the edges actually walked.
//
// Errors: *NotSolvableError (errors.Is ErrGraphNotSolvable) from steps 1 and
// 2, and from step 4 for a bidirectional pair with no path; matcher errors such as ErrMatchingTooLarge. A walk that stops early
// is reported through Result.Complete, not as an error.
//
// Complexity: O(k·V² + E) with the default linear-scan shortest paths, where
// k is the number of unbalanced nodes, plus the matcher's cost.
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	res := &Result{
		Circuit:      []core.NodeID{},
		Traversed:    []core.EdgeID{},
		Deadheads:    []core.Edge{},
		Unbalanced:   []core.NodeID{},
		OriginalCost: g.TotalWeight(),
	}
	ids := g.NodeIDs()
	edges := g.ResolvedEdges()

	// 1) Connectivity precheck.
	if !g.Bidirectional() && len(ids) > 0 {
		missing, err := bfs.Unreached(g, ids[0], bfs.Undirected(), bfs.WithContext(cfg.Ctx))
		if err != nil {
			return nil, fmt.Errorf("postman: connectivity: %w", err)
		}
		if len(missing) > 0 {
			return nil, notSolvable("graph is not connected", missing...)
		}
	}

	// 2) Parity analysis.
	var (
		pool     []core.NodeID
		deficits []core.NodeID // directed: imbalance −1
		surplus  []core.NodeID // directed: imbalance +1
	)
	if g.Bidirectional() {
		for _, id := range ids {
			if g.Degree(id)%2 != 0 {
				pool = append(pool, id)
			}
		}
	} else {
		var excessive []core.NodeID
		for _, id := range ids {
			switch b := g.Imbalance(id); {
			case b > 1 || b < -1:
				excessive = append(excessive, id)
			case b == 1:
				surplus = append(surplus, id)
				pool = append(pool, id)
			case b == -1:
				deficits = append(deficits, id)
				pool = append(pool, id)
			}
		}
		if len(excessive) > 0 {
			return nil, notSolvable("in/out degree differs by more than one", excessive...)
		}
		if len(surplus) != len(deficits) {
			return nil, notSolvable("unequal numbers of surplus and deficit nodes", pool...)
		}
		if len(surplus) > 1 {
			return nil, notSolvable("more than one surplus/deficit pair", pool...)
		}
	}
	res.Unbalanced = append(res.Unbalanced, pool...)

	// 3) Shortest paths from every unbalanced node.
	paths := make(map[core.NodeID]*dijkstra.Result, len(pool))
	for _, u := range pool {
		paths[u] = dijkstra.ShortestPaths(g, u, cfg.PathOptions...)
	}
	dist := func(u, v core.NodeID) float64 {
		if r, ok := paths[u]; ok {
			if d, ok := r.Distances[v]; ok {
				return d
			}
		}
		return math.Inf(1)
	}

	// 4) Matching.
	var pairs []Pair
	if g.Bidirectional() {
		var err error
		if pairs, err = cfg.Matcher.Match(pool, dist); err != nil {
			return nil, err
		}
	} else if len(surplus) == 1 {
		// No way back from the deficit node: the open Eulerian route
		// surplus→deficit already covers every arc.
		if u, v := deficits[0], surplus[0]; !math.IsInf(dist(u, v), 1) {
			pairs = []Pair{{From: u, To: v, Weight: dist(u, v)}}
		}
	}
	for _, p := range pairs {
		if math.IsInf(p.Weight, 1) {
			return nil, notSolvable("no path between unbalanced nodes", p.From, p.To)
		}
	}

	// 5) Augmentation.
	next := g.MaxEdgeID() + 1
	for _, p := range pairs {
		res.Deadheads = append(res.Deadheads, core.Edge{ID: next, From: p.From, To: p.To, Weight: p.Weight})
		next++
	}
	augmented := append(append(make([]core.Edge, 0, len(edges)+len(res.Deadheads)), edges...), res.Deadheads...)
	if len(augmented) == 0 {
		res.Complete = true
		return res, nil
	}

	// 6) Walk.
	switch {
	case len(surplus) == 1:
		res.Start = surplus[0]
	case len(pool) > 0:
		res.Start = pool[0]
	default:
		res.Start = augmented[0].From
	}
	mg := newMultigraph(augmented)
	var arcs []core.Edge
	switch cfg.Walk {
	case WalkHierholzer:
		res.Circuit, arcs = walkHierholzer(mg, res.Start, g.Bidirectional())
	case WalkGreedy:
		res.Circuit, arcs = walkGreedy(mg, res.Start)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownWalk, cfg.Walk)
	}
	res.Complete = len(arcs) == len(augmented)

	// 7) Cost accounting.
	for _, a := range arcs {
		res.TotalCost += a.Weight
	}
	res.WastedCost = res.TotalCost - res.OriginalCost

	if cfg.ExpandDeadheads && len(res.Deadheads) > 0 {
		res.Circuit, res.Traversed = expand(g, arcs, res.Deadheads, paths)
	} else {
		for _, a := range arcs {
			res.Traversed = append(res.Traversed, a.ID)
		}
	}

	return res, nil
}

// expand rewrites every walked deadhead as its shortest path over real edges.
// A deadhead with no known path in the walked direction is kept as one hop.
func expand(g *core.Graph, arcs []core.Edge, deadheads []core.Edge, paths map[core.NodeID]*dijkstra.Result) ([]core.NodeID, []core.EdgeID) {
	synthetic := make(map[core.EdgeID]bool, len(deadheads))
	for _, d := range deadheads {
		synthetic[d.ID] = true
	}

	nodes := make([]core.NodeID, 0, len(arcs)+1)
	ids := make([]core.EdgeID, 0, len(arcs))
	if len(arcs) > 0 {
		nodes = append(nodes, arcs[0].From)
	}
	for _, a := range arcs {
		if !synthetic[a.ID] {
			nodes = append(nodes, a.To)
			ids = append(ids, a.ID)
			continue
		}
		hops, ok := realPath(g, paths[a.From], a.To)
		if !ok {
			nodes = append(nodes, a.To)
			ids = append(ids, a.ID)
			continue
		}
		for _, h := range hops {
			nodes = append(nodes, h.To)
			ids = append(ids, h.ID)
		}
	}
	return nodes, ids
}

// realPath lists the lightest arc for every hop of the shortest path to dst.
func realPath(g *core.Graph, r *dijkstra.Result, dst core.NodeID) ([]core.Edge, bool) {
	if r == nil {
		return nil, false
	}
	path, ok := r.PathTo(dst)
	if !ok {
		return nil, false
	}
	hops := make([]core.Edge, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		var (
			best  core.Edge
			found bool
		)
		for _, e := range g.OutgoingEdges(path[i]) {
			if e.To == path[i+1] && (!found || e.Weight < best.Weight) {
				best, found = e, true
			}
		}
		if !found {
			return nil, false
		}
		hops = append(hops, best)
	}
	return hops, true
}
