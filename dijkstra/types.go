// Package dijkstra defines result types and configuration options
// for single-source shortest paths over a core.Graph.
//
// Options:
//
//	– WithHeap():       select the binary-heap frontier instead of the linear scan.
//	– WithOnSettle(fn): observe every node as its distance becomes final.
//	– WithOnRelax(fn):  observe every strict distance improvement.
//
// Example usage:
//
//	res := dijkstra.ShortestPaths(g, 1)
//	if res.Reachable(7) {
//	    fmt.Println(res.Distances[7], res.Paths[7])
//	}
package dijkstra

import (
	"math"

	"github.com/katalvlaran/graphsketch/core"
)

// Result is the outcome of one ShortestPaths run.
//
// Distances holds an entry for every node of the graph; unreachable nodes
// (and every node, when Source is absent) carry +Inf. Predecessors has an
// entry only for nodes reached through an edge, so the source and
// unreachable nodes have none. Paths holds, for every node, the node
// sequence from Source to it; an unreachable node maps to the single-element
// path [t], so callers must check Distances (or Reachable) first.
// Order lists nodes in the order their distances were settled.
type Result struct {
	Source       core.NodeID
	Distances    map[core.NodeID]float64
	Predecessors map[core.NodeID]core.NodeID
	Paths        map[core.NodeID][]core.NodeID
	Order        []core.NodeID
}

// Predecessor returns the node preceding id on its shortest path.
func (r *Result) Predecessor(id core.NodeID) (core.NodeID, bool) {
	p, ok := r.Predecessors[id]
	return p, ok
}

// Reachable reports whether id has a finite distance from Source.
func (r *Result) Reachable(id core.NodeID) bool {
	d, ok := r.Distances[id]
	return ok && !math.IsInf(d, 1)
}

// PathTo returns the path Source→id, and false when id is unreachable or
// unknown. Unlike Paths, it never yields the single-element sentinel.
func (r *Result) PathTo(id core.NodeID) ([]core.NodeID, bool) {
	if !r.Reachable(id) {
		return nil, false
	}
	return append([]core.NodeID(nil), r.Paths[id]...), true
}

// Options configures the behavior of ShortestPaths.
//
// UseHeap  – use a container/heap frontier ordered by (distance, rank).
// OnSettle – called once per settled node with its final distance.
// OnRelax  – called on every strict improvement of dist[to] via from.
type Options struct {
	UseHeap  bool
	OnSettle func(id core.NodeID, dist float64)
	OnRelax  func(from, to core.NodeID, dist float64)
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithHeap selects the binary-heap frontier. Results are identical to the
// default linear scan, including tie breaking; only the cost changes from
// O(V²) to O((V + E) log V).
func WithHeap() Option {
	return func(o *Options) { o.UseHeap = true }
}

// WithOnSettle registers a settle hook. Nil is ignored.
func WithOnSettle(fn func(id core.NodeID, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a relaxation hook. Nil is ignored.
func WithOnRelax(fn func(from, to core.NodeID, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// DefaultOptions returns the linear-scan configuration with no-op hooks.
func DefaultOptions() Options {
	return Options{
		UseHeap:  false,
		OnSettle: func(core.NodeID, float64) {},
		OnRelax:  func(core.NodeID, core.NodeID, float64) {},
	}
}
