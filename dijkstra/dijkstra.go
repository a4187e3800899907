// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/graphsketch/core"
)

// ShortestPaths computes distances, predecessors and paths from source to
// every node of g.
//
// Steps:
//  1. dist[source] = 0, every other node +Inf, no predecessors.
//  2. Repeatedly settle the unvisited node with the smallest distance; ties go
//     to the node enumerated first.
//  3. Relax each arc from g.OutgoingEdges towards unvisited neighbours: a strictly
//     shorter candidate replaces dist and predecessor.
//  4. Stop when every node is settled or the smallest remaining distance is +Inf.
//  5. Rebuild each path by walking predecessors back to the source.
//
// A nil or empty graph yields empty maps. A source that is not a node of g
// leaves every node at +Inf. ShortestPaths never fails and never mutates g.
//
// Complexity:
//   - Linear scan (default): Time O(V² + E), Space O(V).
//   - WithHeap: Time O((V + E) log V), Space O(V + E).
func ShortestPaths(g *core.Graph, source core.NodeID, opts ...Option) *Result {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Prepare the runner over the distinct node IDs in caller order.
	ids := g.NodeIDs()
	r := &runner{
		g:       g,
		options: cfg,
		ids:     ids,
		rank:    make(map[core.NodeID]int, len(ids)),
		dist:    make(map[core.NodeID]float64, len(ids)),
		prev:    make(map[core.NodeID]core.NodeID, len(ids)),
		visited: make(map[core.NodeID]bool, len(ids)),
		res: &Result{
			Source:       source,
			Order:        make([]core.NodeID, 0, len(ids)),
			Paths:        make(map[core.NodeID][]core.NodeID, len(ids)),
			Predecessors: nil,
		},
	}
	if cfg.UseHeap {
		r.front = &heapFrontier{}
	} else {
		r.front = &scanFrontier{r: r}
	}

	// 3) Initialize and run.
	r.init(source)
	r.process()

	// 4) Assemble the result.
	r.res.Distances = r.dist
	r.res.Predecessors = r.prev
	r.buildPaths()

	return r.res
}

// runner holds the mutable state for a single run.
type runner struct {
	g       *core.Graph
	options Options
	ids     []core.NodeID
	rank    map[core.NodeID]int
	dist    map[core.NodeID]float64
	prev    map[core.NodeID]core.NodeID
	visited map[core.NodeID]bool
	front   frontier
	res     *Result
}

// frontier selects the next node to settle.
type frontier interface {
	// push announces that id now has tentative distance d.
	push(id core.NodeID, d float64, rank int)
	// pop returns the unvisited node with minimal (distance, rank), or false
	// when no finite candidate remains.
	pop() (core.NodeID, bool)
}

// init sets dist[v] = +Inf everywhere and dist[source] = 0 when source exists.
func (r *runner) init(source core.NodeID) {
	inf := math.Inf(1)
	for i, id := range r.ids {
		r.rank[id] = i
		r.dist[id] = inf
	}
	if _, ok := r.rank[source]; ok {
		r.dist[source] = 0
		r.front.push(source, 0, r.rank[source])
	}
}

// process settles nodes until the frontier runs dry.
func (r *runner) process() {
	for {
		u, ok := r.front.pop()
		if !ok {
			return
		}
		r.visited[u] = true
		r.res.Order = append(r.res.Order, u)
		r.options.OnSettle(u, r.dist[u])
		r.relax(u)
	}
}

// relax improves neighbours of the settled node u.
func (r *runner) relax(u core.NodeID) {
	du := r.dist[u]
	for _, e := range r.g.OutgoingEdges(u) {
		v := e.To
		if r.visited[v] {
			continue
		}
		nd := du + e.Weight
		if nd < r.dist[v] {
			r.dist[v] = nd
			r.prev[v] = u
			r.options.OnRelax(u, v, nd)
			r.front.push(v, nd, r.rank[v])
		}
	}
}

// buildPaths walks predecessors for every node. Unreachable nodes get [t].
func (r *runner) buildPaths() {
	for _, id := range r.ids {
		path := []core.NodeID{id}
		for cur := id; ; {
			p, ok := r.prev[cur]
			if !ok {
				break
			}
			path = append(path, p)
			cur = p
		}
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
		r.res.Paths[id] = path
	}
}

// scanFrontier is the O(V) linear scan over nodes in enumeration order.
// It reads tentative distances straight from the runner.
type scanFrontier struct {
	r *runner
}

func (s *scanFrontier) push(core.NodeID, float64, int) {}

func (s *scanFrontier) pop() (core.NodeID, bool) {
	var (
		best  core.NodeID
		found bool
		low   = math.Inf(1)
	)
	for _, id := range s.r.ids {
		if s.r.visited[id] {
			continue
		}
		// strict < keeps the first-enumerated node on ties and rejects +Inf
		if d := s.r.dist[id]; d < low {
			low, best, found = d, id, true
		}
	}
	return best, found
}

// heapFrontier is a lazy decrease-key binary heap. Stale entries are dropped
// on pop by comparing against the live distance.
type heapFrontier struct {
	pq   nodePQ
	live map[core.NodeID]float64
	done map[core.NodeID]bool
}

func (h *heapFrontier) push(id core.NodeID, d float64, rank int) {
	if h.live == nil {
		h.live = make(map[core.NodeID]float64)
		h.done = make(map[core.NodeID]bool)
	}
	h.live[id] = d
	heap.Push(&h.pq, &nodeItem{id: id, dist: d, rank: rank})
}

func (h *heapFrontier) pop() (core.NodeID, bool) {
	for h.pq.Len() > 0 {
		item := heap.Pop(&h.pq).(*nodeItem)
		if h.done[item.id] || item.dist != h.live[item.id] {
			continue // stale
		}
		h.done[item.id] = true
		return item.id, true
	}
	return 0, false
}

// nodeItem represents a node and a tentative distance from the source.
type nodeItem struct {
	id   core.NodeID
	dist float64
	rank int
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, rank).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by enumeration rank.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].rank < pq[j].rank
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the underlying slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
