package bfs

import (
	"context"

	"github.com/katalvlaran/graphsketch/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[core.NodeID]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input and
// ctx.Err() on cancellation.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Validate start node
	if !g.HasNode(start) {
		return nil, ErrStartNodeNotFound
	}

	// Prepare walker
	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.NodeID]bool, n),
		res: &BFSResult{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0)
	// Main loop
	return w.res, w.loop()
}

// Unreached returns, in graph order, every node that a search from start
// does not reach. The route-inspection precheck calls it with Undirected().
func Unreached(g *core.Graph, start core.NodeID, opts ...Option) ([]core.NodeID, error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}
	var missing []core.NodeID
	for _, id := range g.NodeIDs() {
		if !res.Reached(id) {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *walker) enqueue(id core.NodeID, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it is empty or ctx is done.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		w.enqueueNeighbors(item)
	}
	return nil
}

// arcs lists the arcs leaving id under the configured view.
func (w *walker) arcs(id core.NodeID) []core.Edge {
	if !w.opts.Undirected || w.graph.Bidirectional() {
		return w.graph.OutgoingEdges(id)
	}
	// directed graph seen undirected: every incident edge, oriented away
	inc := w.graph.IncidentEdges(id)
	for i, e := range inc {
		if e.From != id {
			inc[i] = e.Reversed()
		}
	}
	return inc
}

// enqueueNeighbors enqueues each unseen neighbor one hop deeper.
func (w *walker) enqueueNeighbors(item queueItem) {
	for _, e := range w.arcs(item.id) {
		if !w.visited[e.To] {
			w.res.Parent[e.To] = item.id
			w.enqueue(e.To, item.depth+1)
		}
	}
}
