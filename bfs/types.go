package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphsketch/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start ID is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures a search.
type Option func(*BFSOptions)

// BFSOptions holds the parameters of one search.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Undirected makes every resolved edge traversable both ways for this
	// search only, whatever the graph's own directionality.
	Undirected bool
}

// DefaultOptions returns a background context and the graph's own
// directionality.
func DefaultOptions() BFSOptions {
	return BFSOptions{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Undirected treats every edge as traversable in both directions.
// The route-inspection connectivity precheck relies on this.
func Undirected() Option {
	return func(o *BFSOptions) { o.Undirected = true }
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: hop count from the start for every reached node.
//   - Parent: predecessor in the BFS tree (absent for the start).
type BFSResult struct {
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
}

// Reached reports whether id was reached by the search.
func (r *BFSResult) Reached(id core.NodeID) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the fewest-hops path from the start node to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []core.NodeID{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
