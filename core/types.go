// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors reported by Validate. The graph model itself never fails;
// these only surface when a caller asks for strict checking.
var (
	// ErrDanglingEdge indicates an edge endpoint that references no node.
	ErrDanglingEdge = errors.New("core: edge endpoint references unknown node")

	// ErrDuplicateNode indicates two nodes sharing one ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrDuplicateEdge indicates two edges sharing one ID.
	ErrDuplicateEdge = errors.New("core: duplicate edge ID")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrInvalidWeight indicates a NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("core: edge weight is not finite")

	// ErrInvalidCoordinate indicates a NaN or infinite node coordinate.
	ErrInvalidCoordinate = errors.New("core: node coordinate is not finite")
)

// NodeID identifies a node within a sketch. IDs need not be contiguous.
type NodeID int64

// EdgeID identifies an edge within a sketch.
type EdgeID int64

// Node is a point of the sketch.
type Node struct {
	// ID is unique and stable across a session.
	ID NodeID `json:"id"`

	// X and Y position the node on the plane.
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Edge is a weighted arc From→To.
//
// Whether it may also be walked To→From is decided by the owning Graph,
// not by the edge.
type Edge struct {
	ID     EdgeID  `json:"id"`
	From   NodeID  `json:"from"`
	To     NodeID  `json:"to"`
	Weight float64 `json:"weight"`
}

// Reversed returns the same edge walked To→From. ID and weight are kept so
// that callers can still attribute the traversal to the original edge.
func (e Edge) Reversed() Edge {
	return Edge{ID: e.ID, From: e.To, To: e.From, Weight: e.Weight}
}

// IsLoop reports whether the edge starts and ends at the same node.
func (e Edge) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint opposite to id, and false when id is not an
// endpoint of e.
func (e Edge) Other(id NodeID) (NodeID, bool) {
	switch id {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	default:
		return 0, false
	}
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithBidirectional sets whether every edge is traversable in both
// directions at the same weight. Default: false (directed).
func WithBidirectional(bidirectional bool) GraphOption {
	return func(g *Graph) { g.bidirectional = bidirectional }
}

// Graph is an immutable sketch: nodes, edges and the directionality mode.
//
// Storage:
//   - nodes/edges keep caller order (the tie-breaking order for every solver).
//   - index maps NodeID → position in nodes (first occurrence wins).
//   - out/in hold indices into edges for arcs whose endpoints both resolve.
//   - incident holds, per node, the ascending indices of every resolved edge
//     touching it (a self-loop appears once).
type Graph struct {
	bidirectional bool

	nodes []Node
	edges []Edge

	index    map[NodeID]int
	out      map[NodeID][]int
	in       map[NodeID][]int
	incident map[NodeID][]int
	resolved []bool
}
