// SPDX-License-Identifier: MIT

package graphio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/graphsketch/core"
	"github.com/katalvlaran/graphsketch/dijkstra"
	"github.com/katalvlaran/graphsketch/matrix"
	"github.com/katalvlaran/graphsketch/postman"
	"github.com/katalvlaran/graphsketch/tour"
)

// Distance is a float64 that encodes +Inf (and NaN) as JSON null.
type Distance float64

// MarshalJSON implements json.Marshaler.
func (d Distance) MarshalJSON() ([]byte, error) {
	f := float64(d)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON implements json.Unmarshaler; null decodes to +Inf.
func (d *Distance) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = Distance(math.Inf(1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*d = Distance(f)
	return nil
}

// GraphDoc is the JSON form of a sketch.
type GraphDoc struct {
	Nodes         []core.Node `json:"nodes"`
	Edges         []core.Edge `json:"edges"`
	Bidirectional bool        `json:"bidirectional"`
}

// NewGraphDoc captures g, dangling edges included.
func NewGraphDoc(g *core.Graph) GraphDoc {
	doc := GraphDoc{Nodes: g.Nodes(), Edges: g.Edges(), Bidirectional: g.Bidirectional()}
	if doc.Nodes == nil {
		doc.Nodes = []core.Node{}
	}
	if doc.Edges == nil {
		doc.Edges = []core.Edge{}
	}
	return doc
}

// Graph builds the sketch described by d.
func (d GraphDoc) Graph() *core.Graph {
	return core.NewGraph(d.Nodes, d.Edges, core.WithBidirectional(d.Bidirectional))
}

// DecodeGraph reads one GraphDoc from r.
func DecodeGraph(r io.Reader) (GraphDoc, error) {
	var doc GraphDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return GraphDoc{}, fmt.Errorf("DecodeGraph: %w", err)
	}
	return doc, nil
}

// EncodeJSON writes v as indented JSON followed by a newline.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("EncodeJSON: %w", err)
	}
	return nil
}

// PathEntry is one node of a shortest-path answer.
type PathEntry struct {
	Node        core.NodeID   `json:"node"`
	Distance    Distance      `json:"distance"`
	Predecessor *core.NodeID  `json:"predecessor"`
	Path        []core.NodeID `json:"path"`
	Reachable   bool          `json:"reachable"`
}

// ShortestPathsDoc is the JSON form of a dijkstra.Result.
type ShortestPathsDoc struct {
	Source  core.NodeID   `json:"source"`
	Entries []PathEntry   `json:"entries"`
	Order   []core.NodeID `json:"settleOrder"`
}

// NewShortestPathsDoc lists one entry per node of g in caller order.
// Unreachable nodes carry a null distance, no predecessor and an empty path.
func NewShortestPathsDoc(g *core.Graph, r *dijkstra.Result) ShortestPathsDoc {
	doc := ShortestPathsDoc{Source: r.Source, Entries: []PathEntry{}, Order: r.Order}
	if doc.Order == nil {
		doc.Order = []core.NodeID{}
	}
	for _, id := range g.NodeIDs() {
		e := PathEntry{Node: id, Distance: Distance(r.Distances[id]), Path: []core.NodeID{}}
		if p, ok := r.Predecessor(id); ok {
			e.Predecessor = &p
		}
		if path, ok := r.PathTo(id); ok {
			e.Path, e.Reachable = path, true
		}
		doc.Entries = append(doc.Entries, e)
	}
	return doc
}

// RouteDoc is the JSON form of a postman.Result.
type RouteDoc struct {
	Circuit      []core.NodeID `json:"circuit"`
	Traversed    []core.EdgeID `json:"traversed"`
	Deadheads    []core.Edge   `json:"deadheads"`
	Unbalanced   []core.NodeID `json:"unbalanced"`
	Start        core.NodeID   `json:"start"`
	TotalCost    float64       `json:"totalCost"`
	WastedCost   float64       `json:"wastedCost"`
	OriginalCost float64       `json:"originalCost"`
	Complete     bool          `json:"complete"`
	Closed       bool          `json:"closed"`
}

// NewRouteDoc converts r; nil slices become empty arrays.
func NewRouteDoc(r *postman.Result) RouteDoc {
	return RouteDoc{
		Circuit:      orEmpty(r.Circuit),
		Traversed:    orEmpty(r.Traversed),
		Deadheads:    orEmpty(r.Deadheads),
		Unbalanced:   orEmpty(r.Unbalanced),
		Start:        r.Start,
		TotalCost:    r.TotalCost,
		WastedCost:   r.WastedCost,
		OriginalCost: r.OriginalCost,
		Complete:     r.Complete,
		Closed:       r.Closed(),
	}
}

// BacktrackDoc is one tour backtrack.
type BacktrackDoc struct {
	From  core.NodeID `json:"from"`
	To    core.NodeID `json:"to"`
	Index int         `json:"index"`
}

// TourDoc is the JSON form of a tour.Result.
type TourDoc struct {
	Strategy   string         `json:"strategy"`
	Path       []core.NodeID  `json:"path"`
	Distance   float64        `json:"distance"`
	Closed     bool           `json:"closed"`
	Complete   bool           `json:"complete"`
	Backtracks []BacktrackDoc `json:"backtracks"`
}

// NewTourDoc converts r.
func NewTourDoc(r *tour.Result) TourDoc {
	doc := TourDoc{
		Strategy:   string(r.Strategy),
		Path:       orEmpty(r.Path),
		Distance:   r.Distance,
		Closed:     r.Closed,
		Complete:   r.Complete,
		Backtracks: []BacktrackDoc{},
	}
	for _, b := range r.Backtracks {
		doc.Backtracks = append(doc.Backtracks, BacktrackDoc{From: b.From, To: b.To, Index: b.Index})
	}
	return doc
}

// MatrixDoc is the JSON form of a node-indexed matrix.
type MatrixDoc struct {
	Nodes []core.NodeID `json:"nodes"`
	Rows  [][]Distance  `json:"rows"`
}

// NewMatrixDoc pairs m with its row labels; +Inf cells become null.
func NewMatrixDoc(m *matrix.Dense, ids []core.NodeID) MatrixDoc {
	doc := MatrixDoc{Nodes: orEmpty(ids), Rows: [][]Distance{}}
	for _, row := range m.ToSlices() {
		out := make([]Distance, len(row))
		for j, v := range row {
			out[j] = Distance(v)
		}
		doc.Rows = append(doc.Rows, out)
	}
	return doc
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
