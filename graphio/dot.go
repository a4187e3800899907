// SPDX-License-Identifier: MIT

package graphio

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/graphsketch/core"
)

// DOTOptions configures ToDOT.
type DOTOptions struct {
	// Highlight is a node sequence, typically a path, circuit or tour. Its
	// nodes are filled and the edges between consecutive entries are drawn
	// bold.
	Highlight []core.NodeID

	// Title is drawn under the sketch when non-empty.
	Title string
}

type hop struct{ from, to core.NodeID }

// ToDOT writes g as Graphviz source for the neato engine with every node
// pinned at its sketch position. Sketch Y grows downwards, so it is negated.
// Dangling edges are left out.
func ToDOT(g *core.Graph, opts DOTOptions) string {
	kind, arrow := "digraph", "->"
	if g.Bidirectional() {
		kind, arrow = "graph", "--"
	}

	onPath := make(map[core.NodeID]bool, len(opts.Highlight))
	hops := make(map[hop]bool, len(opts.Highlight))
	for i, id := range opts.Highlight {
		onPath[id] = true
		if i > 0 {
			hops[hop{opts.Highlight[i-1], id}] = true
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=b;\n", opts.Title)
	}
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := fmt.Sprintf("pos=\"%s,%s!\"", formatFloat(n.X), formatFloat(-n.Y))
		if onPath[n.ID] {
			attrs += ", fillcolor=gold"
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", n.ID, attrs)
	}

	buf.WriteString("\n")
	for _, e := range g.ResolvedEdges() {
		attrs := "label=" + strconv.Quote(formatFloat(e.Weight))
		if hops[hop{e.From, e.To}] || (g.Bidirectional() && hops[hop{e.To, e.From}]) {
			attrs += ", color=red, penwidth=3"
		}
		fmt.Fprintf(&buf, "  %d %s %d [%s];\n", e.From, arrow, e.To, attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT source to SVG with the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
