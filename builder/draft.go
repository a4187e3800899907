// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/graphsketch/core"

// draft accumulates nodes and edges across constructors.
type draft struct {
	cfg   builderConfig
	nodes []core.Node
	edges []core.Edge

	originX float64 // left edge of the shape being placed
}

// begin shifts the origin right of every node placed so far.
func (d *draft) begin() {
	if len(d.nodes) == 0 {
		d.originX = 0
		return
	}
	maxX := d.nodes[0].X
	for _, n := range d.nodes[1:] {
		if n.X > maxX {
			maxX = n.X
		}
	}
	d.originX = maxX + d.cfg.spacing
}

// addNode places a node at (originX+x, y) and returns its ID.
func (d *draft) addNode(x, y float64) core.NodeID {
	id := core.NodeID(len(d.nodes) + 1)
	d.nodes = append(d.nodes, core.Node{ID: id, X: d.originX + x, Y: y})
	return id
}

// node returns the node with the given ID; IDs are dense from 1.
func (d *draft) node(id core.NodeID) core.Node { return d.nodes[id-1] }

// addArc emits from→to weighed by cfg.weightFn.
func (d *draft) addArc(from, to core.NodeID) {
	w := d.cfg.weightFn(d.node(from), d.node(to), d.cfg.rng)
	d.edges = append(d.edges, core.Edge{ID: core.EdgeID(len(d.edges) + 1), From: from, To: to, Weight: w})
}

// addLink emits from→to and, in directed mode, the mirror arc at the same weight.
func (d *draft) addLink(from, to core.NodeID) {
	d.addArc(from, to)
	if !d.cfg.bidirectional {
		e := d.edges[len(d.edges)-1].Reversed()
		e.ID = core.EdgeID(len(d.edges) + 1)
		d.edges = append(d.edges, e)
	}
}
