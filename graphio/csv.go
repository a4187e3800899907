// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphsketch/core"
)

// CSV table headers.
const (
	nodeHeader = "NodeID,X,Y"
	edgeHeader = "EdgeID,FromNodeID,ToNodeID,Weight"
)

// CSVOption configures ReadCSV.
type CSVOption func(*csvOptions)

type csvOptions struct {
	strict bool
}

// Strict makes ReadCSV fail on the first row that is neither a header nor a
// well-formed record.
func Strict() CSVOption {
	return func(o *csvOptions) { o.strict = true }
}

// ReadCSV parses the two-table format written by WriteCSV.
//
// Rows before the first blank line are nodes; rows after it are edges. A row
// belongs to its table only with exactly 3 (nodes) or 4 (edges) fields that
// all parse; anything else is skipped, or reported when Strict is set.
// Directionality is not part of the format.
//
// Complexity: O(size of input).
func ReadCSV(r io.Reader, opts ...CSVOption) ([]core.Node, []core.Edge, error) {
	var o csvOptions
	for _, opt := range opts {
		opt(&o)
	}

	var (
		nodes   []core.Node
		edges   []core.Edge
		inEdges bool
		line    int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			inEdges = true
			continue
		}

		fields := splitFields(text)
		if isHeader(fields) {
			continue
		}

		var err error
		if inEdges {
			var e core.Edge
			if e, err = parseEdge(fields); err == nil {
				edges = append(edges, e)
			}
		} else {
			var n core.Node
			if n, err = parseNode(fields); err == nil {
				nodes = append(nodes, n)
			}
		}
		if err != nil && o.strict {
			return nil, nil, fmt.Errorf("line %d: %w: %v", line, ErrMalformedRow, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("ReadCSV: %w", err)
	}

	return nodes, edges, nil
}

// WriteCSV writes every node and edge of g, including edges whose endpoints
// do not resolve, in caller order.
func WriteCSV(w io.Writer, g *core.Graph) error {
	cw := csv.NewWriter(w)
	rows := [][]string{strings.Split(nodeHeader, ",")}
	for _, n := range g.Nodes() {
		rows = append(rows, []string{formatInt(int64(n.ID)), formatFloat(n.X), formatFloat(n.Y)})
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("WriteCSV: nodes: %w", err)
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("WriteCSV: separator: %w", err)
	}

	rows = [][]string{strings.Split(edgeHeader, ",")}
	for _, e := range g.Edges() {
		rows = append(rows, []string{
			formatInt(int64(e.ID)), formatInt(int64(e.From)), formatInt(int64(e.To)), formatFloat(e.Weight),
		})
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("WriteCSV: edges: %w", err)
	}
	return nil
}

func splitFields(text string) []string {
	fields := strings.Split(text, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func isHeader(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case "nodeid", "edgeid":
		return true
	}
	return false
}

func parseNode(f []string) (core.Node, error) {
	if len(f) != 3 {
		return core.Node{}, fmt.Errorf("node row has %d fields, want 3", len(f))
	}
	id, err := strconv.ParseInt(f[0], 10, 64)
	if err != nil {
		return core.Node{}, fmt.Errorf("NodeID: %w", err)
	}
	x, err := parseNumber(f[1])
	if err != nil {
		return core.Node{}, fmt.Errorf("X: %w", err)
	}
	y, err := parseNumber(f[2])
	if err != nil {
		return core.Node{}, fmt.Errorf("Y: %w", err)
	}
	return core.Node{ID: core.NodeID(id), X: x, Y: y}, nil
}

func parseEdge(f []string) (core.Edge, error) {
	if len(f) != 4 {
		return core.Edge{}, fmt.Errorf("edge row has %d fields, want 4", len(f))
	}
	var ints [3]int64
	for i, name := range []string{"EdgeID", "FromNodeID", "ToNodeID"} {
		v, err := strconv.ParseInt(f[i], 10, 64)
		if err != nil {
			return core.Edge{}, fmt.Errorf("%s: %w", name, err)
		}
		ints[i] = v
	}
	w, err := parseNumber(f[3])
	if err != nil {
		return core.Edge{}, fmt.Errorf("Weight: %w", err)
	}
	return core.Edge{ID: core.EdgeID(ints[0]), From: core.NodeID(ints[1]), To: core.NodeID(ints[2]), Weight: w}, nil
}

// parseNumber is strconv.ParseFloat without NaN.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
