// SPDX-License-Identifier: MIT

package graphio

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/graphsketch/core"
)

// Format names a sketch encoding.
type Format string

// Supported formats. SVG is write-only.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatDOT  Format = "dot"
	FormatSVG  Format = "svg"
)

// ParseFormat maps a name such as "json" or ".csv" to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".")); f {
	case FormatCSV, FormatJSON, FormatDOT, FormatSVG:
		return f, nil
	case "gv":
		return FormatDOT, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// ReadGraph decodes a sketch in format f. CSV carries no direction, so
// bidirectional applies to it; JSON uses its own flag unless bidirectional
// is set.
func ReadGraph(r io.Reader, f Format, bidirectional bool, opts ...CSVOption) (*core.Graph, error) {
	switch f {
	case FormatCSV:
		nodes, edges, err := ReadCSV(r, opts...)
		if err != nil {
			return nil, err
		}
		return core.NewGraph(nodes, edges, core.WithBidirectional(bidirectional)), nil
	case FormatJSON:
		doc, err := DecodeGraph(r)
		if err != nil {
			return nil, err
		}
		doc.Bidirectional = doc.Bidirectional || bidirectional
		return doc.Graph(), nil
	default:
		return nil, fmt.Errorf("%w: cannot read %s", ErrUnsupportedFormat, f)
	}
}

// WriteGraph encodes g in format f. SVG rendering honours ctx.
func WriteGraph(ctx context.Context, w io.Writer, g *core.Graph, f Format, dot DOTOptions) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, g)
	case FormatJSON:
		return EncodeJSON(w, NewGraphDoc(g))
	case FormatDOT:
		_, err := io.WriteString(w, ToDOT(g, dot))
		return err
	case FormatSVG:
		svg, err := RenderSVG(ctx, ToDOT(g, dot))
		if err != nil {
			return err
		}
		_, err = w.Write(svg)
		return err
	default:
		return fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, f)
	}
}
