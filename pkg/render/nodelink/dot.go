package nodelink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// cellInches is the distance between adjacent cells in the drawing.
const cellInches = 0.2

// ToDOT converts a carved grid to Graphviz DOT source.
// Each junction is a node named "x_y"; each open wall between two junctions
// is an undirected edge.
func ToDOT(g *maze.Grid) string {
	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [shape=point, width=0.06, color=black];\n")
	buf.WriteString("  edge [penwidth=2];\n")
	buf.WriteString("\n")

	for _, c := range g.Junctions() {
		attrs := fmt.Sprintf("pos=\"%.2f,%.2f!\"", float64(c.X)*cellInches, float64(g.Height()-1-c.Y)*cellInches)
		switch c {
		case g.Start():
			attrs += ", color=red, width=0.14"
		case g.End():
			attrs += ", color=blue, width=0.14"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(c), attrs)
	}

	buf.WriteString("\n")
	for _, e := range g.Passages() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(e[0]), nodeID(e[1]))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(c maze.Coordinate) string {
	return fmt.Sprintf("%d_%d", c.X, c.Y)
}

// RenderSVG renders DOT source to SVG using Graphviz's neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

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
