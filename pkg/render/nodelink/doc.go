// Package nodelink renders a carved maze as the spanning tree it encodes.
//
// # Overview
//
// Every junction cell becomes a node pinned at its grid position and every
// opened wall becomes an edge between the two junctions it joins. The
// drawing shows the tree the depth-first carver grew, which is often easier
// to read than the raster output for large mazes.
//
// # Usage
//
//	dot := nodelink.ToDOT(g)
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools (neato -n2)
//   - Customized before rendering
//
// Node positions use the "!" suffix so the neato layout keeps them fixed.
// The start node is drawn red and the end node blue, matching the raster
// palette.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
