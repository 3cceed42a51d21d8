// Package pkg provides the core libraries for mazegen.
//
// # Overview
//
// Mazegen carves perfect mazes, grids in which exactly one path joins any two
// open cells, by randomized depth-first search and encodes them as images,
// text or spanning-tree diagrams.
//
// # Architecture
//
// The data flow through mazegen:
//
//	width, height, start, end, seed
//	         ↓
//	    [maze] package (grid model)
//	         ↓
//	    [maze/carve] package (depth-first carving)
//	         ↓
//	    [render] package (BMP, PNG, TXT, DOT, SVG, JSON)
//
// [pipeline] wires these stages together with defaults and validation so the
// CLI and tests behave the same way.
//
// # Quick Start
//
//	rng := rand.New(rand.NewPCG(42, 42^0xdeadbeef))
//	g := carve.DepthFirst(maze.New(31, 21), rng)
//
//	var buf bytes.Buffer
//	err := render.Encode(ctx, &buf, render.FormatPNG, g, render.Options{Scale: 8})
//
// # Main Packages
//
// [maze] - Grid of wall and path cells with odd dimensions. Junctions sit at
// even coordinates; walls between them are knocked down by [maze.Grid.Connect].
//
// [maze/carve] - Stack-based randomized depth-first search. The carver can be
// run to completion or stepped one move at a time for animation.
//
// [render] - Raster encoding with per-cell scaling and configurable palette,
// plus text, JSON and Graphviz output via [render/nodelink] and [io].
//
// [pipeline] - Generate → render orchestration with run IDs and statistics.
//
// [observability] - Optional hooks for carve and encode events.
//
// [errors] - Structured error codes shared by every package.
//
// # Testing
//
//	go test ./...
//
// [maze]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/maze
// [maze/carve]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/maze/carve
// [render]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/errors
package pkg
