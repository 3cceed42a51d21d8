// Package maze provides the grid model for perfect mazes.
//
// # Overview
//
// A [Grid] is a rectangular array of cells, each either [Wall] or [Path].
// Both dimensions are always odd. Cells whose x and y are both even are
// "junction" cells; the cells between them are walls that the carver opens
// one at a time with [Grid.Connect]:
//
//	x: 0 1 2 3 4
//	   J w J w J   y=0
//	   w w w w w   y=1
//	   J w J w J   y=2
//
// After [Grid.Init] every junction is a path cell. Carving then opens exactly
// one wall per newly reached junction, which yields a spanning tree over the
// junction lattice: one path between any two junctions and no cycles.
//
// # Coordinates
//
// A [Coordinate] is an (x, y) pair where x is the column and y the row. The
// grid stores cells row-major and [Grid.RGB] emits pixels in the same order,
// so x varies fastest within each output row.
//
// Start and end markers are snapped onto junction cells when assigned: any odd
// component is decremented by one.
//
// # Rendering
//
// [Grid.RGB] produces the raw RGB buffer handed to image encoders:
//
//	g := maze.New(21, 21)
//	carve.DepthFirst(g, rng)
//	buf := g.RGB() // len(buf) == 21*21*3
//
// [Grid.String] renders the same grid as ASCII art for terminals and tests.
package maze
