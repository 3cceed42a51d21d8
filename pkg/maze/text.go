package maze

import "strings"

// Glyphs used by [Grid.String].
const (
	glyphWall  = '#'
	glyphPath  = ' '
	glyphStart = 'S'
	glyphEnd   = 'E'
)

// String renders the grid as ASCII art, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteByte(g.glyph(Coordinate{x, y}))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) glyph(c Coordinate) byte {
	switch {
	case c == g.start:
		return glyphStart
	case c == g.end:
		return glyphEnd
	case g.cells[g.index(c.X, c.Y)] == Path:
		return glyphPath
	default:
		return glyphWall
	}
}

// Stats summarizes a grid.
type Stats struct {
	Junctions int // cells with both coordinates even
	Open      int // cells in the Path state
	DeadEnds  int // junctions with exactly one open neighbor
}

// Stats counts junctions, open cells and dead ends. On a fully carved grid
// Open equals 2*Junctions-1.
func (g *Grid) Stats() Stats {
	var s Stats
	for _, st := range g.cells {
		if st == Path {
			s.Open++
		}
	}
	for _, c := range g.Junctions() {
		s.Junctions++
		if g.openNeighbors(c) == 1 {
			s.DeadEnds++
		}
	}
	return s
}

func (g *Grid) openNeighbors(c Coordinate) int {
	n := 0
	for _, d := range directions {
		x, y := c.X+d.X, c.Y+d.Y
		if g.IsInside(x, y) && g.cells[g.index(x, y)] == Path {
			n++
		}
	}
	return n
}

// Passages lists the open walls between adjacent junctions, in row-major
// order of the west or north junction, which comes first in each pair.
func (g *Grid) Passages() [][2]Coordinate {
	out := [][2]Coordinate{}
	for _, c := range g.Junctions() {
		for _, d := range [2]Coordinate{{X: 1}, {Y: 1}} {
			wall := Coordinate{c.X + d.X, c.Y + d.Y}
			next := Coordinate{c.X + 2*d.X, c.Y + 2*d.Y}
			if g.IsInside(next.X, next.Y) && g.cells[g.index(wall.X, wall.Y)] == Path {
				out = append(out, [2]Coordinate{c, next})
			}
		}
	}
	return out
}
