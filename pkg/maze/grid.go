package maze

import (
	"fmt"
	"image/color"
)

// State is the content of a single cell.
type State uint8

const (
	// Wall cells block movement. Every cell starts as a wall.
	Wall State = iota
	// Path cells are open: junctions after Init and walls opened by Connect.
	Path
)

// Palette maps cell roles to output colors.
type Palette struct {
	Wall  color.RGBA
	Path  color.RGBA
	Start color.RGBA
	End   color.RGBA
}

// DefaultPalette renders walls black, paths white, the start red and the end blue.
var DefaultPalette = Palette{
	Wall:  color.RGBA{0, 0, 0, 255},
	Path:  color.RGBA{255, 255, 255, 255},
	Start: color.RGBA{255, 0, 0, 255},
	End:   color.RGBA{0, 0, 255, 255},
}

// Grid is a rectangular maze of width columns by height rows.
// A Grid is not safe for concurrent mutation; each generation run owns its own.
type Grid struct {
	width  int
	height int
	cells  []State // row-major: cells[y*width+x]
	start  Coordinate
	end    Coordinate
}

// New allocates a grid with every cell set to [Wall].
//
// Even dimensions are decremented by one so both are odd. Dimensions below
// one (including 0) produce a degenerate 1x1 grid. The start defaults to
// (0,0) and the end to the opposite corner.
func New(width, height int) *Grid {
	width = NormalizeDimension(width)
	height = NormalizeDimension(height)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]State, width*height),
		start:  Coordinate{0, 0},
		end:    Coordinate{width - 1, height - 1},
	}
}

// NormalizeDimension returns the size [New] uses for a requested width or height.
func NormalizeDimension(n int) int {
	if n < 1 {
		return 1
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the start junction.
func (g *Grid) Start() Coordinate { return g.start }

// End returns the end junction.
func (g *Grid) End() Coordinate { return g.end }

// SetStart moves the start marker, snapping odd components down to even.
func (g *Grid) SetStart(c Coordinate) { g.start = c.snap() }

// SetEnd moves the end marker, snapping odd components down to even.
func (g *Grid) SetEnd(c Coordinate) { g.end = c.snap() }

// Init opens every junction cell (both coordinates even).
func (g *Grid) Init() {
	for y := 0; y < g.height; y += 2 {
		for x := 0; x < g.width; x += 2 {
			g.cells[g.index(x, y)] = Path
		}
	}
}

// IsInside reports whether (x, y) lies within the grid. Negative values are
// accepted so callers can probe one step past an edge.
func (g *Grid) IsInside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the state of the cell at c. It panics if c is outside the grid.
func (g *Grid) At(c Coordinate) State {
	if !g.IsInside(c.X, c.Y) {
		panic(fmt.Sprintf("maze: %v outside %dx%d grid", c, g.width, g.height))
	}
	return g.cells[g.index(c.X, c.Y)]
}

// IsVisited reports whether any wall cell directly adjacent to c has been
// opened. A junction gains its first open wall exactly when carving reaches
// it, so this doubles as the carver's visited test.
func (g *Grid) IsVisited(c Coordinate) bool {
	for _, d := range directions {
		x, y := c.X+d.X, c.Y+d.Y
		if g.IsInside(x, y) && g.cells[g.index(x, y)] == Path {
			return true
		}
	}
	return false
}

// Connect opens the wall cell between junctions a and b.
//
// a and b must be exactly two cells apart along one axis and equal on the
// other; any other offset is a programming error and panics. Connecting a
// cell to itself does nothing.
func (g *Grid) Connect(a, b Coordinate) {
	if a == b {
		return
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case dy == 0 && (dx == 2 || dx == -2):
	case dx == 0 && (dy == 2 || dy == -2):
	default:
		panic(fmt.Sprintf("maze: cannot connect %v and %v", a, b))
	}
	x, y := a.X+dx/2, a.Y+dy/2
	if !g.IsInside(x, y) {
		panic(fmt.Sprintf("maze: wall between %v and %v outside grid", a, b))
	}
	g.cells[g.index(x, y)] = Path
}

// Junctions returns every junction cell in row-major order.
func (g *Grid) Junctions() []Coordinate {
	out := make([]Coordinate, 0, ((g.width+1)/2)*((g.height+1)/2))
	for y := 0; y < g.height; y += 2 {
		for x := 0; x < g.width; x += 2 {
			out = append(out, Coordinate{x, y})
		}
	}
	return out
}

// RGB renders the grid with [DefaultPalette].
func (g *Grid) RGB() []byte {
	return g.RGBWith(DefaultPalette)
}

// RGBWith returns width*height RGB triples, rows top to bottom and columns
// left to right. The start color wins over the end color, and both win over
// the cell state.
func (g *Grid) RGBWith(p Palette) []byte {
	buf := make([]byte, 0, g.width*g.height*3)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.colorAt(Coordinate{x, y}, p)
			buf = append(buf, c.R, c.G, c.B)
		}
	}
	return buf
}

func (g *Grid) colorAt(c Coordinate, p Palette) color.RGBA {
	switch {
	case c == g.start:
		return p.Start
	case c == g.end:
		return p.End
	case g.cells[g.index(c.X, c.Y)] == Path:
		return p.Path
	default:
		return p.Wall
	}
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// directions lists the four orthogonal unit steps: west, east, north, south.
var directions = [4]Coordinate{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
