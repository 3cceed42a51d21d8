// Package carve turns an initialized [maze.Grid] into a perfect maze using
// randomized depth-first search.
//
// The carver keeps a stack of junction cells. The top of the stack is the
// current cell. Each step either opens the wall to a random unvisited
// junction two cells away and pushes it, or, at a dead end, pops the current
// cell to backtrack. Carving finishes when the stack is empty, at which point
// every junction reachable from the start has been connected exactly once.
//
// Randomness comes only from the *rand.Rand handed in, so a fixed seed always
// produces the same maze:
//
//	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
//	g := carve.DepthFirst(maze.New(31, 21), rng)
package carve

import (
	"math/rand/v2"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// steps are the distance-2 offsets tried from each junction: west, east, north, south.
var steps = [4]maze.Coordinate{{X: -2, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: -2}, {X: 0, Y: 2}}

// DepthFirst initializes g, carves it completely starting at g.Start() and
// returns the same grid.
func DepthFirst(g *maze.Grid, rng *rand.Rand) *maze.Grid {
	New(g, rng).Run()
	return g
}

// Carver performs randomized depth-first search one step at a time.
type Carver struct {
	grid   *maze.Grid
	rng    *rand.Rand
	stack  []maze.Coordinate
	carved int
}

// New initializes g and returns a carver positioned at g.Start().
func New(g *maze.Grid, rng *rand.Rand) *Carver {
	g.Init()
	return &Carver{
		grid:  g,
		rng:   rng,
		stack: []maze.Coordinate{g.Start()},
	}
}

// Step advances the search by one carve or one backtrack and reports whether
// more work remains.
func (c *Carver) Step() bool {
	if c.Done() {
		return false
	}
	cur := c.Current()
	if next, ok := c.unvisitedNeighbor(cur); ok {
		c.grid.Connect(cur, next)
		c.stack = append(c.stack, next)
		c.carved++
	} else {
		c.pop()
	}
	return !c.Done()
}

// Run steps until the stack is exhausted.
func (c *Carver) Run() {
	for c.Step() {
	}
}

// Done reports whether carving has finished.
func (c *Carver) Done() bool { return len(c.stack) == 0 }

// Current returns the cell at the top of the stack. It is only meaningful
// while Done is false.
func (c *Carver) Current() maze.Coordinate {
	if c.Done() {
		return maze.Coordinate{}
	}
	return c.stack[len(c.stack)-1]
}

// Depth returns the current stack depth.
func (c *Carver) Depth() int { return len(c.stack) }

// Carved returns the number of walls opened so far.
func (c *Carver) Carved() int { return c.carved }

// Grid returns the grid being carved.
func (c *Carver) Grid() *maze.Grid { return c.grid }

func (c *Carver) pop() {
	if len(c.stack) == 0 {
		panic("carve: backtrack stack underflow")
	}
	c.stack = c.stack[:len(c.stack)-1]
}

// unvisitedNeighbor picks one unvisited junction two cells from cell,
// uniformly at random. No random number is drawn when there is none.
func (c *Carver) unvisitedNeighbor(cell maze.Coordinate) (maze.Coordinate, bool) {
	candidates := unvisitedNeighbors(c.grid, cell)
	if len(candidates) == 0 {
		return maze.Coordinate{}, false
	}
	return candidates[c.rng.IntN(len(candidates))], true
}

func unvisitedNeighbors(g *maze.Grid, cell maze.Coordinate) []maze.Coordinate {
	var out []maze.Coordinate
	for _, s := range steps {
		n := maze.Coordinate{X: cell.X + s.X, Y: cell.Y + s.Y}
		if g.IsInside(n.X, n.Y) && !g.IsVisited(n) {
			out = append(out, n)
		}
	}
	return out
}
