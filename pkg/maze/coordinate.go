package maze

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate identifies a cell by column (X) and row (Y).
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats the coordinate in the same "(x,y)" form [ParseCoordinate] accepts.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// snap rounds each odd component down to the even value below it.
func (c Coordinate) snap() Coordinate {
	return Coordinate{X: c.X / 2 * 2, Y: c.Y / 2 * 2}
}

// ParseCoordinate parses "(x,y)" into a Coordinate.
//
// Leading and trailing parenthesis characters are stripped, the remainder is
// split on the comma and each component is parsed as a non-negative integer.
// Spaces around a component are ignored, so "(3, 4)" and "3,4" both parse.
func ParseCoordinate(s string) (Coordinate, error) {
	trimmed := strings.Trim(strings.TrimSpace(s), "()")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("expected (x,y), got %q", s)
	}

	x, err := parseComponent("x", parts[0])
	if err != nil {
		return Coordinate{}, err
	}
	y, err := parseComponent("y", parts[1])
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{X: x, Y: y}, nil
}

func parseComponent(name, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse %s component: %w", name, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("parse %s component: %d is negative", name, v)
	}
	return v, nil
}
