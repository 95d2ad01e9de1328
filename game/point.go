package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Columns are labelled without the letter I.
const columnLabels = "ABCDEFGHJKLMNOPQRST"

var (
	ErrInvalidPoint = errors.New("invalid point")
	ErrOffGrid      = errors.New("point is off the grid")
)

// Point is a 1-based board coordinate.
type Point struct {
	Row int
	Col int
}

// Neighbors returns the four orthogonal neighbors. Some may be off the grid.
func (p Point) Neighbors() [4]Point {
	return [4]Point{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}
}

// corners returns the four diagonal neighbors.
func (p Point) corners() [4]Point {
	return [4]Point{
		{Row: p.Row - 1, Col: p.Col - 1},
		{Row: p.Row - 1, Col: p.Col + 1},
		{Row: p.Row + 1, Col: p.Col - 1},
		{Row: p.Row + 1, Col: p.Col + 1},
	}
}

func (p Point) String() string {
	if p.Col < 1 || p.Col > len(columnLabels) {
		return "(" + strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col) + ")"
	}
	return string(columnLabels[p.Col-1]) + strconv.Itoa(p.Row)
}

// ParsePoint parses coordinates such as "C3" or "q16".
func ParsePoint(coords string) (Point, error) {
	coords = strings.ToUpper(strings.TrimSpace(coords))
	if len(coords) < 2 {
		return Point{}, errors.Wrapf(ErrInvalidPoint, "%q", coords)
	}
	col := strings.IndexByte(columnLabels, coords[0])
	if col < 0 {
		return Point{}, errors.Wrapf(ErrInvalidPoint, "unknown column in %q", coords)
	}
	row, err := strconv.Atoi(coords[1:])
	if err != nil {
		return Point{}, errors.Wrapf(ErrInvalidPoint, "row of %q: %v", coords, err)
	}
	if row < 1 {
		return Point{}, errors.Wrapf(ErrInvalidPoint, "row of %q must be positive", coords)
	}
	return Point{Row: row, Col: col + 1}, nil
}
