package game

// pointSet is treated as immutable once a goString holds it.
type pointSet map[Point]struct{}

func newPointSet(points ...Point) pointSet {
	s := make(pointSet, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

func (s pointSet) has(p Point) bool {
	_, ok := s[p]
	return ok
}

func (s pointSet) clone(extra int) pointSet {
	c := make(pointSet, len(s)+extra)
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}

// goString is a chain of connected stones of one color. Values are never
// modified after construction; every change produces a new goString.
type goString struct {
	color     Player
	stones    pointSet
	liberties pointSet
}

func (s *goString) withoutLiberty(p Point) *goString {
	liberties := s.liberties.clone(0)
	delete(liberties, p)
	return &goString{color: s.color, stones: s.stones, liberties: liberties}
}

func (s *goString) withLiberty(p Point) *goString {
	liberties := s.liberties.clone(1)
	liberties[p] = struct{}{}
	return &goString{color: s.color, stones: s.stones, liberties: liberties}
}

func (s *goString) mergedWith(other *goString) *goString {
	if other.color != s.color {
		panic("cannot merge strings of different colors")
	}
	stones := s.stones.clone(len(other.stones))
	for p := range other.stones {
		stones[p] = struct{}{}
	}
	liberties := make(pointSet, len(s.liberties)+len(other.liberties))
	for _, libs := range []pointSet{s.liberties, other.liberties} {
		for p := range libs {
			if !stones.has(p) {
				liberties[p] = struct{}{}
			}
		}
	}
	return &goString{color: s.color, stones: stones, liberties: liberties}
}

func (s *goString) numLiberties() int {
	return len(s.liberties)
}

// GoString is a read-only view of a group on the board.
type GoString struct {
	s *goString
}

func (g GoString) Color() Player {
	return g.s.color
}

func (g GoString) NumLiberties() int {
	return g.s.numLiberties()
}

func (g GoString) NumStones() int {
	return len(g.s.stones)
}

func (g GoString) HasStone(p Point) bool {
	return g.s.stones.has(p)
}

func (g GoString) HasLiberty(p Point) bool {
	return g.s.liberties.has(p)
}

// Liberties returns the liberties in no particular order.
func (g GoString) Liberties() []Point {
	points := make([]Point, 0, len(g.s.liberties))
	for p := range g.s.liberties {
		points = append(points, p)
	}
	return points
}
