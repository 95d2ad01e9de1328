package game

// Board is a grid of stone strings with an incrementally maintained zobrist
// hash. Strings are shared between points and replaced wholesale on every
// change, so a board copy only needs its own grid.
type Board struct {
	rows int
	cols int
	grid []*goString
	hash uint64
}

// NewBoard returns an empty board. Dimensions must be in 1..MaxBoardSize.
func NewBoard(rows, cols int) *Board {
	if rows < 1 || rows > MaxBoardSize || cols < 1 || cols > MaxBoardSize {
		panic("board dimensions out of range")
	}
	return &Board{
		rows: rows,
		cols: cols,
		grid: make([]*goString, rows*cols),
		hash: EmptyBoard,
	}
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) IsOnGrid(p Point) bool {
	return 1 <= p.Row && p.Row <= b.rows && 1 <= p.Col && p.Col <= b.cols
}

func (b *Board) index(p Point) int {
	return (p.Row-1)*b.cols + p.Col - 1
}

func (b *Board) at(p Point) *goString {
	if !b.IsOnGrid(p) {
		return nil
	}
	return b.grid[b.index(p)]
}

// Get returns the color of the stone on p, or NoPlayer.
func (b *Board) Get(p Point) Player {
	s := b.at(p)
	if s == nil {
		return NoPlayer
	}
	return s.color
}

// GoString returns the string occupying p. The view stays valid after later
// placements because strings are never modified.
func (b *Board) GoString(p Point) (GoString, bool) {
	s := b.at(p)
	if s == nil {
		return GoString{}, false
	}
	return GoString{s: s}, true
}

// Liberties returns the number of liberties of the string on p, or 0 for an
// empty point.
func (b *Board) Liberties(p Point) int {
	s := b.at(p)
	if s == nil {
		return 0
	}
	return s.numLiberties()
}

// ZobristHash returns the XOR of the hash codes of all stones on the board.
func (b *Board) ZobristHash() uint64 {
	return b.hash
}

// Copy returns a board that can be modified without affecting b.
func (b *Board) Copy() *Board {
	grid := make([]*goString, len(b.grid))
	copy(grid, b.grid)
	return &Board{rows: b.rows, cols: b.cols, grid: grid, hash: b.hash}
}

// PlaceStone puts a stone of player on p and resolves captures. p must be on
// the grid and empty; callers check legality first.
func (b *Board) PlaceStone(player Player, p Point) {
	if !b.IsOnGrid(p) {
		panic("cannot place stone off the grid at " + p.String())
	}
	if b.at(p) != nil {
		panic("cannot place stone on occupied point " + p.String())
	}
	if player != Black && player != White {
		panic("cannot place stone for empty player")
	}

	var sameColor, otherColor []*goString
	liberties := make([]Point, 0, 4)
	for _, neighbor := range p.Neighbors() {
		if !b.IsOnGrid(neighbor) {
			continue
		}
		s := b.at(neighbor)
		switch {
		case s == nil:
			liberties = append(liberties, neighbor)
		case s.color == player:
			sameColor = appendUnique(sameColor, s)
		default:
			otherColor = appendUnique(otherColor, s)
		}
	}

	placed := &goString{color: player, stones: newPointSet(p), liberties: newPointSet(liberties...)}
	for _, s := range sameColor {
		placed = placed.mergedWith(s)
	}
	b.replaceString(placed)

	for _, s := range otherColor {
		reduced := s.withoutLiberty(p)
		if reduced.numLiberties() > 0 {
			b.replaceString(reduced)
		} else {
			b.removeString(s)
		}
	}

	b.hash ^= HashCode(p, player)
}

func appendUnique(list []*goString, s *goString) []*goString {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

func (b *Board) replaceString(s *goString) {
	for p := range s.stones {
		b.grid[b.index(p)] = s
	}
}

// removeString clears a captured string and hands its points back as
// liberties to every neighboring string.
func (b *Board) removeString(captured *goString) {
	for p := range captured.stones {
		for _, neighbor := range p.Neighbors() {
			s := b.at(neighbor)
			if s == nil || s == captured {
				continue
			}
			b.replaceString(s.withLiberty(p))
		}
		b.grid[b.index(p)] = nil
		b.hash ^= HashCode(p, captured.color)
	}
}
