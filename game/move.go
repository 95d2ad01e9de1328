package game

type MoveKind int

const (
	PlayMove MoveKind = iota
	PassMove
	ResignMove
)

// Move is any action a player can take on a turn. Point is only meaningful
// for PlayMove.
type Move struct {
	Kind  MoveKind
	Point Point
}

// Play places a stone on point.
func Play(point Point) Move {
	return Move{Kind: PlayMove, Point: point}
}

func Pass() Move {
	return Move{Kind: PassMove}
}

func Resign() Move {
	return Move{Kind: ResignMove}
}

func (m Move) IsPlay() bool   { return m.Kind == PlayMove }
func (m Move) IsPass() bool   { return m.Kind == PassMove }
func (m Move) IsResign() bool { return m.Kind == ResignMove }

func (m Move) String() string {
	switch m.Kind {
	case PassMove:
		return "pass"
	case ResignMove:
		return "resign"
	default:
		return m.Point.String()
	}
}
