package game

// Player is one of the two colors. The zero value means no player.
type Player int

const (
	NoPlayer Player = iota
	Black
	White
)

// Other returns the opponent color.
func (p Player) Other() Player {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		panic("no opponent for an empty player")
	}
}

func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}
