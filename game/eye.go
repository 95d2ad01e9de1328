package game

// IsPointAnEye reports whether an empty point is surrounded by color in a way
// that filling it would only hurt color: every on-grid neighbor is friendly,
// and either three of the four corners are friendly (interior points) or all
// on-grid corners are friendly (edge and corner points).
func IsPointAnEye(board *Board, p Point, color Player) bool {
	if board.Get(p) != NoPlayer {
		return false
	}
	for _, neighbor := range p.Neighbors() {
		if board.IsOnGrid(neighbor) && board.Get(neighbor) != color {
			return false
		}
	}

	friendlyCorners, offBoardCorners := 0, 0
	for _, corner := range p.corners() {
		if !board.IsOnGrid(corner) {
			offBoardCorners++
		} else if board.Get(corner) == color {
			friendlyCorners++
		}
	}
	if offBoardCorners > 0 {
		return offBoardCorners+friendlyCorners == 4
	}
	return friendlyCorners >= 3
}
