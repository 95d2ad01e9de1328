package game

import (
	"fmt"
	"io"
	"strings"
)

var stoneSymbols = map[Player]string{
	NoPlayer: " . ",
	Black:    " x ",
	White:    " o ",
}

// Render writes the board with the highest row on top.
func Render(w io.Writer, board *Board) error {
	var sb strings.Builder
	for row := board.Rows(); row >= 1; row-- {
		fmt.Fprintf(&sb, "%2d ", row)
		for col := 1; col <= board.Cols(); col++ {
			sb.WriteString(stoneSymbols[board.Get(Point{Row: row, Col: col})])
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for col := 1; col <= board.Cols(); col++ {
		fmt.Fprintf(&sb, " %c ", columnLabels[col-1])
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatMove describes a move made by player, e.g. "black D4".
func FormatMove(player Player, move Move) string {
	switch move.Kind {
	case PassMove:
		return player.String() + " passes"
	case ResignMove:
		return player.String() + " resigns"
	default:
		return player.String() + " " + move.Point.String()
	}
}
