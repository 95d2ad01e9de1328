package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	board := NewBoard(3, 3)
	board.PlaceStone(Black, pt(1, 1))
	board.PlaceStone(White, pt(3, 2))
	var sb strings.Builder

	err := Render(&sb, board)

	require.NoError(t, err)
	require.Equal(t, ""+
		" 3  .  o  . \n"+
		" 2  .  .  . \n"+
		" 1  x  .  . \n"+
		"    A  B  C \n", sb.String())
}

func TestFormatMove(t *testing.T) {
	require.Equal(t, "black D4", FormatMove(Black, Play(pt(4, 4))))
	require.Equal(t, "white passes", FormatMove(White, Pass()))
	require.Equal(t, "black resigns", FormatMove(Black, Resign()))
}
