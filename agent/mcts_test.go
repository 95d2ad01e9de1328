package agent

import (
	"testing"

	"goban/game"
	"goban/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestMCTSAgent(t *testing.T) {
	t.Run("returning a valid move with search metrics", func(t *testing.T) {
		bot := NewMCTSAgent(
			searcher.WithRounds(30),
			searcher.WithCutoff(20),
			searcher.WithRand(rand.New(rand.NewSource(5))),
			searcher.WithMetrics(),
		)
		state := game.NewGame(3)

		move, metric := bot.FindMove(state)

		require.True(t, state.IsValidMove(move))
		require.Equal(t, 30, metric.Rounds)
		require.Equal(t, 30, metric.FullPlayouts+metric.CutoffPlayouts)
	})

	t.Run("avoiding the suicide point", func(t *testing.T) {
		state := blackWithTwoEyes(t)
		bot := NewMCTSAgent(searcher.WithRounds(20), searcher.WithRand(rand.New(rand.NewSource(9))))

		move, _ := bot.FindMove(state)

		require.False(t, move.IsPlay(), "White has no valid play")
	})
}
