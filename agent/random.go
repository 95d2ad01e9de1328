package agent

import (
	"time"

	"goban/experiments/metrics"
	"goban/game"

	"golang.org/x/exp/rand"
)

type randomBot struct {
	rand *rand.Rand
}

// NewRandomBot returns an agent that plays a uniformly random valid move,
// never filling one of its own eyes. It passes when no such move exists.
// A nil r seeds from the clock.
func NewRandomBot(r *rand.Rand) Agent {
	if r == nil {
		r = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return randomBot{rand: r}
}

func (b randomBot) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	board := state.Board()
	player := state.NextPlayer()

	var candidates []game.Move
	for row := 1; row <= board.Rows(); row++ {
		for col := 1; col <= board.Cols(); col++ {
			point := game.Point{Row: row, Col: col}
			move := game.Play(point)
			if state.IsValidMove(move) && !game.IsPointAnEye(board, point, player) {
				candidates = append(candidates, move)
			}
		}
	}
	if len(candidates) == 0 {
		return game.Pass(), metrics.SearchMetric{}
	}
	return candidates[b.rand.Intn(len(candidates))], metrics.SearchMetric{}
}
