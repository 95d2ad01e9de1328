package agent

import (
	"goban/experiments/metrics"
	"goban/game"
	"goban/searcher"
)

type mctsAgent struct {
	mcts *searcher.MCTS[game.Move, game.Player]
}

// NewMCTSAgent returns an agent that plays the move found by tree search.
func NewMCTSAgent(options ...searcher.Option) Agent {
	return mctsAgent{mcts: searcher.NewMCTS[game.Move, game.Player](options...)}
}

func (a mctsAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	return a.mcts.FindNextMove(state)
}
