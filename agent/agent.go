package agent

import (
	"goban/experiments/metrics"
	"goban/game"
)

type Agent interface {
	// FindMove returns the move to play and performance metrics (if collected) from the search
	FindMove(state *game.GameState) (game.Move, metrics.SearchMetric)
}
