package engine

import "goban/experiments/metrics"

// MaxMoves bounds a game when no explicit limit is configured.
const MaxMoves = 10000

type Engine interface {
	// Run plays a game till it is over or the move limit is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
