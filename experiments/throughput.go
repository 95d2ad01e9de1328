package experiments

import (
	"time"

	"goban/experiments/metrics"
)

var DefaultThroughputDurations = []time.Duration{
	time.Millisecond,
	2 * time.Millisecond,
	5 * time.Millisecond,
	10 * time.Millisecond,
}

// ThroughputMatchUps gives every duration its own search agent and lets each
// agent play itself, so both sides search with the same budget. The rounds
// in the move records then show how many rounds fit in each budget.
func ThroughputMatchUps(durations []time.Duration, temperature float64, cutoff int) ([]metrics.AgentConfig, [][]metrics.AgentConfig) {
	configs := make([]metrics.AgentConfig, 0, len(durations))
	matchUps := make([][]metrics.AgentConfig, 0, len(durations))
	for i, duration := range durations {
		config := metrics.AgentConfig{
			ID:          i + 1,
			Kind:        "mcts",
			Duration:    duration,
			Temperature: temperature,
			Cutoff:      cutoff,
		}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}
	return configs, matchUps
}
