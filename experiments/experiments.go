package experiments

import (
	"fmt"

	"goban/agent"
	"goban/engine"
	"goban/experiments/metrics"
	"goban/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Settings shared by every game of an experiment.
type Settings struct {
	BoardSize int
	Games     int // Per match up
	MaxMoves  int
	Seed      uint64
	OutputDir string
}

// StrengthMatchUps pairs the configured MCTS agent against the random bot,
// once with each color, and against itself.
func StrengthMatchUps(mcts metrics.AgentConfig) ([]metrics.AgentConfig, [][]metrics.AgentConfig) {
	mcts.ID = 1
	mcts.Kind = "mcts"
	random := metrics.AgentConfig{ID: 0, Kind: "random"}

	configs := []metrics.AgentConfig{random, mcts}
	matchUps := [][]metrics.AgentConfig{
		{mcts, random},
		{random, mcts},
		{mcts, mcts},
	}
	return configs, matchUps
}

// Run plays every match-up the configured number of times and stores the
// agent configs, game records and move records under OutputDir/name.
func Run(name string, settings Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	r := rand.New(rand.NewSource(settings.Seed))

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between black=%+v and white=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < settings.Games; i++ {
			winner, gameMetric, moveMetrics := runGame(settings, config1, config2, r)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(settings.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(settings Settings, black, white metrics.AgentConfig, r *rand.Rand) (string, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.LocalEngine(settings.BoardSize, CreateAgent(black, r), CreateAgent(white, r), engine.WithMaxMoves(settings.MaxMoves))
	return e.Run()
}

// CreateAgent builds the agent described by config. Agents draw their seeds
// from r so a seeded experiment is reproducible.
func CreateAgent(config metrics.AgentConfig, r *rand.Rand) agent.Agent {
	agentRand := rand.New(rand.NewSource(r.Uint64()))
	if config.Kind == "random" {
		return agent.NewRandomBot(agentRand)
	}

	options := []searcher.Option{
		searcher.WithRand(agentRand),
		searcher.WithTemperature(config.Temperature),
		searcher.WithMetrics(),
	}
	if config.Rounds > 0 {
		options = append(options, searcher.WithRounds(config.Rounds))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	return agent.NewMCTSAgent(options...)
}
