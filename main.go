package main

import (
	"fmt"
	"os"
	"time"

	"goban/agent"
	"goban/config"
	"goban/engine"
	"goban/experiments"
	"goban/experiments/metrics"
	"goban/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}
	setupLogger(cfg.LogLevel)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Str("mode", cfg.Mode).Int("board_size", cfg.BoardSize).Uint64("seed", seed).Msg("starting")

	mcts := metrics.AgentConfig{
		ID:          1,
		Kind:        "mcts",
		Rounds:      cfg.Rounds,
		Duration:    cfg.Duration,
		Temperature: cfg.Temperature,
		Cutoff:      cfg.Cutoff,
	}
	r := rand.New(rand.NewSource(seed))

	switch cfg.Mode {
	case "selfplay":
		runSelfPlay(cfg, mcts, r)
	case "human":
		runHumanGame(cfg, mcts, r)
	case "experiment":
		configs, matchUps := experiments.StrengthMatchUps(mcts)
		if cfg.Experiment == "throughput" {
			configs, matchUps = experiments.ThroughputMatchUps(experiments.DefaultThroughputDurations, cfg.Temperature, cfg.Cutoff)
		}
		settings := experiments.Settings{
			BoardSize: cfg.BoardSize,
			Games:     cfg.Games,
			MaxMoves:  cfg.MaxMoves,
			Seed:      seed,
			OutputDir: cfg.OutputDir,
		}
		if _, err := experiments.Run(cfg.Experiment, settings, configs, matchUps); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	}
}

func setupLogger(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// runSelfPlay lets two search agents play each other.
func runSelfPlay(cfg *config.Config, mcts metrics.AgentConfig, r *rand.Rand) {
	options := []engine.Option{engine.WithMaxMoves(cfg.MaxMoves)}
	if cfg.ShowBoard {
		options = append(options, engine.WithBoardOutput(os.Stdout))
	}
	black := experiments.CreateAgent(mcts, r)
	white := experiments.CreateAgent(mcts, r)
	e := engine.LocalEngine(cfg.BoardSize, black, white, options...)
	winner, _, _ := e.Run()
	printResult(winner)
}

// runHumanGame lets a human play black against the search agent.
func runHumanGame(cfg *config.Config, mcts metrics.AgentConfig, r *rand.Rand) {
	human := agent.NewHumanAgent(os.Stdin, os.Stdout)
	bot := experiments.CreateAgent(mcts, r)
	e := engine.LocalEngine(cfg.BoardSize, human, bot,
		engine.WithMaxMoves(cfg.MaxMoves), engine.WithBoardOutput(os.Stdout))
	if err := game.Render(os.Stdout, e.State.Board()); err != nil {
		log.Fatal().Err(err).Msg("failed to render board")
	}
	winner, _, _ := e.Run()
	printResult(winner)
}

func printResult(winner string) {
	if winner == "" {
		fmt.Println("Game over without a winner")
		return
	}
	fmt.Printf("Game over! Winner: %s\n", winner)
}
