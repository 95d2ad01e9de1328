package engine

import (
	"io"
	"time"

	"goban/agent"
	"goban/experiments/metrics"
	"goban/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(l *Local)

// WithMaxMoves stops the game without a winner after the given number of moves.
func WithMaxMoves(maxMoves int) Option {
	return func(l *Local) {
		if maxMoves > 0 {
			l.maxMoves = maxMoves
		}
	}
}

// WithBoardOutput renders the board and every move to w.
func WithBoardOutput(w io.Writer) Option {
	return func(l *Local) {
		l.out = w
	}
}

// Local plays a game between two in-process agents.
type Local struct {
	ID       string
	State    *game.GameState
	agents   map[game.Player]agent.Agent
	maxMoves int
	out      io.Writer
}

func LocalEngine(size int, black, white agent.Agent, options ...Option) *Local {
	if black == nil || white == nil {
		panic("need an agent for each player")
	}
	l := &Local{
		ID:       uuid.NewString(),
		State:    game.NewGame(size),
		agents:   map[game.Player]agent.Agent{game.Black: black, game.White: white},
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Run executes the game loop until the game is over or the move limit is hit.
func (l *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	logger := log.With().Str("game", l.ID).Logger()
	gameMetric := metrics.GameMetric{
		GameID:         l.ID,
		StartingPlayer: l.State.NextPlayer().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	logger.Info().Int("size", l.State.Board().Rows()).Msgf("%s is starting", l.State.NextPlayer())

	step := 0
	for !l.State.IsOver() && step < l.maxMoves {
		step++
		player := l.State.NextPlayer()
		move, searchMetric := l.agents[player].FindMove(l.State)
		if !l.State.IsValidMove(move) {
			logger.Warn().Str("player", player.String()).Stringer("move", move).Msg("agent returned an invalid move, passing instead")
			move = game.Pass()
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		logger.Debug().Int("step", step).Msg(game.FormatMove(player, move))

		l.State = l.State.ApplyMove(move)
		l.render(player, move)
	}

	winner := ""
	if p, ok := l.State.Winner(); ok {
		winner = p.String()
	}
	if !l.State.IsOver() {
		logger.Warn().Int("moves", step).Msg("stopped at the move limit")
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step

	logger.Info().Int("moves", step).Str("winner", winner).Msg("game over")
	return winner, gameMetric, moveMetrics
}

func (l *Local) render(player game.Player, move game.Move) {
	if l.out == nil {
		return
	}
	if _, err := io.WriteString(l.out, "\n"+game.FormatMove(player, move)+"\n"); err != nil {
		log.Error().Err(err).Msg("failed to render move")
		return
	}
	if err := game.Render(l.out, l.State.Board()); err != nil {
		log.Error().Err(err).Msg("failed to render board")
	}
}
var _ Engine = (*Local)(nil)
