package searcher

import (
	"time"

	"goban/experiments/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(c *config)

type config struct {
	rounds      int
	duration    time.Duration
	temperature float64
	cutoff      int
	rand        *rand.Rand
	metrics     metrics.Collector
}

// WithRounds runs a fixed number of search rounds per move.
func WithRounds(rounds int) Option {
	return func(c *config) {
		if rounds > 0 {
			c.rounds = rounds
		}
	}
}

// WithDuration searches until the duration elapses. The clock is checked
// between rounds. Ignored when WithRounds is also given.
func WithDuration(duration time.Duration) Option {
	return func(c *config) {
		if duration > 0 {
			c.duration = duration
		}
	}
}

// WithTemperature sets the UCT exploration constant.
func WithTemperature(temperature float64) Option {
	return func(c *config) {
		if temperature >= 0 {
			c.temperature = temperature
		}
	}
}

// WithCutoff stops rollouts after depth moves. A cut-off rollout has no winner.
func WithCutoff(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.cutoff = depth
		}
	}
}

func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

// MCTS picks moves by growing a search tree with random rollouts. A new tree
// is built for every call to FindNextMove.
type MCTS[M any, P comparable] struct {
	config
}

func NewMCTS[M any, P comparable](options ...Option) *MCTS[M, P] {
	m := &MCTS[M, P]{config{ // Default values
		temperature: DefaultTemperature,
		rand:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:     metrics.NewDummyCollector(),
	}}
	for _, option := range options {
		option(&m.config)
	}
	if m.rounds <= 0 && m.duration <= 0 {
		panic("Must specify search rounds or duration")
	}
	return m
}

// FindNextMove searches from state and returns the root child with the best
// win rate for the player to move. state must not be a finished game.
func (m *MCTS[M, P]) FindNextMove(state State[M, P]) (M, metrics.SearchMetric) {
	if state.IsOver() {
		panic("cannot search a finished game")
	}
	root := newNode[M, P](state, nil, *new(M))

	m.metrics.Start(m.temperature, m.cutoff)
	if m.rounds > 0 {
		for i := 0; i < m.rounds; i++ {
			m.simulate(root)
		}
	} else {
		// At least one round, so the root always has a child to return.
		start := time.Now()
		for round := 0; round == 0 || time.Since(start) < m.duration; round++ {
			m.simulate(root)
		}
	}
	metric := m.metrics.Complete()

	best := root.bestChild()
	log.Debug().
		Int("rounds", root.rollouts).
		Int("children", len(root.children)).
		Int("best_rollouts", best.rollouts).
		Dur("duration", metric.Duration).
		Msg("search complete")
	return best.move, metric
}

// simulate runs one round: selection, expansion, rollout and backup.
func (m *MCTS[M, P]) simulate(root *node[M, P]) {
	node := selectThenExpand(root, m.temperature, m.rand)
	winner, ok := m.rollout(node.state)
	backup(node, winner, ok)
	m.metrics.AddRound()
}

func selectThenExpand[M any, P comparable](root *node[M, P], temperature float64, r *rand.Rand) *node[M, P] {
	node := root
	for !node.canAddChild() && !node.isTerminal() {
		node = node.selectChild(temperature)
	}
	if node.canAddChild() {
		node = node.addRandomChild(r)
	}
	return node
}

func (m *MCTS[M, P]) rollout(state State[M, P]) (P, bool) {
	depth := 0
	// Rollout till game over or for cutoff number of moves
	for !state.IsOver() {
		if m.cutoff > 0 && depth >= m.cutoff {
			m.metrics.AddCutoffPlayout()
			m.metrics.AddNoWinner()
			return *new(P), false
		}
		moves := state.LegalMoves()
		if len(moves) == 0 {
			panic("unfinished game has no legal moves")
		}
		state = state.Play(moves[m.rand.Intn(len(moves))]) // Random rollout policy
		depth++
	}

	m.metrics.AddFullPlayout()
	winner, ok := state.Winner()
	if !ok {
		m.metrics.AddNoWinner()
	}
	return winner, ok
}

func backup[M any, P comparable](leaf *node[M, P], winner P, hasWinner bool) {
	for node := leaf; node != nil; node = node.parent {
		node.recordOutcome(winner, hasWinner)
	}
}
