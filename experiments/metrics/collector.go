package metrics

import (
	"time"
)

// SearchMetric summarizes a single move search.
type SearchMetric struct {
	Rounds          int
	Temperature     float64
	Cutoff          int
	Duration        time.Duration
	FullPlayouts    int // rollouts that reached the end of the game
	CutoffPlayouts  int // rollouts stopped at the cutoff depth
	NoWinnerOutcome int // rollouts without a winner, cut off or drawn
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	GameID         string
	StartingPlayer string
	Winner         string // "" if the game ended without a winner
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// AgentConfig describes one agent taking part in an experiment.
type AgentConfig struct {
	ID          int
	Kind        string // "mcts" or "random"
	Rounds      int
	Duration    time.Duration
	Temperature float64
	Cutoff      int
}

type Collector interface {
	Start(temperature float64, cutoff int)
	AddRound()
	AddFullPlayout()
	AddCutoffPlayout()
	AddNoWinner()
	Complete() SearchMetric
}

// Searches are single-threaded, so the collector needs no synchronization.
type collector struct {
	temperature     float64
	cutoff          int
	startTime       time.Time
	rounds          int
	fullPlayouts    int
	cutoffPlayouts  int
	noWinnerOutcome int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(temperature float64, cutoff int) {
	*m = collector{
		temperature: temperature,
		cutoff:      cutoff,
		startTime:   time.Now(),
	}
}

func (m *collector) AddRound() {
	m.rounds++
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts++
}

func (m *collector) AddCutoffPlayout() {
	m.cutoffPlayouts++
}

func (m *collector) AddNoWinner() {
	m.noWinnerOutcome++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Rounds:          m.rounds,
		Temperature:     m.temperature,
		Cutoff:          m.cutoff,
		Duration:        time.Since(m.startTime),
		FullPlayouts:    m.fullPlayouts,
		CutoffPlayouts:  m.cutoffPlayouts,
		NoWinnerOutcome: m.noWinnerOutcome,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(temperature float64, cutoff int) {}
func (m *dummyCollector) AddRound()                             {}
func (m *dummyCollector) AddFullPlayout()                       {}
func (m *dummyCollector) AddCutoffPlayout()                     {}
func (m *dummyCollector) AddNoWinner()                          {}
func (m *dummyCollector) Complete() SearchMetric                { return SearchMetric{} }
