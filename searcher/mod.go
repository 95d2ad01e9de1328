// Package searcher implements Monte-Carlo tree search over any two-or-more
// player game that exposes its rules through State.
package searcher

// State is a game position. Implementations must not change after creation:
// Play returns a new State and the receiver stays valid.
type State[M any, P comparable] interface {
	// Player returns the player to move.
	Player() P
	LegalMoves() []M
	Play(move M) State[M, P]
	IsOver() bool
	// Winner returns the winner of a finished game, or false when the game
	// ended without one.
	Winner() (P, bool)
}

// DefaultTemperature is the exploration constant used when none is given.
const DefaultTemperature = 1.5
