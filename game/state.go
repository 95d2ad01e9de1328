package game

import "goban/searcher"

// situation is a position together with the player to move in it.
type situation struct {
	player Player
	hash   uint64
}

// GameState is an immutable snapshot of a game. New snapshots are only
// produced by ApplyMove.
type GameState struct {
	board          *Board
	nextPlayer     Player
	previous       *GameState
	lastMove       *Move
	previousStates map[situation]struct{}
}

// NewGame starts a game on an empty size x size board with black to move.
func NewGame(size int) *GameState {
	return newGameState(NewBoard(size, size), Black, nil, nil)
}

func newGameState(board *Board, next Player, previous *GameState, move *Move) *GameState {
	var history map[situation]struct{}
	if previous == nil {
		history = map[situation]struct{}{}
	} else {
		history = make(map[situation]struct{}, len(previous.previousStates)+1)
		for s := range previous.previousStates {
			history[s] = struct{}{}
		}
		history[previous.situation()] = struct{}{}
	}
	return &GameState{
		board:          board,
		nextPlayer:     next,
		previous:       previous,
		lastMove:       move,
		previousStates: history,
	}
}

func (gs *GameState) situation() situation {
	return situation{player: gs.nextPlayer, hash: gs.board.ZobristHash()}
}

// Board returns the current board. It must not be modified.
func (gs *GameState) Board() *Board {
	return gs.board
}

func (gs *GameState) NextPlayer() Player {
	return gs.nextPlayer
}

func (gs *GameState) Previous() *GameState {
	return gs.previous
}

// LastMove returns the move that produced this snapshot, if any.
func (gs *GameState) LastMove() (Move, bool) {
	if gs.lastMove == nil {
		return Move{}, false
	}
	return *gs.lastMove, true
}

// ApplyMove returns the snapshot after the next player makes move. The move
// is not validated; use IsValidMove first.
func (gs *GameState) ApplyMove(move Move) *GameState {
	next := gs.board
	if move.IsPlay() {
		next = gs.board.Copy()
		next.PlaceStone(gs.nextPlayer, move.Point)
	}
	return newGameState(next, gs.nextPlayer.Other(), gs, &move)
}

// IsOver reports whether the last move was a resignation or the last two
// moves were passes.
func (gs *GameState) IsOver() bool {
	if gs.lastMove == nil {
		return false
	}
	if gs.lastMove.IsResign() {
		return true
	}
	if gs.previous == nil || gs.previous.lastMove == nil {
		return false
	}
	return gs.lastMove.IsPass() && gs.previous.lastMove.IsPass()
}

// Winner returns the opponent of a resigning player. Games ending in two
// passes, and games still in progress, have no winner.
func (gs *GameState) Winner() (Player, bool) {
	if gs.lastMove == nil || !gs.lastMove.IsResign() {
		return NoPlayer, false
	}
	return gs.nextPlayer, true
}

func (gs *GameState) simulate(player Player, p Point) *Board {
	next := gs.board.Copy()
	next.PlaceStone(player, p)
	return next
}

// IsMoveSelfCapture reports whether playing move would leave the player's
// own string without liberties.
func (gs *GameState) IsMoveSelfCapture(player Player, move Move) bool {
	if !move.IsPlay() {
		return false
	}
	return gs.simulate(player, move.Point).Liberties(move.Point) == 0
}

// DoesMoveViolateKo reports whether playing move would recreate a situation
// seen earlier in this game (positional superko).
func (gs *GameState) DoesMoveViolateKo(player Player, move Move) bool {
	if !move.IsPlay() {
		return false
	}
	next := gs.simulate(player, move.Point)
	_, seen := gs.previousStates[situation{player: player.Other(), hash: next.ZobristHash()}]
	return seen
}

func (gs *GameState) IsValidMove(move Move) bool {
	if gs.IsOver() {
		return false
	}
	if !move.IsPlay() {
		return true
	}
	if !gs.board.IsOnGrid(move.Point) || gs.board.Get(move.Point) != NoPlayer {
		return false
	}
	// One simulated placement answers both the self-capture and the ko question.
	next := gs.simulate(gs.nextPlayer, move.Point)
	if next.Liberties(move.Point) == 0 {
		return false
	}
	_, seen := gs.previousStates[situation{player: gs.nextPlayer.Other(), hash: next.ZobristHash()}]
	return !seen
}

// LegalMoves returns every valid play in row-major order followed by pass
// and resign.
func (gs *GameState) LegalMoves() []Move {
	moves := make([]Move, 0, gs.board.rows*gs.board.cols+2)
	for row := 1; row <= gs.board.rows; row++ {
		for col := 1; col <= gs.board.cols; col++ {
			move := Play(Point{Row: row, Col: col})
			if gs.IsValidMove(move) {
				moves = append(moves, move)
			}
		}
	}
	return append(moves, Pass(), Resign())
}

// Player, Play and the methods above let the search operate on a GameState.

func (gs *GameState) Player() Player {
	return gs.nextPlayer
}

func (gs *GameState) Play(move Move) searcher.State[Move, Player] {
	return gs.ApplyMove(move)
}

var _ searcher.State[Move, Player] = (*GameState)(nil)
