package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState pairs a board with the side to move so the rules engine can be
// driven by a searcher. Operations on GameState never mutate the board; Play
// returns a new state over a copy.
type GameState struct {
	Board    *Board
	Turn     Player
	LastMove Move
}

func NewGameState(b *Board, turn Player) *GameState {
	return &GameState{
		Board:    b,
		Turn:     turn,
		LastMove: PassMove,
	}
}

// Player returns the identifier of the side to move.
func (gs *GameState) Player() string {
	return gs.Turn.String()
}

// IsOver reports whether the board is full or neither player can move.
func (gs *GameState) IsOver() bool {
	if CheckEnd(gs.Board).Terminated {
		return true
	}
	return !HasLegalMove(gs.Board, gs.Turn) && !HasLegalMove(gs.Board, gs.Turn.Other())
}

// LegalMoves returns the side to move's legal moves, a lone PassMove when it
// is blocked but the game goes on, or nil once the game is over.
func (gs *GameState) LegalMoves() []Move {
	if gs.IsOver() {
		return nil
	}
	moves := LegalMoves(gs.Board, gs.Turn)
	if len(moves) == 0 {
		return []Move{PassMove}
	}
	return moves
}

func (gs *GameState) Play(move Move) State {
	next := &GameState{
		Board:    gs.Board.Copy(),
		Turn:     gs.Turn.Other(),
		LastMove: move,
	}

	if move.IsPass() {
		if HasLegalMove(gs.Board, gs.Turn) {
			panic(fmt.Errorf("%w: player %s cannot pass with legal moves available", ErrIllegalMove, gs.Turn))
		}
		return next
	}

	Apply(next.Board, move, gs.Turn)
	return next
}

// Winner returns "A", "B" or Draw once the game is over, "" otherwise.
func (gs *GameState) Winner() string {
	if !gs.IsOver() {
		return ""
	}
	outcome := CheckEnd(gs.Board)
	switch {
	case outcome.ScoreA > outcome.ScoreB:
		return PlayerA.String()
	case outcome.ScoreB > outcome.ScoreA:
		return PlayerB.String()
	default:
		return Draw
	}
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash side to move
	binary.Write(hasher, binary.LittleEndian, uint8(gs.Turn))

	// Hash cells
	binary.Write(hasher, binary.LittleEndian, int64(gs.Board.size))
	for _, cell := range gs.Board.cells {
		binary.Write(hasher, binary.LittleEndian, uint8(cell))
	}

	return StateHash(hasher.Sum64())
}
