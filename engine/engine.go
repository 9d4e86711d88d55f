package engine

import (
	"ataxx/game"
	"ataxx/meta"
)

// Reason explains why a match stopped.
type Reason string

const (
	ReasonBoardFull Reason = "board_full"
	ReasonNoMoves   Reason = "no_moves"
	ReasonMaxTurns  Reason = "max_turns"
)

// Observer is notified with the board after every applied move. It must not
// modify the board.
type Observer func(turn int, player game.Player, move game.Move, board *game.Board)

type Option func(m *Match)

func WithMaxTurns(turns int) Option {
	return func(m *Match) {
		if turns > 0 {
			m.maxTurns = turns
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(m *Match) {
		m.observer = observer
	}
}

// WithSeed seeds the source used to replace illegal agent moves.
func WithSeed(seed uint64) Option {
	return func(m *Match) {
		m.seed = seed
	}
}

func defaultOptions(m *Match) {
	m.maxTurns = meta.MaxTurns
}
