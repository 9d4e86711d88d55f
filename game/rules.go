package game

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is the panic value (wrapped) raised by Apply.
var ErrIllegalMove = errors.New("illegal move")

// Outcome is the result of CheckEnd. Scores are reported for any board, not
// only finished ones.
type Outcome struct {
	Terminated bool
	ScoreA     int
	ScoreB     int
}

// IsValid reports whether player may play move on board.
func IsValid(b *Board, m Move, p Player) bool {
	if !p.Valid() {
		return false
	}
	if !b.InBounds(m.Src) || !b.InBounds(m.Dest) {
		return false
	}
	if b.At(m.Dest) != Empty {
		return false
	}
	if b.At(m.Src) != p.Cell() {
		return false
	}
	o := m.Offset()
	return isDirection(o) || isJump(o)
}

// CountGain returns the number of discs player would gain by playing move:
// one per captured opponent neighbour of the destination, plus one for the
// duplicated disc of an adjacent move. ok is false for an illegal move.
func CountGain(b *Board, m Move, p Player) (gain int, ok bool) {
	if !IsValid(b, m, p) {
		return 0, false
	}

	opponent := p.Other().Cell()
	for _, d := range directions {
		n := m.Dest.Add(d)
		if b.InBounds(n) && b.At(n) == opponent {
			gain++
		}
	}

	if !m.IsJump() {
		gain++
	}
	return gain, true
}

// Apply plays move for player, mutating the board. An illegal move panics
// before anything is written.
func Apply(b *Board, m Move, p Player) {
	if !IsValid(b, m, p) {
		panic(fmt.Errorf("%w: player %s moving %s", ErrIllegalMove, p, m))
	}

	own := p.Cell()
	opponent := p.Other().Cell()

	b.Set(m.Dest, own)
	for _, d := range directions {
		n := m.Dest.Add(d)
		if b.InBounds(n) && b.At(n) == opponent {
			b.Set(n, own)
		}
	}

	if m.IsJump() {
		b.Set(m.Src, Empty)
	}
}

// CheckEnd reports whether the board is full, along with each player's disc count.
func CheckEnd(b *Board) Outcome {
	return Outcome{
		Terminated: b.Count(Empty) == 0,
		ScoreA:     b.Count(PlayerA.Cell()),
		ScoreB:     b.Count(PlayerB.Cell()),
	}
}
