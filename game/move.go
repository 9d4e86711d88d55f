package game

import "fmt"

// Move relocates or duplicates the disc at Src onto Dest.
type Move struct {
	Src  Coord
	Dest Coord
}

// PassMove is played by a GameState whose side to move has no legal move.
// It never satisfies IsValid.
var PassMove = Move{Src: Coord{-1, -1}, Dest: Coord{-1, -1}}

func NewMove(src, dest Coord) Move {
	return Move{Src: src, Dest: dest}
}

func (m Move) Offset() Offset {
	return m.Dest.Sub(m.Src)
}

func (m Move) IsPass() bool {
	return m == PassMove
}

// IsAdjacent reports whether the destination is one step away, which
// duplicates the source disc.
func (m Move) IsAdjacent() bool {
	return isDirection(m.Offset())
}

// IsJump reports whether the destination is two steps away on either axis,
// which relocates the source disc.
func (m Move) IsJump() bool {
	o := m.Offset()
	return abs(o.DRow) == 2 || abs(o.DCol) == 2
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("(%d,%d)->(%d,%d)", m.Src.Row, m.Src.Col, m.Dest.Row, m.Dest.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
