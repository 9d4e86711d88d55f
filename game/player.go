package game

// Player identifies one of the two sides.
type Player uint8

const (
	PlayerA Player = iota + 1
	PlayerB
)

// Draw is reported by Winner when both players end with the same disc count.
const Draw = "draw"

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// Cell returns the cell state holding a disc owned by p.
func (p Player) Cell() Cell {
	return Cell(p)
}

func (p Player) Valid() bool {
	return p == PlayerA || p == PlayerB
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "?"
	}
}

// Cell is the state of a single square: Empty or a disc of one player.
type Cell uint8

const Empty Cell = 0

// Owner reports which player holds the cell, if any.
func (c Cell) Owner() (Player, bool) {
	p := Player(c)
	return p, p.Valid()
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "."
	case PlayerA.Cell():
		return "A"
	case PlayerB.Cell():
		return "B"
	default:
		return "?"
	}
}
