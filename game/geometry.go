package game

// Coord is a (row, column) position on the board, zero indexed.
type Coord struct {
	Row int
	Col int
}

// Offset is the difference between two coordinates.
type Offset struct {
	DRow int
	DCol int
}

func (c Coord) Add(o Offset) Coord {
	return Coord{Row: c.Row + o.DRow, Col: c.Col + o.DCol}
}

func (c Coord) Sub(other Coord) Offset {
	return Offset{DRow: c.Row - other.Row, DCol: c.Col - other.Col}
}

// N, S, W, E, NW, NE, SW, SE
var directions = [8]Offset{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Every cell exactly two steps away: straight, knight-like and diagonal.
var jumps = [16]Offset{
	{-2, 0}, {2, 0}, {0, -2}, {0, 2},
	{-2, 1}, {2, 1}, {1, -2}, {1, 2},
	{-2, -1}, {2, -1}, {-1, -2}, {-1, 2},
	{-2, -2}, {-2, 2}, {2, -2}, {2, 2},
}

var offsets = func() [24]Offset {
	var all [24]Offset
	copy(all[:], directions[:])
	copy(all[len(directions):], jumps[:])
	return all
}()

// Directions returns the 8 unit offsets used for adjacent moves and captures.
func Directions() [8]Offset {
	return directions
}

// Jumps returns the 16 offsets reachable by a jump move.
func Jumps() [16]Offset {
	return jumps
}

// Offsets returns Directions followed by Jumps.
func Offsets() [24]Offset {
	return offsets
}

func isDirection(o Offset) bool {
	for _, d := range directions {
		if d == o {
			return true
		}
	}
	return false
}

func isJump(o Offset) bool {
	for _, j := range jumps {
		if j == o {
			return true
		}
	}
	return false
}
