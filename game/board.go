package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedBoard = errors.New("malformed board")

// Board is a square grid of cells. It is mutated in place by Apply; callers
// exploring hypothetical moves must Copy it first.
type Board struct {
	size  int
	cells []Cell // Row-major
}

// NewBoard returns an empty size x size board.
func NewBoard(size int) *Board {
	if size <= 0 {
		panic(fmt.Sprintf("invalid board size %d", size))
	}
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// NewStartingBoard returns a board with player A in the top-left and
// bottom-right corners and player B in the remaining two.
func NewStartingBoard(size int) *Board {
	b := NewBoard(size)
	last := size - 1
	b.Set(Coord{0, 0}, PlayerA.Cell())
	b.Set(Coord{last, last}, PlayerA.Cell())
	b.Set(Coord{0, last}, PlayerB.Cell())
	b.Set(Coord{last, 0}, PlayerB.Cell())
	return b
}

// ParseBoard builds a board from rows of '.', 'A' and 'B' characters.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedBoard)
	}
	b := NewBoard(len(rows))
	for r, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, r, len(row), len(rows))
		}
		for c, ch := range row {
			switch ch {
			case '.':
			case 'A':
				b.Set(Coord{r, c}, PlayerA.Cell())
			case 'B':
				b.Set(Coord{r, c}, PlayerB.Cell())
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrMalformedBoard, ch, r, c)
			}
		}
	}
	return b, nil
}

// MustParseBoard is like ParseBoard but panics on malformed input.
func MustParseBoard(rows ...string) *Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(c Coord) bool {
	return 0 <= c.Row && c.Row < b.size && 0 <= c.Col && c.Col < b.size
}

// At returns the cell at c. c must be in bounds.
func (b *Board) At(c Coord) Cell {
	return b.cells[c.Row*b.size+c.Col]
}

// Set overwrites the cell at c. c must be in bounds.
func (b *Board) Set(c Coord, cell Cell) {
	b.cells[c.Row*b.size+c.Col] = cell
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Count returns how many cells hold the given state.
func (b *Board) Count(cell Cell) int {
	n := 0
	for _, c := range b.cells {
		if c == cell {
			n++
		}
	}
	return n
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			sb.WriteString(b.At(Coord{r, c}).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
