package render

import (
	"fmt"
	"strings"

	"ataxx/game"

	"github.com/muesli/termenv"
)

const (
	colorA = "1" // red
	colorB = "4" // blue
)

// Board draws b with row and column indices. Discs are colored according to
// the profile of out, so an Ascii output yields plain letters.
func Board(out *termenv.Output, b *game.Board) string {
	n := b.Size()
	width := len(fmt.Sprint(n - 1))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width))
	for col := 0; col < n; col++ {
		fmt.Fprintf(&sb, " %*d", width, col)
	}
	sb.WriteByte('\n')

	for row := 0; row < n; row++ {
		fmt.Fprintf(&sb, "%*d", width, row)
		for col := 0; col < n; col++ {
			sb.WriteByte(' ')
			sb.WriteString(strings.Repeat(" ", width-1))
			sb.WriteString(cell(out, b.At(game.Coord{Row: row, Col: col})))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Score renders the disc counts of both players.
func Score(out *termenv.Output, b *game.Board) string {
	return fmt.Sprintf("%s: %d  %s: %d",
		cell(out, game.PlayerA.Cell()), b.Count(game.PlayerA.Cell()),
		cell(out, game.PlayerB.Cell()), b.Count(game.PlayerB.Cell()))
}

// Frame clears the screen and draws b with the last move and the score.
func Frame(out *termenv.Output, b *game.Board, turn int, player game.Player, move game.Move) {
	out.ClearScreen()
	out.MoveCursor(1, 1)
	fmt.Fprintf(out, "turn %d: %s played %s\n\n", turn, player, move)
	fmt.Fprint(out, Board(out, b))
	fmt.Fprintf(out, "\n%s\n", Score(out, b))
}

func cell(out *termenv.Output, c game.Cell) string {
	switch c {
	case game.PlayerA.Cell():
		return out.String(c.String()).Foreground(out.Color(colorA)).Bold().String()
	case game.PlayerB.Cell():
		return out.String(c.String()).Foreground(out.Color(colorB)).Bold().String()
	default:
		return c.String()
	}
}
