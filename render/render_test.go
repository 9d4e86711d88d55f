package render

import (
	"bytes"
	"strings"
	"testing"

	"ataxx/game"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))

	t.Run("small board", func(t *testing.T) {
		b := game.MustParseBoard(
			"A..B",
			"....",
			".AB.",
			"B..A",
		)
		expected := strings.Join([]string{
			"  0 1 2 3",
			"0 A . . B",
			"1 . . . .",
			"2 . A B .",
			"3 B . . A",
			"",
		}, "\n")
		require.Equal(t, expected, Board(out, b))
		require.Equal(t, "A: 3  B: 3", Score(out, b))
	})

	t.Run("two digit indices stay aligned", func(t *testing.T) {
		lines := strings.Split(strings.TrimSuffix(Board(out, game.NewStartingBoard(12)), "\n"), "\n")
		require.Len(t, lines, 13)
		for _, line := range lines {
			require.Len(t, line, len(lines[0]), "Line %q should be as wide as the header", line)
		}
		require.True(t, strings.HasPrefix(lines[1], " 0  A"))
		require.True(t, strings.HasSuffix(lines[12], "A"))
	})

	t.Run("colored profile styles discs", func(t *testing.T) {
		colored := termenv.NewOutput(&buf, termenv.WithProfile(termenv.ANSI))
		rendered := Board(colored, game.NewStartingBoard(4))
		require.Contains(t, rendered, "\x1b[")
		require.Contains(t, rendered, ".")
	})
}
