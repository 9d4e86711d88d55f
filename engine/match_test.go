package engine

import (
	"testing"

	"ataxx/agent"
	"ataxx/game"

	"github.com/stretchr/testify/require"
)

type stubAgent struct {
	move  game.Move
	ok    bool
	calls int
}

func (s *stubAgent) Name() string {
	return "stub_agent"
}

func (s *stubAgent) FindMove(board *game.Board, player game.Player) (game.Move, bool) {
	s.calls++
	// Scribbling on the copy must not reach the match board
	board.Set(game.Coord{Row: 0, Col: 1}, player.Other().Cell())
	return s.move, s.ok
}

func TestMatchRun(t *testing.T) {
	t.Run("random agents play to completion", func(t *testing.T) {
		board := game.NewStartingBoard(4)
		observed := 0
		m := NewMatch(board, [2]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)},
			WithSeed(5),
			WithObserver(func(turn int, player game.Player, move game.Move, b *game.Board) {
				observed++
				require.Equal(t, observed, turn)
				require.Equal(t, board, b)
				require.False(t, move.IsPass())
			}))

		result := m.Run()

		require.Contains(t, []Reason{ReasonBoardFull, ReasonNoMoves, ReasonMaxTurns}, result.Reason)
		require.Equal(t, result.Turns, observed, "Observer should see every move")
		require.Len(t, result.Moves, result.Turns)
		require.Equal(t, result.Turns, len(result.Times[0])+len(result.Times[1]))
		require.Equal(t, game.CheckEnd(board), result.Outcome)
		if result.Reason == ReasonBoardFull {
			require.Equal(t, 16, result.ScoreA+result.ScoreB)
		}
		for i, mm := range result.Moves {
			require.Equal(t, i+1, mm.Step)
			require.False(t, mm.Fallback)
		}
	})

	t.Run("blocked player passes until the board fills", func(t *testing.T) {
		board := game.MustParseBoard(
			"A...",
			"....",
			"....",
			"....",
		)
		m := NewMatch(board, [2]agent.Agent{agent.NewGreedyAgent(), agent.NewGreedyAgent()})

		result := m.Run()

		require.Equal(t, ReasonBoardFull, result.Reason)
		require.Equal(t, 15, result.Turns, "Greedy A duplicates into every empty cell")
		require.Empty(t, result.Times[1], "B never gets to move")
		require.Equal(t, game.Outcome{Terminated: true, ScoreA: 16, ScoreB: 0}, result.Outcome)
		require.Equal(t, "A", result.Winner())
	})

	t.Run("stops when neither player can move", func(t *testing.T) {
		result := NewMatch(game.NewBoard(4), [2]agent.Agent{agent.NewGreedyAgent(), agent.NewGreedyAgent()}).Run()

		require.Equal(t, ReasonNoMoves, result.Reason)
		require.Zero(t, result.Turns)
		require.Equal(t, game.Draw, result.Winner())
	})

	t.Run("stops at the turn limit", func(t *testing.T) {
		m := NewMatch(game.NewStartingBoard(8), [2]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)},
			WithMaxTurns(3))

		result := m.Run()

		require.Equal(t, ReasonMaxTurns, result.Reason)
		require.Equal(t, 3, result.Turns)
		require.Len(t, result.Times[0], 2)
		require.Len(t, result.Times[1], 1)
	})

	t.Run("illegal agent answers fall back to a random legal move", func(t *testing.T) {
		board := game.NewStartingBoard(4)
		cheater := &stubAgent{move: game.NewMove(game.Coord{Row: 0, Col: 0}, game.Coord{Row: 0, Col: 3}), ok: true}
		silent := &stubAgent{ok: false}
		m := NewMatch(board, [2]agent.Agent{cheater, silent}, WithMaxTurns(4))

		result := m.Run()

		require.Equal(t, 4, result.Turns)
		require.Equal(t, 2, cheater.calls)
		require.Equal(t, 2, silent.calls)
		for _, mm := range result.Moves {
			require.True(t, mm.Fallback)
		}
	})

	t.Run("panics without two agents", func(t *testing.T) {
		require.Panics(t, func() {
			NewMatch(game.NewStartingBoard(4), [2]agent.Agent{agent.NewGreedyAgent(), nil})
		})
	})
}
