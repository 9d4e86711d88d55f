package simulator

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"ataxx/agent"
	"ataxx/config"
	"ataxx/engine"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	cfg.Player1 = agent.GreedyName
	cfg.Player2 = agent.RandomName
	cfg.BoardSizeMin = 4
	cfg.BoardSizeMax = 6
	cfg.Seed = 7
	cfg.DisplayDelay = 0
	return cfg
}

func TestRun(t *testing.T) {
	t.Run("plays a full game", func(t *testing.T) {
		s := New(testConfig(t))

		run, err := s.Run(false, 4)
		require.NoError(t, err)

		require.NotEmpty(t, run.ID)
		require.Equal(t, 4, run.Size)
		require.Contains(t, []engine.Reason{engine.ReasonBoardFull, engine.ReasonNoMoves, engine.ReasonMaxTurns}, run.Reason)
		require.Equal(t, run.Turns, len(run.Times[0])+len(run.Times[1]))
		require.LessOrEqual(t, run.Scores[0]+run.Scores[1], 16)
		require.Len(t, s.matches, 1)
		require.Len(t, s.moves, run.Turns)
	})

	t.Run("swap reorders scores and times by player", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Player1 = agent.RandomName
		cfg.Player2 = agent.GreedyName
		cfg.MaxTurns = 1
		s := New(cfg)

		run, err := s.Run(true, 6)
		require.NoError(t, err)

		require.Equal(t, engine.ReasonMaxTurns, run.Reason)
		require.Empty(t, run.Times[0], "Player 1 plays B and never moves")
		require.Len(t, run.Times[1], 1)
		require.Equal(t, [2]int{2, 3}, run.Scores, "Greedy player 2 duplicates as A")
		require.Equal(t, 2, run.Winner())
		require.True(t, s.matches[0].Swapped)
		require.Equal(t, agent.GreedyName, s.matches[0].StartingPlayer)
	})

	t.Run("draws the board when displayed", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := testConfig(t)
		cfg.Display = true
		cfg.MaxTurns = 2
		s := New(cfg, WithOutput(termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))))

		_, err := s.Run(false, 4)
		require.NoError(t, err)

		require.Contains(t, buf.String(), "turn 1: A played")
		require.Contains(t, buf.String(), "turn 2: B played")
	})

	t.Run("saves every frame", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.DisplaySave = true
		cfg.DisplayPath = filepath.Join(t.TempDir(), "plots")
		cfg.MaxTurns = 3
		s := New(cfg)

		run, err := s.Run(false, 4)
		require.NoError(t, err)

		entries, err := os.ReadDir(cfg.DisplayPath)
		require.NoError(t, err)
		require.Len(t, entries, run.Turns)

		frame, err := os.ReadFile(filepath.Join(cfg.DisplayPath, run.ID+"_1.txt"))
		require.NoError(t, err)
		require.Contains(t, string(frame), "turn 1: A played")
		require.Contains(t, string(frame), "  0 1 2 3\n")
		require.NotContains(t, string(frame), "\x1b[", "Saved frames should be plain text")
	})

	t.Run("same seed plays the same game", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Player1 = agent.RandomName
		cfg.Player2 = agent.RandomName

		first, err := New(cfg).Run(false, 6)
		require.NoError(t, err)
		second, err := New(cfg).Run(false, 6)
		require.NoError(t, err)

		require.Equal(t, first.Scores, second.Scores)
		require.Equal(t, first.Turns, second.Turns)
		require.Equal(t, first.Reason, second.Reason)
	})

	t.Run("unknown agent", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Player2 = "human_agent"
		_, err := New(cfg).Run(false, 4)
		require.ErrorIs(t, err, agent.ErrUnknownAgent)
	})
}

func TestAutoplay(t *testing.T) {
	cfg := testConfig(t)
	cfg.AutoplayRuns = 6
	cfg.ResultsDir = t.TempDir()
	cfg.DisplaySave = true
	cfg.DisplayPath = filepath.Join(t.TempDir(), "plots")
	s := New(cfg)

	summary, err := s.Autoplay()
	require.NoError(t, err)

	require.Equal(t, 6, summary.Runs)
	require.InDelta(t, 1.0, summary.Player1WinRate+summary.Player2WinRate, 1e-9, "Ties should be split between the players")
	require.Len(t, s.matches, 6)
	for i, match := range s.matches {
		require.Equal(t, i%2 == 0, match.Swapped, "Match %d should alternate the starting player", i)
		require.Contains(t, []int{4, 6}, match.BoardSize)
	}

	require.NoDirExists(t, cfg.DisplayPath, "Autoplay should not save frames")

	dir, err := s.Save(&summary)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "match_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 7, "Header and one row per match")

	require.FileExists(t, filepath.Join(dir, "move_records.csv"))
	require.FileExists(t, filepath.Join(dir, "summary.csv"))
}

func TestSaveWithoutResultsDir(t *testing.T) {
	dir, err := New(testConfig(t)).Save(nil)
	require.NoError(t, err)
	require.Empty(t, dir)
}

func TestValidSizes(t *testing.T) {
	require.Equal(t, []int{6, 8, 10, 12}, validSizes(6, 12))
	require.Equal(t, []int{6}, validSizes(5, 6))
}
