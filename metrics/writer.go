package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type MatchRecord struct {
	ID      string // UUID
	Player1 string // Agent name
	Player2 string // Agent name
	Swapped bool   // Player2 moved first as player A
	GameMetric
}

type MoveRecord struct {
	Match string // MatchRecord.ID
	MoveMetric
}

type Summary struct {
	Player1        string
	Player2        string
	Runs           int
	Player1WinRate float64
	Player2WinRate float64
	Player1MaxTurn time.Duration
	Player2MaxTurn time.Duration
}

type Writer struct {
	baseDir string
}

// NewWriter creates baseDir/name/<timestamp> to hold the CSV files of one
// simulator invocation.
func NewWriter(baseDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("2006-01-02-15-04-05")
	dir := filepath.Join(baseDir, name+"_at_"+timestamp)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: dir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	header := []string{"id", "player_1", "player_2", "swapped", "board_size", "starting_player", "winner", "reason",
		"score_a", "score_b", "total_moves", "start_time", "end_time", "duration"}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			record.Player1,
			record.Player2,
			strconv.FormatBool(record.Swapped),
			strconv.Itoa(record.BoardSize),
			record.StartingPlayer,
			record.Winner,
			record.Reason,
			strconv.Itoa(record.ScoreA),
			strconv.Itoa(record.ScoreB),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("match_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"match", "step", "player", "move", "gain", "duration", "fallback", "episodes", "full_playouts"}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Match,
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			strconv.Itoa(record.Gain),
			record.Duration.String(),
			strconv.FormatBool(record.Fallback),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.FullPlayouts),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) WriteSummary(s Summary) error {
	header := []string{"p1_name", "p2_name", "num_runs", "p1_win_percent", "p2_win_percent", "p1_max_turn", "p2_max_turn"}
	row := []string{
		s.Player1,
		s.Player2,
		strconv.Itoa(s.Runs),
		strconv.FormatFloat(s.Player1WinRate, 'f', 4, 64),
		strconv.FormatFloat(s.Player2WinRate, 'f', 4, 64),
		strconv.FormatFloat(s.Player1MaxTurn.Seconds(), 'f', 5, 64),
		strconv.FormatFloat(s.Player2MaxTurn.Seconds(), 'f', 5, 64),
	}
	return w.write("summary.csv", header, [][]string{row})
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}

	return nil
}
