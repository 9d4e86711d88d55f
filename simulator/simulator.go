package simulator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"ataxx/agent"
	"ataxx/config"
	"ataxx/engine"
	"ataxx/game"
	"ataxx/metrics"
	"ataxx/render"

	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Simulator plays games between the two configured agents. Player 1 and
// player 2 refer to the configured agents, A and B to the sides of the board.
type Simulator struct {
	cfg   config.Config
	rng   *rand.Rand
	out   *termenv.Output
	sizes []int

	matches []metrics.MatchRecord
	moves   []metrics.MoveRecord
}

type RunResult struct {
	ID      string
	Size    int
	Swapped bool // Player 2 played A and moved first
	Reason  engine.Reason
	Turns   int
	Scores  [2]int             // Player 1, player 2
	Times   [2][]time.Duration // Player 1, player 2
}

// Winner returns 1 or 2 for the winning player, or 0 for a tie.
func (r RunResult) Winner() int {
	switch {
	case r.Scores[0] > r.Scores[1]:
		return 1
	case r.Scores[1] > r.Scores[0]:
		return 2
	default:
		return 0
	}
}

type Option func(*Simulator)

// WithOutput sets the terminal the board is drawn on when display is enabled.
func WithOutput(out *termenv.Output) Option {
	return func(s *Simulator) {
		s.out = out
	}
}

// New creates a simulator. A zero seed is replaced by one taken from the clock.
func New(cfg config.Config, options ...Option) *Simulator {
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	s := &Simulator{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		out:   termenv.NewOutput(os.Stdout),
		sizes: validSizes(cfg.BoardSizeMin, cfg.BoardSizeMax),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// BoardSize returns the configured size, or a random even size within the
// configured range.
func (s *Simulator) BoardSize() int {
	if s.cfg.BoardSize != 0 {
		return s.cfg.BoardSize
	}
	return s.randomSize()
}

func (s *Simulator) randomSize() int {
	return s.sizes[s.rng.Intn(len(s.sizes))]
}

// Run plays one game on a fresh starting board of the given size. With swap
// set, player 2 plays A and moves first.
func (s *Simulator) Run(swap bool, size int) (RunResult, error) {
	agents, err := s.agents()
	if err != nil {
		return RunResult{}, err
	}
	if swap {
		agents[0], agents[1] = agents[1], agents[0]
	}

	id := uuid.NewString()
	options := []engine.Option{
		engine.WithMaxTurns(s.cfg.MaxTurns),
		engine.WithSeed(s.rng.Uint64()),
	}
	if s.cfg.Display || s.cfg.DisplaySave {
		options = append(options, engine.WithObserver(s.observer(id)))
	}

	match := engine.NewMatch(game.NewStartingBoard(size), agents, options...)
	result := match.Run()

	run := RunResult{
		ID:      id,
		Size:    size,
		Swapped: swap,
		Reason:  result.Reason,
		Turns:   result.Turns,
		Scores:  [2]int{result.ScoreA, result.ScoreB},
		Times:   result.Times,
	}
	if swap {
		run.Scores[0], run.Scores[1] = run.Scores[1], run.Scores[0]
		run.Times[0], run.Times[1] = run.Times[1], run.Times[0]
	}

	switch run.Winner() {
	case 1:
		log.Info().Msgf("player 1 (%s) wins %d to %d after %d turns (%s)", s.cfg.Player1, run.Scores[0], run.Scores[1], run.Turns, run.Reason)
	case 2:
		log.Info().Msgf("player 2 (%s) wins %d to %d after %d turns (%s)", s.cfg.Player2, run.Scores[1], run.Scores[0], run.Turns, run.Reason)
	default:
		log.Info().Msgf("tie at %d after %d turns (%s)", run.Scores[0], run.Turns, run.Reason)
	}

	s.record(run, result, agents)
	return run, nil
}

// Autoplay plays the configured number of games on random board sizes,
// swapping the starting player every other game. Logging is silenced while
// the games run.
func (s *Simulator) Autoplay() (metrics.Summary, error) {
	if s.cfg.Display || s.cfg.DisplaySave {
		log.Warn().Msg("display and frame saving are disabled in autoplay")
	}
	display, save := s.cfg.Display, s.cfg.DisplaySave
	s.cfg.Display, s.cfg.DisplaySave = false, false
	defer func() { s.cfg.Display, s.cfg.DisplaySave = display, save }()

	summary := metrics.Summary{
		Player1: s.cfg.Player1,
		Player2: s.cfg.Player2,
		Runs:    s.cfg.AutoplayRuns,
	}
	var wins [2]float64

	level := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.Disabled)
	for i := 0; i < s.cfg.AutoplayRuns; i++ {
		run, err := s.Run(i%2 == 0, s.randomSize())
		if err != nil {
			zerolog.SetGlobalLevel(level)
			return metrics.Summary{}, err
		}

		switch run.Winner() {
		case 1:
			wins[0]++
		case 2:
			wins[1]++
		default:
			wins[0] += 0.5
			wins[1] += 0.5
		}
		summary.Player1MaxTurn = max(summary.Player1MaxTurn, maxDuration(run.Times[0]))
		summary.Player2MaxTurn = max(summary.Player2MaxTurn, maxDuration(run.Times[1]))
	}
	zerolog.SetGlobalLevel(level)

	summary.Player1WinRate = wins[0] / float64(s.cfg.AutoplayRuns)
	summary.Player2WinRate = wins[1] / float64(s.cfg.AutoplayRuns)

	log.Info().Msgf("player 1, agent %s, win percentage: %.4f. Maximum turn time was %.5f seconds.",
		summary.Player1, summary.Player1WinRate, summary.Player1MaxTurn.Seconds())
	log.Info().Msgf("player 2, agent %s, win percentage: %.4f. Maximum turn time was %.5f seconds.",
		summary.Player2, summary.Player2WinRate, summary.Player2MaxTurn.Seconds())

	return summary, nil
}

// Save writes the recorded matches and moves, and the summary if given, as CSV
// files under the configured results directory. It returns the directory, or
// "" when no results directory is configured.
func (s *Simulator) Save(summary *metrics.Summary) (string, error) {
	if s.cfg.ResultsDir == "" {
		return "", nil
	}

	writer, err := metrics.NewWriter(s.cfg.ResultsDir, s.cfg.Player1+"_vs_"+s.cfg.Player2)
	if err != nil {
		return "", fmt.Errorf("failed to create results writer: %w", err)
	}

	err = writer.WriteMatchRecords(s.matches)
	if err != nil {
		return "", err
	}
	err = writer.WriteMoveRecords(s.moves)
	if err != nil {
		return "", err
	}
	if summary != nil {
		err = writer.WriteSummary(*summary)
		if err != nil {
			return "", err
		}
	}

	log.Info().Msgf("stored %d match records in %s", len(s.matches), writer.Dir())
	return writer.Dir(), nil
}

func (s *Simulator) agents() ([2]agent.Agent, error) {
	var agents [2]agent.Agent
	for i, name := range []string{s.cfg.Player1, s.cfg.Player2} {
		opts := s.cfg.AgentOptions()
		opts.Seed = s.rng.Uint64()
		a, err := agent.New(name, opts)
		if err != nil {
			return agents, fmt.Errorf("player %d: %w", i+1, err)
		}
		agents[i] = a
	}
	return agents, nil
}

// observer draws and saves the frames of the match identified by id.
func (s *Simulator) observer(id string) engine.Observer {
	return func(turn int, player game.Player, move game.Move, board *game.Board) {
		if s.cfg.DisplaySave {
			err := s.saveFrame(id, turn, player, move, board)
			if err != nil {
				log.Error().Err(err).Msgf("failed to save frame %d", turn)
			}
		}
		if s.cfg.Display {
			render.Frame(s.out, board, turn, player, move)
			time.Sleep(s.cfg.DisplayDelay)
		}
	}
}

// saveFrame writes the board after turn as plain text to
// <display_save_path>/<id>_<turn>.txt.
func (s *Simulator) saveFrame(id string, turn int, player game.Player, move game.Move, board *game.Board) error {
	err := os.MkdirAll(s.cfg.DisplayPath, 0755)
	if err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	plain := termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.Ascii))
	frame := fmt.Sprintf("turn %d: %s played %s\n\n%s\n%s\n",
		turn, player, move, render.Board(plain, board), render.Score(plain, board))

	path := filepath.Join(s.cfg.DisplayPath, fmt.Sprintf("%s_%d.txt", id, turn))
	return os.WriteFile(path, []byte(frame), 0644)
}

func (s *Simulator) record(run RunResult, result engine.Result, agents [2]agent.Agent) {
	s.matches = append(s.matches, metrics.MatchRecord{
		ID:      run.ID,
		Player1: s.cfg.Player1,
		Player2: s.cfg.Player2,
		Swapped: run.Swapped,
		GameMetric: metrics.GameMetric{
			StartingPlayer: agents[0].Name(),
			Winner:         result.Winner(),
			Reason:         string(result.Reason),
			BoardSize:      run.Size,
			ScoreA:         result.ScoreA,
			ScoreB:         result.ScoreB,
			StartTime:      result.StartTime,
			EndTime:        result.EndTime,
			Duration:       result.EndTime.Sub(result.StartTime),
			TotalMoves:     result.Turns,
		},
	})
	for _, mm := range result.Moves {
		s.moves = append(s.moves, metrics.MoveRecord{Match: run.ID, MoveMetric: mm})
	}
}

func validSizes(lo, hi int) []int {
	sizes := []int{}
	for n := lo + lo%2; n <= hi; n += 2 {
		sizes = append(sizes, n)
	}
	return sizes
}

func maxDuration(times []time.Duration) time.Duration {
	var m time.Duration
	for _, t := range times {
		m = max(m, t)
	}
	return m
}
