package agent

import (
	"errors"
	"fmt"
	"time"

	"ataxx/game"
	"ataxx/metrics"
	"ataxx/searcher"

	"golang.org/x/exp/slices"
)

var ErrUnknownAgent = errors.New("unknown agent")

const (
	RandomName       = "random_agent"
	GreedyName       = "greedy_agent"
	MCTSName         = "mcts_agent"
	MCTSSamplingName = "mcts_sampling_agent"
)

var names = []string{RandomName, GreedyName, MCTSName, MCTSSamplingName}

type Agent interface {
	Name() string
	// FindMove picks a move for player on board, or reports false when it
	// has none. The board is the caller's copy and may be modified.
	FindMove(board *game.Board, player game.Player) (game.Move, bool)
}

// Searcher is implemented by agents that can report metrics of their last search.
type Searcher interface {
	LastSearch() metrics.SearchMetric
}

type Options struct {
	Seed        uint64
	Goroutines  int
	Duration    time.Duration
	Episodes    int
	Cutoff      int
	Temperature float64
}

// Names lists the registered agent names.
func Names() []string {
	return slices.Clone(names)
}

// New returns the agent registered under name.
func New(name string, opts Options) (Agent, error) {
	switch name {
	case RandomName:
		return NewRandomAgent(opts.Seed), nil
	case GreedyName:
		return NewGreedyAgent(), nil
	case MCTSName:
		return NewEvaluationAgent(newMCTS(opts)), nil
	case MCTSSamplingName:
		return NewSamplingAgent(newMCTS(opts), opts.Temperature, opts.Seed), nil
	default:
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownAgent, name, names)
	}
}

func newMCTS(opts Options) *searcher.MCTS {
	options := []searcher.Option{searcher.WithMetrics()}

	if opts.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(opts.Episodes))
	}
	if opts.Duration > 0 {
		options = append(options, searcher.WithDuration(opts.Duration))
	}
	if opts.Episodes <= 0 && opts.Duration <= 0 {
		options = append(options, searcher.WithDuration(DefaultSearchDuration))
	}
	if opts.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(opts.Cutoff))
	}

	return searcher.NewMCTS(opts.Goroutines, options...)
}

// DefaultSearchDuration is used by search agents configured without a budget.
const DefaultSearchDuration = 500 * time.Millisecond
