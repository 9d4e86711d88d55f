// meta/meta.go
package meta

import "time"

// Goroutines defines the number of goroutines search agents use.
const Goroutines = 8

// Episodes defines the number of episodes for MCTS. Zero means the search is
// bounded by SearchDuration instead.
const Episodes = 0

// SearchDuration defines the per-move time budget of search agents.
const SearchDuration = 500 * time.Millisecond

// Cutoff defines the rollout depth after which MCTS evaluates the position.
const Cutoff = 100

// MaxTurns bounds a single match; jump moves alone can cycle forever.
const MaxTurns = 1000

// Board sizes. Only even sizes are played.
const (
	MinBoardSize = 4
	BoardSizeMin = 6
	BoardSizeMax = 12
)

const (
	DefaultAgent = "random_agent"
	AutoplayRuns = 100
	DisplayDelay = 400 * time.Millisecond

	DisplaySavePath = "plots"
)
