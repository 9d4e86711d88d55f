package agent

import (
	"ataxx/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Name() string {
	return RandomName
}

func (a *randomAgent) FindMove(board *game.Board, player game.Player) (game.Move, bool) {
	return game.RandomMove(board, player, a.rng)
}

type greedyAgent struct{}

// NewGreedyAgent returns an agent playing the move with the largest disc gain,
// preferring the earliest move in enumeration order on ties.
func NewGreedyAgent() Agent {
	return greedyAgent{}
}

func (a greedyAgent) Name() string {
	return GreedyName
}

func (a greedyAgent) FindMove(board *game.Board, player game.Player) (game.Move, bool) {
	var best game.Move
	bestGain := -1
	for _, move := range game.LegalMoves(board, player) {
		gain, ok := game.CountGain(board, move, player)
		if ok && gain > bestGain {
			best, bestGain = move, gain
		}
	}
	return best, bestGain >= 0
}
