package agent

import (
	"math"

	"ataxx/game"
	"ataxx/metrics"
	"ataxx/searcher"

	"golang.org/x/exp/rand"
)

type samplingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
	last        metrics.SearchMetric
}

// NewSamplingAgent returns a search agent that samples its move from the
// temperature-adjusted visit counts, trading strength for variety.
func NewSamplingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		temperature = 1.0
	}
	return &samplingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *samplingAgent) Name() string {
	return MCTSSamplingName
}

func (a *samplingAgent) FindMove(board *game.Board, player game.Player) (game.Move, bool) {
	moves := game.LegalMoves(board, player)
	if len(moves) == 0 {
		return game.Move{}, false
	}

	visits, metric := a.mcts.Simulate(game.NewGameState(board, player))
	a.last = metric
	policy := adjustTemperature(moves, visits, a.temperature)
	return sample(moves, policy, a.rng.Float64()), true
}

func (a *samplingAgent) LastSearch() metrics.SearchMetric {
	return a.last
}

// adjustTemperature converts visit counts into move probabilities, aligned
// with moves. Moves without visits get probability 0 unless nothing was
// visited, in which case the distribution is uniform.
func adjustTemperature(moves []game.Move, visits map[game.Move]float64, temperature float64) []float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	policy := make([]float64, len(moves))
	for i, move := range moves {
		prob := math.Pow(visits[move], exponent)
		sum += prob
		policy[i] = prob
	}

	// Normalize
	for i := range policy {
		if sum == 0 {
			policy[i] = 1.0 / float64(len(policy))
		} else {
			policy[i] /= sum
		}
	}
	return policy
}

// sample picks the move whose cumulative probability first exceeds sampled.
func sample(moves []game.Move, policy []float64, sampled float64) game.Move {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return moves[i]
		}
	}
	return moves[len(moves)-1] // Fallback in case of rounding errors
}
