package agent

import (
	"ataxx/game"
	"ataxx/metrics"
	"ataxx/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
	last metrics.SearchMetric
}

// NewEvaluationAgent returns a search agent that plays the most visited move.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return &evaluationAgent{mcts: mcts}
}

func (a *evaluationAgent) Name() string {
	return MCTSName
}

func (a *evaluationAgent) FindMove(board *game.Board, player game.Player) (game.Move, bool) {
	state := game.NewGameState(board, player)
	moves := game.LegalMoves(board, player)
	if len(moves) == 0 {
		return game.Move{}, false
	}

	policy, metric := a.mcts.Simulate(state)
	a.last = metric
	return findMax(moves, policy), true
}

func (a *evaluationAgent) LastSearch() metrics.SearchMetric {
	return a.last
}

// findMax returns the move with the most visits, breaking ties by the order
// of moves.
func findMax(moves []game.Move, policy map[game.Move]float64) game.Move {
	maxMove := moves[0]
	maxVisit := -1.0
	for _, move := range moves {
		if visit := policy[move]; visit > maxVisit {
			maxVisit = visit
			maxMove = move
		}
	}
	return maxMove
}
