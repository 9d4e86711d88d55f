package engine

import (
	"time"

	"ataxx/agent"
	"ataxx/game"
	"ataxx/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Match drives one game between two agents over a board it owns. Agents[0]
// plays A and moves first.
type Match struct {
	Board  *game.Board
	Agents [2]agent.Agent

	maxTurns int
	observer Observer
	seed     uint64
}

type Result struct {
	game.Outcome
	Reason    Reason
	Turns     int                // Moves applied, passes excluded
	Times     [2][]time.Duration // Per agent, indexed like Match.Agents
	Moves     []metrics.MoveMetric
	StartTime time.Time
	EndTime   time.Time
}

// Winner returns "A", "B" or game.Draw by disc count.
func (r Result) Winner() string {
	switch {
	case r.ScoreA > r.ScoreB:
		return game.PlayerA.String()
	case r.ScoreB > r.ScoreA:
		return game.PlayerB.String()
	default:
		return game.Draw
	}
}

func NewMatch(board *game.Board, agents [2]agent.Agent, options ...Option) *Match {
	if agents[0] == nil || agents[1] == nil {
		panic("match needs two agents")
	}

	m := &Match{
		Board:  board,
		Agents: agents,
	}
	defaultOptions(m)
	for _, option := range options {
		option(m)
	}
	return m
}

// Run plays until the board is full, neither player can move, or the turn
// limit is reached. A player without legal moves passes.
func (m *Match) Run() Result {
	rng := rand.New(rand.NewSource(m.seed))
	result := Result{StartTime: time.Now()}

	player := game.PlayerA
	passes := 0

	log.Info().Msgf("%s (A) vs %s (B) on a %dx%d board", m.Agents[0].Name(), m.Agents[1].Name(), m.Board.Size(), m.Board.Size())

	for {
		outcome := game.CheckEnd(m.Board)
		if outcome.Terminated {
			result.Reason = ReasonBoardFull
			break
		}
		if result.Turns >= m.maxTurns {
			result.Reason = ReasonMaxTurns
			log.Warn().Msgf("stopped after %d turns", result.Turns)
			break
		}

		if !game.HasLegalMove(m.Board, player) {
			passes++
			if passes >= 2 {
				result.Reason = ReasonNoMoves
				log.Info().Msg("neither player has a legal move")
				break
			}
			log.Info().Msgf("player %s has no legal moves and passes", player)
			player = player.Other()
			continue
		}
		passes = 0

		index := agentIndex(player)
		result.Turns++
		move, metric := m.turn(index, player, rng)
		metric.Step = result.Turns
		result.Times[index] = append(result.Times[index], metric.Duration)
		result.Moves = append(result.Moves, metric)

		if m.observer != nil {
			m.observer(result.Turns, player, move, m.Board)
		}
		player = player.Other()
	}

	result.Outcome = game.CheckEnd(m.Board)
	result.EndTime = time.Now()

	log.Info().Msgf("match over (%s) after %d turns: A=%d B=%d", result.Reason, result.Turns, result.ScoreA, result.ScoreB)
	return result
}

// turn asks the agent for a move and applies it. An agent answer that is not
// legal is replaced by a random legal move; the caller guarantees one exists.
func (m *Match) turn(index int, player game.Player, rng *rand.Rand) (game.Move, metrics.MoveMetric) {
	a := m.Agents[index]

	start := time.Now()
	move, ok := a.FindMove(m.Board.Copy(), player)
	elapsed := time.Since(start)

	gain, valid := game.CountGain(m.Board, move, player)
	fallback := false
	if !ok || !valid {
		log.Warn().Msgf("agent %s returned an invalid move %s for player %s, playing a random move", a.Name(), move, player)
		move, _ = game.RandomMove(m.Board, player, rng)
		gain, _ = game.CountGain(m.Board, move, player)
		fallback = true
	}

	game.Apply(m.Board, move, player)
	log.Debug().Msgf("player %s (%s) played %s gaining %d in %s", player, a.Name(), move, gain, elapsed)

	metric := metrics.MoveMetric{
		Player:   player.String(),
		Move:     move.String(),
		Gain:     gain,
		Duration: elapsed,
		Fallback: fallback,
	}
	if s, ok := a.(agent.Searcher); ok && !fallback {
		metric.SearchMetric = s.LastSearch()
	}
	return move, metric
}

func agentIndex(player game.Player) int {
	if player == game.PlayerA {
		return 0
	}
	return 1
}
