package searcher

import (
	"math"
	"sync"

	"ataxx/game"

	"golang.org/x/exp/rand"
)

// decision is a tree node for a game state. Its statistics are kept from the
// perspective of mover, the player whose move led into it.
type decision struct {
	sync.RWMutex
	parent     *decision
	mover      string
	unexplored []game.Move
	explored   []game.Move
	children   []*decision
	rewards    float64
	visits     float64
}

func newDecision(parent *decision, mover string, state game.State) *decision {
	moves := state.LegalMoves()
	unexplored := make([]game.Move, len(moves))
	copy(unexplored, moves)
	rand.Shuffle(len(unexplored), func(i, j int) {
		unexplored[i], unexplored[j] = unexplored[j], unexplored[i]
	})

	return &decision{
		parent:     parent,
		mover:      mover,
		unexplored: unexplored,
		explored:   make([]game.Move, 0, len(moves)),
		children:   make([]*decision, 0, len(moves)),
	}
}

// SelectOrExpand descends one level from d. It expands an unexplored move if
// any is left, otherwise selects the child with the best UCT score. selected is
// true only when an existing child was selected.
func (d *decision) SelectOrExpand(state game.State) (child *decision, childState game.State, selected bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) == 0 && len(d.children) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		child, childState := d.expand(state)
		child.applyLoss()
		return child, childState, false
	}

	// Fully expanded node
	ith := d.selectChild()
	child = d.children[ith]
	child.applyLoss()
	return child, state.Play(d.explored[ith]), true
}

func (d *decision) expand(state game.State) (*decision, game.State) {
	last := len(d.unexplored) - 1
	move := d.unexplored[last]
	d.unexplored = d.unexplored[:last]

	mover := state.Player()
	childState := state.Play(move)
	child := newDecision(d, mover, childState)

	d.explored = append(d.explored, move)
	d.children = append(d.children, child)
	return child, childState
}

func (d *decision) selectChild() int {
	// Children carry at least one (virtual) visit each once expanded
	total := 0.0
	stats := make([][2]float64, len(d.children))
	for i, child := range d.children {
		rewards, visits := child.stats()
		stats[i] = [2]float64{rewards, visits}
		total += visits
	}
	e := newExploration(total)

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, s := range stats {
		score := e.score(s[0], s[1])
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) stats() (rewards float64, visits float64) {
	d.RLock()
	defer d.RUnlock()

	return d.rewards, d.visits
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

// backup records a rollout result and returns the parent to continue with.
func (d *decision) backup(player string, score float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += computeReward(player, score, d.mover)
	d.visits++

	return d.parent
}

// Policy returns visit counts of the explored moves.
func (d *decision) Policy() map[game.Move]float64 {
	d.RLock()
	defer d.RUnlock()

	policy := make(map[game.Move]float64, len(d.children))
	for i, child := range d.children {
		_, visits := child.stats()
		policy[d.explored[i]] = visits
	}
	return policy
}
