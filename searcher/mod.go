package searcher

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for winning outcome
const Loss = -Win // Reward for loss outcome (negate from opponent perspective)

// MaxCutoff bounds rollout depth when no cutoff is configured. No game on the
// supported board sizes lasts this long without passing forever.
const MaxCutoff = 1 << 16

// computeReward converts a rollout score for player into a reward for the
// node whose incoming move was chosen by mover.
func computeReward(player string, score float64, mover string) float64 {
	if mover == player {
		return score
	}
	return -score
}
