package game

// EvaluateDiscs scores the disc difference between the side to move and its
// opponent, between -1 and 1.
func EvaluateDiscs(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	return gs.discScore()
}

// EvaluateMobility considers how many moves each side has available, in
// addition to discs, to produce a score between -1 and 1 from the side to
// move's perspective.
func EvaluateMobility(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	current := float64(len(LegalMoves(gs.Board, gs.Turn)))
	opponent := float64(len(LegalMoves(gs.Board, gs.Turn.Other())))

	return (gs.discScore() + normalize(current, opponent)) / 2
}

func (gs *GameState) discScore() float64 {
	current := float64(gs.Board.Count(gs.Turn.Cell()))
	opponent := float64(gs.Board.Count(gs.Turn.Other().Cell()))
	return normalize(current, opponent)
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
