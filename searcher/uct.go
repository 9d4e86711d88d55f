package searcher

import "math"

// exploration holds c²·ln(N) for the children of a node visited N times.
type exploration float64

func newExploration(parentVisits float64) exploration {
	if parentVisits < 1 {
		panic("parent must have at least one visit")
	}
	return exploration(CSquared * math.Log(parentVisits))
}

// score returns the UCT value q/n + sqrt(c²·ln(N)/n) of a child with total
// rewards q over n visits.
func (e exploration) score(rewards, visits float64) float64 {
	if visits < 1 {
		panic("child must have at least one visit")
	}
	return rewards/visits + math.Sqrt(float64(e)/visits)
}
