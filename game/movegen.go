package game

import "golang.org/x/exp/rand"

// LegalMoves returns every legal move for player in row-major source order,
// then Directions order, then Jumps order. It returns nil when there are none.
func LegalMoves(b *Board, p Player) []Move {
	var moves []Move
	own := p.Cell()
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			src := Coord{r, c}
			if b.At(src) != own {
				continue
			}
			for _, o := range offsets {
				m := Move{Src: src, Dest: src.Add(o)}
				if IsValid(b, m, p) {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

// HasLegalMove reports whether player has at least one legal move.
func HasLegalMove(b *Board, p Player) bool {
	own := p.Cell()
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			src := Coord{r, c}
			if b.At(src) != own {
				continue
			}
			for _, o := range offsets {
				if IsValid(b, Move{Src: src, Dest: src.Add(o)}, p) {
					return true
				}
			}
		}
	}
	return false
}

// RandomMove samples uniformly from LegalMoves. ok is false when player has
// no legal move. A nil rng uses the package-level source.
func RandomMove(b *Board, p Player, rng *rand.Rand) (m Move, ok bool) {
	moves := LegalMoves(b, p)
	if len(moves) == 0 {
		return Move{}, false
	}
	if rng == nil {
		return moves[rand.Intn(len(moves))], true
	}
	return moves[rng.Intn(len(moves))], true
}
