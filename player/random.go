package player

import (
	"loa/engine"
	"loa/game"

	"golang.org/x/exp/rand"
)

type random struct {
	rng *rand.Rand
}

// NewRandom returns a player that picks uniformly among the legal moves. Equal seeds
// give equal games.
func NewRandom(seed uint64) engine.Player {
	return &random{rng: rand.New(rand.NewSource(seed))}
}

func (r *random) FindMove(board *game.Board) (game.Move, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, engine.ErrNoLegalMoves
	}
	return moves[r.rng.Intn(len(moves))], nil
}
