package bot

import (
	rand "math/rand/v2"

	"github.com/lox/roshambo/internal/game"
)

// Random plays a uniform random move every round. It is the default opponent
// for interactive play.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a new Random strategy
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Name implements Strategy
func (b *Random) Name() string { return "random" }

// Next picks uniformly among the three moves
func (b *Random) Next() game.Move {
	return game.Moves[b.rng.IntN(len(game.Moves))]
}

// Observe implements Strategy; Random ignores history
func (b *Random) Observe(own, opponent game.Move) {}
