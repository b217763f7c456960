package bot

import (
	rand "math/rand/v2"

	"github.com/lox/roshambo/internal/game"
)

// Counter plays whatever beats the opponent's previous move, opening with a
// random one. Strong against players who repeat themselves.
type Counter struct {
	rng    *rand.Rand
	last   game.Move
	primed bool
}

// NewCounter creates a new Counter strategy
func NewCounter(rng *rand.Rand) *Counter {
	return &Counter{rng: rng}
}

// Name implements Strategy
func (b *Counter) Name() string { return "counter" }

// Next beats the last observed opponent move
func (b *Counter) Next() game.Move {
	if !b.primed {
		return game.Moves[b.rng.IntN(len(game.Moves))]
	}
	return b.last.BeatenBy()
}

// Observe records the opponent's move for the next round
func (b *Counter) Observe(own, opponent game.Move) {
	b.last = opponent
	b.primed = true
}
