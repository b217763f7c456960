package bot

import (
	rand "math/rand/v2"

	"github.com/lox/roshambo/internal/game"
)

// Mirror repeats the opponent's previous move, opening with a random one.
type Mirror struct {
	rng    *rand.Rand
	last   game.Move
	primed bool
}

// NewMirror creates a new Mirror strategy
func NewMirror(rng *rand.Rand) *Mirror {
	return &Mirror{rng: rng}
}

// Name implements Strategy
func (b *Mirror) Name() string { return "mirror" }

// Next repeats the last observed opponent move
func (b *Mirror) Next() game.Move {
	if !b.primed {
		return game.Moves[b.rng.IntN(len(game.Moves))]
	}
	return b.last
}

// Observe records the opponent's move for the next round
func (b *Mirror) Observe(own, opponent game.Move) {
	b.last = opponent
	b.primed = true
}
