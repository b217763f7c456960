package bot

import "github.com/lox/roshambo/internal/game"

// Cycle plays rock, paper, scissors in a fixed rotation. Useful as a fully
// predictable opponent in simulations and tests.
type Cycle struct {
	next int
}

// NewCycle creates a new Cycle strategy
func NewCycle() *Cycle {
	return &Cycle{}
}

// Name implements Strategy
func (b *Cycle) Name() string { return "cycle" }

// Next returns the next move in the rotation
func (b *Cycle) Next() game.Move {
	m := game.Moves[b.next%len(game.Moves)]
	b.next++
	return m
}

// Observe implements Strategy; Cycle ignores history
func (b *Cycle) Observe(own, opponent game.Move) {}
