// Package bot provides computer opponents for the game.
package bot

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/lox/roshambo/internal/game"
)

// Strategy chooses the computer's move each round.
type Strategy interface {
	// Name identifies the strategy in flags and series records
	Name() string
	// Next returns the move to play this round
	Next() game.Move
	// Observe reports both resolved moves back after a round, for
	// strategies that react to the opponent
	Observe(own, opponent game.Move)
}

// Source adapts a Strategy to the game.MoveSource interface.
func Source(s Strategy) game.MoveSource {
	return game.MoveSourceFunc(func(round, of int) (game.Move, error) {
		return s.Next(), nil
	})
}

// ForName returns a fresh strategy by name.
func ForName(name string, rng *rand.Rand) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random", "rnd":
		return NewRandom(rng), nil
	case "cycle":
		return NewCycle(), nil
	case "mirror":
		return NewMirror(rng), nil
	case "counter":
		return NewCounter(rng), nil
	default:
		return nil, fmt.Errorf("unknown strategy: %s (available: %s)", name, strings.Join(Names(), ", "))
	}
}

// Names returns the list of known strategy names.
func Names() []string {
	return []string{"random", "cycle", "mirror", "counter"}
}
