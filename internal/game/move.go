package game

import (
	"errors"
	"fmt"
	"strings"
)

// Move represents one of the three playable moves
type Move int

const (
	// Rock beats scissors
	Rock Move = iota
	// Paper beats rock
	Paper
	// Scissors beats paper
	Scissors
)

// Moves lists every valid move in canonical order. Bots index into it for
// uniform random selection.
var Moves = []Move{Rock, Paper, Scissors}

// ErrInvalidMove is returned when an input cannot be parsed as a move.
var ErrInvalidMove = errors.New("game: invalid move")

// String returns the string representation of a move
func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "unknown"
	}
}

// Beats returns the move m defeats.
func (m Move) Beats() Move {
	switch m {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// BeatenBy returns the move that defeats m.
func (m Move) BeatenBy() Move {
	switch m {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

// MoveFromString converts raw input to a Move. Input is trimmed and lowercased
// before validation, so " Rock " parses as Rock. Anything outside
// rock/paper/scissors returns ErrInvalidMove.
func MoveFromString(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock":
		return Rock, nil
	case "paper":
		return Paper, nil
	case "scissors":
		return Scissors, nil
	default:
		return Rock, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
}
