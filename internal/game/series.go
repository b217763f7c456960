package game

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrSeriesQuit signals that a move source wants the series to end early.
// The series treats it as a graceful stop, not a failure.
var ErrSeriesQuit = errors.New("game: series quit")

// Mode selects how a series decides it is over.
type Mode int

const (
	// FixedRounds plays exactly the configured number of rounds
	FixedRounds Mode = iota
	// BestOf plays until one side reaches a majority of an odd round count
	BestOf
)

// String returns the string representation of a mode
func (m Mode) String() string {
	switch m {
	case FixedRounds:
		return "rounds"
	case BestOf:
		return "best-of"
	default:
		return "unknown"
	}
}

// ModeFromString converts a string to a Mode
func ModeFromString(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rounds":
		return FixedRounds, nil
	case "best-of", "bestof":
		return BestOf, nil
	default:
		return FixedRounds, fmt.Errorf("game: unknown mode %q", s)
	}
}

// MoveSource supplies one side's move each round. Implementations may block
// on user input. Returning ErrSeriesQuit ends the series early with the
// tallies accumulated so far; any other error aborts it.
type MoveSource interface {
	NextMove(round, of int) (Move, error)
}

// MoveSourceFunc adapts a function to the MoveSource interface.
type MoveSourceFunc func(round, of int) (Move, error)

// NextMove calls f.
func (f MoveSourceFunc) NextMove(round, of int) (Move, error) { return f(round, of) }

// Round describes a single resolved round.
type Round struct {
	Number   int
	Player   Move
	Computer Move
	Outcome  Outcome
}

// Tally is the aggregate result of a series. RoundsPlayed counts resolved
// rounds only, so it always equals PlayerWins + ComputerWins + Draws.
type Tally struct {
	PlayerWins   int
	ComputerWins int
	Draws        int
	RoundsPlayed int
	Quit         bool
}

// Outcome returns the series result by comparing aggregate wins: strictly
// more player wins is a Win, strictly fewer a Lose, equal a Draw.
func (t Tally) Outcome() Outcome {
	switch {
	case t.PlayerWins > t.ComputerWins:
		return Win
	case t.PlayerWins < t.ComputerWins:
		return Lose
	default:
		return Draw
	}
}

// Config holds configuration for running a series
type Config struct {
	Mode     Mode
	Rounds   int
	Player   MoveSource
	Computer MoveSource
	OnRound  func(Round)
	Logger   *log.Logger
}

// Series runs rounds between two move sources until the mode's terminal
// condition is met.
type Series struct {
	config Config
	needed int
}

// New creates a series with the given configuration. Rounds must be positive
// and odd for best-of mode, and both move sources must be set.
func New(config Config) (*Series, error) {
	if config.Rounds < 1 {
		return nil, fmt.Errorf("game: series needs at least one round, got %d", config.Rounds)
	}
	if config.Mode == BestOf && config.Rounds%2 == 0 {
		return nil, fmt.Errorf("game: best-of series needs an odd round count, got %d", config.Rounds)
	}
	if config.Player == nil || config.Computer == nil {
		return nil, errors.New("game: both move sources are required")
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}

	s := &Series{config: config}
	if config.Mode == BestOf {
		s.needed = config.Rounds/2 + 1
	}
	return s, nil
}

// Needed returns the win count that ends a best-of series, or zero in
// fixed-rounds mode.
func (s *Series) Needed() int { return s.needed }

// Run plays rounds until the series completes or a source ends it early.
// A source returning ErrSeriesQuit stops the series gracefully and the tally
// accumulated so far comes back with Quit set. Invalid input never reaches
// the series: sources re-prompt internally, so every round seen here resolves
// and increments exactly one win/loss/draw counter plus RoundsPlayed.
func (s *Series) Run() (Tally, error) {
	var tally Tally
	for round := 1; !s.done(tally, round); round++ {
		player, err := s.config.Player.NextMove(round, s.config.Rounds)
		if err != nil {
			if errors.Is(err, ErrSeriesQuit) {
				s.config.Logger.Debug("Series quit by player", "round", round)
				tally.Quit = true
				return tally, nil
			}
			return tally, fmt.Errorf("player move: %w", err)
		}

		computer, err := s.config.Computer.NextMove(round, s.config.Rounds)
		if err != nil {
			if errors.Is(err, ErrSeriesQuit) {
				tally.Quit = true
				return tally, nil
			}
			return tally, fmt.Errorf("computer move: %w", err)
		}

		outcome := Decide(player, computer)
		switch outcome {
		case Win:
			tally.PlayerWins++
		case Lose:
			tally.ComputerWins++
		case Draw:
			tally.Draws++
		}
		tally.RoundsPlayed++

		s.config.Logger.Debug("Round resolved",
			"round", round,
			"player", player,
			"computer", computer,
			"outcome", outcome)

		if s.config.OnRound != nil {
			s.config.OnRound(Round{Number: round, Player: player, Computer: computer, Outcome: outcome})
		}
	}
	return tally, nil
}

func (s *Series) done(tally Tally, round int) bool {
	if s.config.Mode == BestOf && (tally.PlayerWins >= s.needed || tally.ComputerWins >= s.needed) {
		return true
	}
	return round > s.config.Rounds
}
