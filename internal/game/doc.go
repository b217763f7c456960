// Package game implements the core rock-paper-scissors rules.
//
// The building blocks are Move, Outcome and Decide, which resolve a single
// round, and Series, which runs rounds under a fixed-count or best-of mode
// and aggregates the result into a Tally.
//
// # Basic Usage
//
// Resolve a single round:
//
//	outcome := game.Decide(game.Rock, game.Scissors) // game.Win
//
// Or from raw input, with normalization and validation:
//
//	outcome, err := game.DecideStrings(" Rock ", "scissors")
//
// # Running a Series
//
// A Series pulls moves from two MoveSource implementations, so the same
// engine drives interactive play, demos and bot-vs-bot simulation:
//
//	s, err := game.New(game.Config{
//	    Mode:     game.BestOf,
//	    Rounds:   5,
//	    Player:   promptSource,
//	    Computer: botSource,
//	})
//	tally, err := s.Run()
//
// A source returning game.ErrSeriesQuit ends the series early with the tally
// accumulated so far.
//
// # Deterministic Testing
//
// Sources are plain functions via MoveSourceFunc, so tests inject fixed move
// sequences instead of randomness:
//
//	moves := []game.Move{game.Rock, game.Paper}
//	src := game.MoveSourceFunc(func(round, of int) (game.Move, error) {
//	    return moves[round-1], nil
//	})
package game
