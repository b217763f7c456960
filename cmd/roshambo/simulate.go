package main

import (
	"fmt"
	"time"

	"github.com/lox/roshambo/cmd/roshambo/shared"
	"github.com/lox/roshambo/internal/simulator"
)

// SimulateCmd plays strategy-vs-strategy series and reports win rates.
type SimulateCmd struct {
	Series   int    `default:"1000" help:"Number of series to play"`
	BestOf   int    `default:"3" help:"Series length, must be odd"`
	Player   string `default:"counter" help:"Strategy for the player side"`
	Opponent string `default:"random" help:"Strategy for the computer side"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	Workers  int    `default:"0" help:"Concurrent workers (0 for NumCPU)"`
}

func (c *SimulateCmd) Run(app *App) error {
	seed := app.seedOrNow(c.Seed)

	sim, err := simulator.New(simulator.Config{
		Series:   c.Series,
		BestOf:   c.BestOf,
		Player:   c.Player,
		Opponent: c.Opponent,
		Seed:     seed,
		Workers:  c.Workers,
		Logger:   app.logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Simulating %d best-of-%d series: %s vs %s (seed: %d)\n",
		c.Series, c.BestOf, c.Player, c.Opponent, seed)

	ctx := shared.SetupSignalHandler(app.logger)

	start := time.Now()
	result, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	printResults(result, c.Player, c.Opponent, duration)
	return nil
}

func printResults(result simulator.Result, player, opponent string, duration time.Duration) {
	mean := result.WinRate()
	se := result.Score.StdError()
	low, high := result.Score.ConfidenceInterval95()
	perSec := float64(result.Series) / duration.Seconds()

	fmt.Printf("\n=== RESULTS: %s vs %s ===\n", player, opponent)
	fmt.Printf("Series played: %d (%d rounds)\n", result.Series, result.Rounds)
	fmt.Printf("Total time: %v (%.0f series/sec)\n", duration.Round(time.Millisecond), perSec)
	fmt.Printf("Series record: %d wins, %d losses, %d ties\n", result.Wins, result.Losses, result.Ties)
	fmt.Printf("Round record: %d wins, %d losses, %d draws\n", result.RoundWins, result.RoundLosses, result.RoundDraws)
	fmt.Printf("Win rate: %.4f ± %.4f SE\n", mean, se)
	fmt.Printf("95%% CI: [%.4f, %.4f]\n", low, high)
}
