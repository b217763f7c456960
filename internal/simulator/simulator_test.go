package simulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	valid := Config{Series: 10, BestOf: 3, Player: "random", Opponent: "random"}

	_, err := New(valid)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero series", func(c *Config) { c.Series = 0 }, "series count"},
		{"even best-of", func(c *Config) { c.BestOf = 4 }, "odd"},
		{"zero best-of", func(c *Config) { c.BestOf = 0 }, "at least 1"},
		{"unknown player", func(c *Config) { c.Player = "psychic" }, "player strategy"},
		{"unknown opponent", func(c *Config) { c.Opponent = "psychic" }, "opponent strategy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)
			_, err := New(config)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRunDeterministicAcrossWorkers(t *testing.T) {
	run := func(workers int) Result {
		sim, err := New(Config{
			Series:   60,
			BestOf:   3,
			Player:   "random",
			Opponent: "random",
			Seed:     42,
			Workers:  workers,
		})
		require.NoError(t, err)
		result, err := sim.Run(context.Background())
		require.NoError(t, err)
		return result
	}

	serial := run(1)
	parallel := run(4)
	require.Equal(t, serial, parallel)
	require.Equal(t, 60, serial.Series)
}

func TestRunCycleMatchupDrawsEveryRound(t *testing.T) {
	// Two cycle strategies step the same rotation in lockstep, so every
	// round is a draw and every series plays its full length.
	sim, err := New(Config{
		Series:   20,
		BestOf:   3,
		Player:   "cycle",
		Opponent: "cycle",
		Seed:     1,
		Workers:  2,
	})
	require.NoError(t, err)

	result, err := sim.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 20, result.Series)
	require.Equal(t, 0, result.Wins)
	require.Equal(t, 0, result.Losses)
	require.Equal(t, 20, result.Ties)
	require.Equal(t, 60, result.Rounds)
	require.Equal(t, 60, result.RoundDraws)
	require.Equal(t, 0, result.RoundWins)
	require.Equal(t, 0, result.RoundLosses)
	require.InDelta(t, 0.5, result.WinRate(), 1e-9)
}

func TestRunMirrorLosesToCycle(t *testing.T) {
	// Cycle's next move always beats its own previous move, which is
	// exactly what mirror replays, so cycle wins every round after the
	// first and takes every series.
	sim, err := New(Config{
		Series:   50,
		BestOf:   3,
		Player:   "mirror",
		Opponent: "cycle",
		Seed:     7,
		Workers:  4,
	})
	require.NoError(t, err)

	result, err := sim.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 50, result.Series)
	require.Equal(t, 50, result.Losses)
	require.Equal(t, 0, result.Wins)
	require.Equal(t, 0, result.Ties)
	require.InDelta(t, 0, result.WinRate(), 1e-9)

	low, high := result.Score.ConfidenceInterval95()
	require.InDelta(t, 0, low, 1e-9)
	require.InDelta(t, 0, high, 1e-9)
}

func TestRunTotalsConsistent(t *testing.T) {
	sim, err := New(Config{
		Series:   30,
		BestOf:   5,
		Player:   "counter",
		Opponent: "random",
		Seed:     99,
		Workers:  3,
	})
	require.NoError(t, err)

	result, err := sim.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 30, result.Series)
	require.Equal(t, result.Series, result.Wins+result.Losses+result.Ties)
	require.Equal(t, result.Rounds, result.RoundWins+result.RoundLosses+result.RoundDraws)
	require.Equal(t, result.Series, result.Score.Count)
}

func TestRunCancelledContext(t *testing.T) {
	sim, err := New(Config{
		Series:   1000,
		BestOf:   3,
		Player:   "random",
		Opponent: "random",
		Seed:     5,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = sim.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
