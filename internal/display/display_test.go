package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/history"
	"github.com/lox/roshambo/internal/stats"
	"github.com/lox/roshambo/internal/store"
)

func TestMain(m *testing.M) {
	DisableColor()
	m.Run()
}

func TestMenu(t *testing.T) {
	lines := Menu()

	require.Len(t, lines, 10)
	assert.Equal(t, "=== Welcome to Rock Paper Scissors! ===", lines[1])
	assert.Equal(t, "  1) play   - Start a friendly series of rounds", lines[3])
	assert.Equal(t, "  7) help   - Ask a quick question (e.g., 'how do I win')", lines[9])
}

func TestRoundResult(t *testing.T) {
	got := RoundResult(game.Round{Number: 1, Player: game.Rock, Computer: game.Paper, Outcome: game.Lose})
	assert.Equal(t, "You chose rock, computer chose paper. Result: lose", got)

	got = RoundResult(game.Round{Number: 2, Player: game.Scissors, Computer: game.Scissors, Outcome: game.Draw})
	assert.Equal(t, "You chose scissors, computer chose scissors. Result: draw", got)
}

func TestSeriesSummary(t *testing.T) {
	lines := SeriesSummary(game.Tally{PlayerWins: 2, ComputerWins: 1, Draws: 1, RoundsPlayed: 4})

	require.Len(t, lines, 4)
	assert.Equal(t, "You 2 - Computer 1 (Draws: 1)", lines[2])
	assert.Equal(t, "Series percentages: You: 50.00%   Computer: 25.00%   Draws: 25.00%", lines[3])
}

func TestStatsLines(t *testing.T) {
	a := stats.AlltimeFromStats(store.Stats{Points: 130, PlayerWins: 5, ComputerWins: 4, Draws: 3, RoundsPlayed: 12})
	lines := StatsLines(a)

	require.Len(t, lines, 6)
	assert.Equal(t, "Points: 130", lines[2])
	assert.Equal(t, "Rounds played: 12", lines[3])
	assert.Equal(t, "You: 41.67%   Computer: 33.33%   Draws: 25.00%", lines[4])
}

func TestAlltimeLines(t *testing.T) {
	a := stats.AlltimeFromStats(store.Stats{Points: 10, RoundsPlayed: 0})
	lines := AlltimeLines(a)

	require.Len(t, lines, 4)
	assert.Equal(t, "Points: 10 | Rounds: 0 | You: 0.00% | Computer: 0.00% | Draws: 0.00%", lines[2])
}

func TestConfigLines(t *testing.T) {
	lines := ConfigLines(store.DefaultConfig())

	require.Len(t, lines, 7)
	assert.Equal(t, "Current configuration:", lines[0])
	assert.Equal(t, "  win_reward: 100", lines[1])
	assert.Equal(t, "  lose_reward: 10", lines[2])
	assert.Equal(t, "  tie_reward: 20", lines[3])
	assert.Contains(t, lines[4], "win_message: ")
}

func TestAwardLine(t *testing.T) {
	t.Run("win tier", func(t *testing.T) {
		got := AwardLine(game.Win, "You won!", 100, 230)
		assert.Equal(t, "You won! Reward: 100 points. Total: 230", got)
	})

	t.Run("lose tier", func(t *testing.T) {
		got := AwardLine(game.Lose, "You lost.", 10, 140)
		assert.Equal(t, "You lost. Consolation: 10 points. Total: 140", got)
	})

	t.Run("tie tier", func(t *testing.T) {
		got := AwardLine(game.Draw, "Tie.", 20, 160)
		assert.Equal(t, "Tie. Shared reward: 20 points. Total: 160", got)
	})
}

func TestHistoryLines(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		lines := HistoryLines(nil)
		assert.Equal(t, []string{"No series played yet."}, lines)
	})

	t.Run("one record per line", func(t *testing.T) {
		lines := HistoryLines([]history.SeriesRecord{{
			Mode:          "best-of",
			Limit:         5,
			PlayerWins:    3,
			ComputerWins:  1,
			RoundsPlayed:  4,
			Result:        "win",
			PointsAwarded: 100,
			FinishedAt:    time.Date(2025, 6, 1, 12, 4, 0, 0, time.UTC),
		}})

		require.Len(t, lines, 2)
		assert.Contains(t, lines[1], "2025-06-01 12:04")
		assert.Contains(t, lines[1], "best-of")
		assert.Contains(t, lines[1], "You 3 - Computer 1 (draws 0)")
		assert.Contains(t, lines[1], "+100")
	})
}
