// Package display renders the game's user-facing text: the menu banner,
// round and series results, stat blocks and history listings. Everything
// returns plain lines for a ui.Prompter to print, styled with lipgloss so
// output degrades to plain text on dumb terminals.
package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/history"
	"github.com/lox/roshambo/internal/stats"
	"github.com/lox/roshambo/internal/store"
)

// PlainOutput reports whether stdout cannot support the full-screen
// interface, either because it is not a terminal or because the environment
// disables color.
func PlainOutput() bool {
	out := termenv.NewOutput(os.Stdout)
	return out.EnvNoColor() || out.ColorProfile() == termenv.Ascii
}

// DisableColor forces every style to render as plain text.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Menu returns the welcome banner and the action list.
func Menu() []string {
	return []string{
		"",
		TitleStyle.Render("=== Welcome to Rock Paper Scissors! ==="),
		"What would you like to do?",
		"  1) play   - Start a friendly series of rounds",
		"  2) demo   - Watch a short demo (random moves)",
		"  3) score  - View your points and all-time stats",
		"  4) config - Change reward amounts and messages",
		"  5) reset  - Reset your points and stats",
		"  6) quit   - Exit the game",
		"  7) help   - Ask a quick question (e.g., 'how do I win')",
	}
}

func outcomeStyle(o game.Outcome) lipgloss.Style {
	switch o {
	case game.Win:
		return WinStyle
	case game.Lose:
		return LoseStyle
	default:
		return DrawStyle
	}
}

// RoundResult renders one resolved round.
func RoundResult(r game.Round) string {
	return fmt.Sprintf("You chose %s, computer chose %s. Result: %s",
		r.Player, r.Computer, outcomeStyle(r.Outcome).Render(r.Outcome.String()))
}

// SeriesSummary renders the head-to-head summary of a finished series with
// per-series percentages.
func SeriesSummary(t game.Tally) []string {
	return []string{
		"",
		HeaderStyle.Render("--- Series Summary ---"),
		fmt.Sprintf("You %d - Computer %d (Draws: %d)", t.PlayerWins, t.ComputerWins, t.Draws),
		fmt.Sprintf("Series percentages: You: %s   Computer: %s   Draws: %s",
			stats.FormatPct(t.PlayerWins, t.RoundsPlayed),
			stats.FormatPct(t.ComputerWins, t.RoundsPlayed),
			stats.FormatPct(t.Draws, t.RoundsPlayed)),
	}
}

// AlltimeLines renders the one-line all-time block shown after a series.
func AlltimeLines(a stats.Alltime) []string {
	return []string{
		"",
		HeaderStyle.Render("--- All-time ---"),
		fmt.Sprintf("Points: %s | Rounds: %s | You: %s | Computer: %s | Draws: %s",
			a.Points, a.Rounds, a.You, a.Computer, a.Draws),
		"",
	}
}

// StatsLines renders the standalone score view.
func StatsLines(a stats.Alltime) []string {
	return []string{
		"",
		HeaderStyle.Render("--- Your Stats ---"),
		"Points: " + a.Points,
		"Rounds played: " + a.Rounds,
		fmt.Sprintf("You: %s   Computer: %s   Draws: %s", a.You, a.Computer, a.Draws),
		"",
	}
}

// ConfigLines renders the current reward configuration, in document order.
func ConfigLines(c store.Config) []string {
	return []string{
		"Current configuration:",
		fmt.Sprintf("  win_reward: %d", c.WinReward),
		fmt.Sprintf("  lose_reward: %d", c.LoseReward),
		fmt.Sprintf("  tie_reward: %d", c.TieReward),
		fmt.Sprintf("  win_message: %s", c.WinMessage),
		fmt.Sprintf("  lose_message: %s", c.LoseMessage),
		fmt.Sprintf("  tie_message: %s", c.TieMessage),
	}
}

// AwardLine renders the configured result message plus the points granted
// for the series tier and the new total.
func AwardLine(result game.Outcome, message string, points, total int) string {
	styled := outcomeStyle(result).Render(message)
	switch result {
	case game.Win:
		return fmt.Sprintf("%s Reward: %d points. Total: %d", styled, points, total)
	case game.Lose:
		return fmt.Sprintf("%s Consolation: %d points. Total: %d", styled, points, total)
	default:
		return fmt.Sprintf("%s Shared reward: %d points. Total: %d", styled, points, total)
	}
}

// HistoryLines renders recent series records, newest first.
func HistoryLines(records []history.SeriesRecord) []string {
	if len(records) == 0 {
		return []string{"No series played yet."}
	}

	lines := []string{HeaderStyle.Render("--- Recent Series ---")}
	for _, rec := range records {
		lines = append(lines, fmt.Sprintf("%s  %-9s %2d  %-4s  You %d - Computer %d (draws %d)  +%d",
			rec.FinishedAt.Format("2006-01-02 15:04"),
			rec.Mode, rec.Limit, rec.Result,
			rec.PlayerWins, rec.ComputerWins, rec.Draws, rec.PointsAwarded))
	}
	return lines
}
