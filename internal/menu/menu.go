// Package menu implements the interactive surface of the game: the action
// loop, the play and config flows, the automated demo and the quick-question
// answerer. It drives a ui.Prompter, so the same loop runs over plain stdin,
// the full-screen interface and scripted prompters in tests.
package menu

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/roshambo/internal/bot"
	"github.com/lox/roshambo/internal/display"
	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/history"
	"github.com/lox/roshambo/internal/stats"
	"github.com/lox/roshambo/internal/store"
	"github.com/lox/roshambo/internal/ui"
)

// quitWords end a series or cancel a flow when typed at any prompt.
var quitWords = map[string]bool{"quit": true, "q": true, "exit": true}

// actionAliases maps menu input, numeric or named, to canonical actions.
var actionAliases = map[string]string{
	"1": "play", "play": "play",
	"2": "demo", "demo": "demo",
	"3": "score", "score": "score", "s": "score",
	"4": "config", "config": "config",
	"5": "reset", "reset": "reset",
	"6": "quit", "quit": "quit",
	"7": "help", "help": "help",
}

// questionPrefixes mark free-form input as a question for the help answerer.
var questionPrefixes = []string{"how", "what", "why", "where", "when"}

// Config wires a Menu's collaborators.
type Config struct {
	Prompter ui.Prompter
	Store    *store.Store
	History  *history.Writer
	Strategy bot.Strategy
	RNG      *rand.Rand
	Clock    quartz.Clock
	Logger   *log.Logger

	// RevealDelay paces the demo's outcome reveal. Zero disables pacing,
	// which is what tests want.
	RevealDelay time.Duration
}

// Menu runs the interactive loop over a prompter.
type Menu struct {
	prompter    ui.Prompter
	store       *store.Store
	history     *history.Writer
	strategy    bot.Strategy
	rng         *rand.Rand
	clock       quartz.Clock
	logger      *log.Logger
	revealDelay time.Duration
}

// New creates a menu. Prompter, Store, Strategy and RNG are required;
// History is optional and Clock defaults to the real clock.
func New(config Config) (*Menu, error) {
	if config.Prompter == nil {
		return nil, errors.New("menu: prompter is required")
	}
	if config.Store == nil {
		return nil, errors.New("menu: store is required")
	}
	if config.Strategy == nil {
		return nil, errors.New("menu: strategy is required")
	}
	if config.RNG == nil {
		return nil, errors.New("menu: rng is required")
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}

	return &Menu{
		prompter:    config.Prompter,
		store:       config.Store,
		history:     config.History,
		strategy:    config.Strategy,
		rng:         config.RNG,
		clock:       config.Clock,
		logger:      config.Logger.WithPrefix("menu"),
		revealDelay: config.RevealDelay,
	}, nil
}

// Run prints the menu and dispatches actions until the player quits or the
// input is interrupted. Interrupts are a graceful exit, never an error.
func (m *Menu) Run() error {
	m.printMenu()
	for {
		action, err := m.prompter.Prompt("What would you like to do? ")
		if err != nil {
			if errors.Is(err, ui.ErrInterrupted) {
				m.prompter.Print("", "Goodbye")
				return nil
			}
			return fmt.Errorf("action prompt: %w", err)
		}
		action = strings.ToLower(action)
		if canonical, ok := actionAliases[action]; ok {
			action = canonical
		}

		if isQuestion(action) {
			if err := m.answerQuestion(action); err != nil {
				return err
			}
			continue
		}

		switch action {
		case "quit", "q", "exit":
			m.prompter.Print("", "Goodbye")
			return nil
		case "score":
			if err := m.showScore(); err != nil {
				return err
			}
		case "reset":
			if err := m.resetStats(); err != nil {
				return err
			}
			m.printMenu()
		case "config":
			if err := m.Configure(); err != nil {
				return err
			}
			m.printMenu()
		case "demo":
			if err := m.Demo(); err != nil {
				return err
			}
			m.prompter.Print("")
			m.printMenu()
		case "play":
			if err := m.playFlow(); err != nil {
				return err
			}
		default:
			m.logger.Debug("Unrecognized action", "action", action)
			m.prompter.Print(display.ErrorStyle.Render("Invalid input; type 'play', 'demo', 'score', 'config', 'reset' or 'quit'."))
		}
	}
}

func (m *Menu) printMenu() {
	m.prompter.Print(display.Menu()...)
}

// isQuestion reports whether the input should go to the help answerer: the
// help action itself, anything phrased like a question, or anything with a
// question mark.
func isQuestion(action string) bool {
	if action == "help" {
		return true
	}
	if strings.Contains(action, "?") {
		return true
	}
	for _, prefix := range questionPrefixes {
		if strings.HasPrefix(action, prefix) {
			return true
		}
	}
	return false
}

// questionTokens splits a question into lowercase word tokens. Keyword
// checks match whole words only, so "how do I win" triggers on "win" but an
// unrelated word containing the letters does not.
func questionTokens(q string) map[string]bool {
	tokens := map[string]bool{}
	words := strings.FieldsFunc(strings.ToLower(q), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	for _, w := range words {
		tokens[w] = true
	}
	return tokens
}

func (m *Menu) answerQuestion(q string) error {
	tokens := questionTokens(q)

	switch {
	case tokens["help"] || tokens["h"]:
		m.prompter.Print(
			"",
			"You can ask questions like:",
			"  - 'how do I win' (tips and rules)",
			"  - 'what are the rules' (game rules)",
			"  - 'how are points awarded' (rewards and scoring)",
			"Or type 'play' to start, 'score' to view points, or 'config' to change rewards.",
			"")
	case tokens["how"] && tokens["win"]:
		m.prompter.Print(
			"",
			"Tips to win:",
			"  - Rock beats scissors, scissors beats paper, and paper beats rock.",
			"  - There's no guaranteed move against a random opponent, but looking for patterns can help.",
			"  - Play enough rounds to let statistics matter; your all-time percentages are tracked under 'score'.",
			"")
	case tokens["rules"] || tokens["rule"] || tokens["what"]:
		m.prompter.Print(
			"",
			"Rules:",
			"  - Each round, choose 'rock', 'paper' or 'scissors'.",
			"  - Rock beats scissors, scissors beats paper, paper beats rock. Same move is a draw.",
			"")
	case tokens["point"] || tokens["points"] || tokens["reward"] || tokens["rewards"]:
		conf, err := m.store.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		m.prompter.Print(
			"",
			"Rewards:",
			fmt.Sprintf("  - Win a series: %d points", conf.WinReward),
			fmt.Sprintf("  - Tie a series: %d points", conf.TieReward),
			fmt.Sprintf("  - Lose a series: %d points", conf.LoseReward),
			"You can change these under 'config'.",
			"")
	default:
		m.prompter.Print(
			"",
			"Sorry, I don't know that one. Try: 'how do I win', 'what are the rules', 'how are points awarded', or type 'help' to see more options.",
			"")
	}
	return nil
}

func (m *Menu) showScore() error {
	doc, err := m.store.LoadStats()
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}
	m.prompter.Print(display.StatsLines(stats.AlltimeFromStats(doc))...)
	return nil
}

func (m *Menu) resetStats() error {
	if err := m.store.ResetStats(); err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}
	m.prompter.Print("", "All set — your points and stats are now reset. Good luck!", "")
	return nil
}

// playFlow asks for mode and round count, then runs the series. Invalid
// input cancels back to the menu with a notice, matching the menu's
// report-and-reprompt contract.
func (m *Menu) playFlow() error {
	mode, err := m.prompter.Prompt("Play mode ('rounds' or 'best-of'): ")
	if err != nil {
		if errors.Is(err, ui.ErrInterrupted) {
			return nil
		}
		return fmt.Errorf("mode prompt: %w", err)
	}
	mode = strings.ToLower(mode)
	if quitWords[mode] {
		return nil
	}

	modeClean := stripNonLetters(mode)
	switch {
	case strings.HasPrefix(modeClean, "r"):
		return m.promptAndPlay(game.FixedRounds)
	case strings.HasPrefix(modeClean, "b"):
		return m.promptAndPlay(game.BestOf)
	default:
		m.prompter.Print("Please enter 'rounds' or 'best-of'.")
		return nil
	}
}

func stripNonLetters(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, s)
}

func (m *Menu) promptAndPlay(mode game.Mode) error {
	label := "How many rounds would you like to play? Enter a whole number (e.g., 3): "
	if mode == game.BestOf {
		label = "Best-of N — enter an odd number (e.g., 3 or 5): "
	}

	input, err := m.prompter.Prompt(label)
	if err != nil {
		if errors.Is(err, ui.ErrInterrupted) {
			return nil
		}
		return fmt.Errorf("rounds prompt: %w", err)
	}
	if quitWords[strings.ToLower(input)] {
		m.prompter.Print("Cancelled — returning to the main menu.")
		return nil
	}

	n, ok := parseDigits(input)
	if mode == game.FixedRounds {
		if !ok || n <= 0 {
			m.prompter.Print("Please enter a whole number greater than zero.")
			return nil
		}
	} else {
		if !ok {
			m.prompter.Print("Please enter a positive integer.")
			return nil
		}
		if n <= 0 {
			m.prompter.Print("Number must be greater than zero.")
			return nil
		}
		if n%2 == 0 {
			m.prompter.Print("Please enter an odd number (e.g., 3 or 5) so there's a clear winner.")
			return nil
		}
	}

	return m.Play(mode, n)
}

// parseDigits accepts only unsigned digit strings, so "3" parses but "-3",
// "3.5" and "three" do not.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Play runs one series in the given mode and handles its result. It is also
// the entry point for the non-interactive `play` subcommand.
func (m *Menu) Play(mode game.Mode, rounds int) error {
	startedAt := m.clock.Now()

	series, err := game.New(game.Config{
		Mode:     mode,
		Rounds:   rounds,
		Player:   m.playerSource(),
		Computer: bot.Source(m.strategy),
		OnRound:  m.onRound,
		Logger:   m.logger,
	})
	if err != nil {
		return fmt.Errorf("new series: %w", err)
	}

	tally, err := series.Run()
	if err != nil {
		return fmt.Errorf("run series: %w", err)
	}

	return m.handleSeriesResult(mode, rounds, tally, startedAt)
}

// playerSource prompts for the player's move each round. Invalid input
// re-prompts within the round; quit words and interrupts end the series
// early with whatever has been resolved so far.
func (m *Menu) playerSource() game.MoveSource {
	return game.MoveSourceFunc(func(round, of int) (game.Move, error) {
		for {
			input, err := m.prompter.Prompt(fmt.Sprintf("Round %d/%d - Your choice (rock/paper/scissors): ", round, of))
			if err != nil {
				if errors.Is(err, ui.ErrInterrupted) {
					m.prompter.Print("Goodbye — thanks for playing!")
					return game.Rock, game.ErrSeriesQuit
				}
				return game.Rock, err
			}
			if quitWords[strings.ToLower(input)] {
				m.prompter.Print("Series ended early — returning to the main menu.")
				return game.Rock, game.ErrSeriesQuit
			}

			move, err := game.MoveFromString(input)
			if err != nil {
				m.prompter.Print(display.ErrorStyle.Render("Invalid choice; try again."))
				continue
			}
			return move, nil
		}
	})
}

func (m *Menu) onRound(r game.Round) {
	m.strategy.Observe(r.Computer, r.Player)
	m.prompter.Print(display.RoundResult(r))
}

// handleSeriesResult prints the summary, persists the tallies, applies
// exactly one tier award and records the series. A series with no resolved
// rounds is not handled at all.
func (m *Menu) handleSeriesResult(mode game.Mode, limit int, tally game.Tally, startedAt time.Time) error {
	if tally.RoundsPlayed == 0 {
		m.logger.Debug("No rounds resolved, skipping series result")
		return nil
	}

	conf, err := m.store.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	m.prompter.Print(display.SeriesSummary(tally)...)

	if err := m.store.UpdateStats(tally.PlayerWins, tally.ComputerWins, tally.Draws, tally.RoundsPlayed); err != nil {
		return fmt.Errorf("update stats: %w", err)
	}
	doc, err := m.store.LoadStats()
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}
	m.prompter.Print(display.AlltimeLines(stats.AlltimeFromStats(doc))...)

	result := tally.Outcome()
	points, message := rewardFor(result, conf)
	total, err := m.store.AwardPoints(points)
	if err != nil {
		return fmt.Errorf("award points: %w", err)
	}
	m.prompter.Print(display.AwardLine(result, message, points, total))

	if m.history != nil {
		rec := history.SeriesRecord{
			Mode:          mode.String(),
			Limit:         limit,
			PlayerWins:    tally.PlayerWins,
			ComputerWins:  tally.ComputerWins,
			Draws:         tally.Draws,
			RoundsPlayed:  tally.RoundsPlayed,
			Result:        result.String(),
			PointsAwarded: points,
			StartedAt:     startedAt,
		}
		if _, err := m.history.Record(rec); err != nil {
			// History is best-effort; the series result already stands.
			m.logger.Warn("Failed to record series history", "error", err)
		}
	}

	return nil
}

func rewardFor(result game.Outcome, conf store.Config) (int, string) {
	switch result {
	case game.Win:
		return conf.WinReward, conf.WinMessage
	case game.Lose:
		return conf.LoseReward, conf.LoseMessage
	default:
		return conf.TieReward, conf.TieMessage
	}
}

// Configure walks through each reward field. Empty input keeps the current
// value, non-numeric reward input keeps it with a notice, and the document
// is saved once at the end.
func (m *Menu) Configure() error {
	conf, err := m.store.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	m.prompter.Print(display.ConfigLines(conf)...)
	m.prompter.Print(display.InfoStyle.Render("Press Enter to keep the current value."))

	fields := []struct {
		label  string
		apply  func(string)
		render string
	}{
		{"win_reward", func(v string) { conf.WinReward = parseReward(m.prompter, "win_reward", v, conf.WinReward) }, strconv.Itoa(conf.WinReward)},
		{"tie_reward", func(v string) { conf.TieReward = parseReward(m.prompter, "tie_reward", v, conf.TieReward) }, strconv.Itoa(conf.TieReward)},
		{"lose_reward", func(v string) { conf.LoseReward = parseReward(m.prompter, "lose_reward", v, conf.LoseReward) }, strconv.Itoa(conf.LoseReward)},
		{"win_message", func(v string) { conf.WinMessage = v }, conf.WinMessage},
		{"tie_message", func(v string) { conf.TieMessage = v }, conf.TieMessage},
		{"lose_message", func(v string) { conf.LoseMessage = v }, conf.LoseMessage},
	}

	for _, f := range fields {
		input, err := m.prompter.Prompt(fmt.Sprintf("%s (current=%s): ", f.label, f.render))
		if err != nil {
			if errors.Is(err, ui.ErrInterrupted) {
				m.prompter.Print("", "Cancelled.")
				return nil
			}
			return fmt.Errorf("config prompt: %w", err)
		}
		if input != "" {
			f.apply(input)
		}
	}

	if err := m.store.SaveConfig(conf); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	m.prompter.Print("Configuration saved.")
	return nil
}

func parseReward(p ui.Prompter, field, input string, current int) int {
	n, ok := parseDigits(input)
	if !ok {
		p.Print(fmt.Sprintf("Invalid %s; keeping current value.", field))
		return current
	}
	return n
}

// Demo plays random moves until a decisive outcome, bounded at ten
// attempts with a forced win as fallback, then applies the single-round
// stats update and the win or lose award.
func (m *Menu) Demo() error {
	m.prompter.Print("Running automated demo (single decisive outcome)")

	var player, computer game.Move
	outcome := game.Draw
	for attempt := 0; attempt < 10; attempt++ {
		player = game.Moves[m.rng.IntN(len(game.Moves))]
		computer = game.Moves[m.rng.IntN(len(game.Moves))]
		outcome = game.Decide(player, computer)
		if outcome != game.Draw {
			break
		}
	}
	if outcome == game.Draw {
		player, computer, outcome = game.Rock, game.Scissors, game.Win
	}

	if m.revealDelay > 0 {
		timer := m.clock.NewTimer(m.revealDelay)
		<-timer.C
	}
	m.prompter.Print(fmt.Sprintf("Demo outcome: You %s vs Computer %s -> %s", player, computer, outcome))

	playerWins, computerWins := 0, 1
	if outcome == game.Win {
		playerWins, computerWins = 1, 0
	}
	if err := m.store.UpdateStats(playerWins, computerWins, 0, 1); err != nil {
		return fmt.Errorf("update stats: %w", err)
	}

	conf, err := m.store.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	points, message := rewardFor(outcome, conf)
	total, err := m.store.AwardPoints(points)
	if err != nil {
		return fmt.Errorf("award points: %w", err)
	}
	m.prompter.Print(display.AwardLine(outcome, message, points, total))
	return nil
}
