package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/joho/godotenv"

	"github.com/lox/roshambo/cmd/roshambo/shared"
	"github.com/lox/roshambo/internal/bot"
	"github.com/lox/roshambo/internal/display"
	"github.com/lox/roshambo/internal/history"
	"github.com/lox/roshambo/internal/menu"
	"github.com/lox/roshambo/internal/randutil"
	"github.com/lox/roshambo/internal/settings"
	"github.com/lox/roshambo/internal/store"
	"github.com/lox/roshambo/internal/ui"
)

// demoRevealDelay paces the automated demo so the reveal reads like a real
// round instead of flashing past.
const demoRevealDelay = 800 * time.Millisecond

// App carries the wiring every command shares: resolved settings, logger,
// store and history writer rooted at the effective data directory.
type App struct {
	cli      *CLI
	settings *settings.Settings
	logger   *log.Logger
	store    *store.Store
	history  *history.Writer
	clock    quartz.Clock
	dataDir  string
}

// newApp resolves settings and wires the shared collaborators. The data
// directory is chosen in flag > environment/settings > default order;
// settings.hcl itself is always read from the flag or default directory,
// before any redirect it contains applies.
func newApp(cli *CLI) (*App, error) {
	// A local .env is a development convenience; missing is fine.
	_ = godotenv.Load()

	baseDir := cli.DataDir
	if baseDir == "" {
		baseDir = store.DefaultDir()
	}

	s, err := settings.Load(filepath.Join(baseDir, settings.Filename))
	if err != nil {
		return nil, err
	}
	if err := settings.ApplyEnv(s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	dataDir := cli.DataDir
	if dataDir == "" {
		dataDir = s.DataDir
	}
	if dataDir == "" {
		dataDir = store.DefaultDir()
	}

	level := s.UI.LogLevel
	if cli.Debug {
		level = "debug"
	}
	logger := shared.SetupLogger(level)

	if cli.Plain || s.UI.NoColor || display.PlainOutput() {
		display.DisableColor()
	}

	clock := quartz.NewReal()
	return &App{
		cli:      cli,
		settings: s,
		logger:   logger,
		store:    store.New(dataDir, logger),
		history:  history.NewWriter(filepath.Join(dataDir, "history"), clock, logger),
		clock:    clock,
		dataDir:  dataDir,
	}, nil
}

// NewPrompter picks the Bubble Tea prompter for interactive terminals and
// the line prompter when plain output is wanted or no TTY is attached.
func (a *App) NewPrompter() ui.Prompter {
	if a.cli.Plain || a.settings.UI.NoColor || display.PlainOutput() {
		return ui.NewLinePrompter(os.Stdin, os.Stdout)
	}

	// Keep debug logging off the alternate screen.
	if a.cli.Debug {
		if f, err := os.OpenFile("roshambo-debug.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666); err == nil {
			a.logger.SetOutput(f)
		}
	}

	t := ui.NewTUI(a.logger)
	t.Start()
	return t
}

// newMenu builds the interactive menu around a prompter, playing against the
// named opponent strategy.
func (a *App) newMenu(prompter ui.Prompter, opponent string, seed int64) (*menu.Menu, error) {
	rng := randutil.New(seed)
	strategy, err := bot.ForName(opponent, rng)
	if err != nil {
		return nil, err
	}

	return menu.New(menu.Config{
		Prompter:    prompter,
		Store:       a.store,
		History:     a.history,
		Strategy:    strategy,
		RNG:         rng,
		Clock:       a.clock,
		Logger:      a.logger,
		RevealDelay: demoRevealDelay,
	})
}

// seedOrNow substitutes the current time for an unset seed.
func (a *App) seedOrNow(seed int64) int64 {
	if seed == 0 {
		return a.clock.Now().UnixNano()
	}
	return seed
}

func closePrompter(app *App, prompter ui.Prompter) {
	if err := prompter.Close(); err != nil {
		app.logger.Error("Failed to close prompter", "error", err)
	}
}
