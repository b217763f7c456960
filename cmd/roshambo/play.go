package main

import (
	"github.com/lox/roshambo/internal/game"
)

// PlayCmd plays one series without going through the menu. Unset flags fall
// back to the play defaults in settings.
type PlayCmd struct {
	Mode     string `help:"Series mode: rounds or best-of"`
	Rounds   int    `help:"Round count, or series length for best-of"`
	Opponent string `help:"Computer strategy: random, cycle, mirror, counter"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
}

func (c *PlayCmd) Run(app *App) error {
	modeName := c.Mode
	if modeName == "" {
		modeName = app.settings.Play.DefaultMode
	}
	mode, err := game.ModeFromString(modeName)
	if err != nil {
		return err
	}

	rounds := c.Rounds
	if rounds == 0 {
		rounds = app.settings.Play.DefaultRounds
	}

	opponent := c.Opponent
	if opponent == "" {
		opponent = app.settings.Play.Opponent
	}

	prompter := app.NewPrompter()
	defer closePrompter(app, prompter)

	m, err := app.newMenu(prompter, opponent, app.seedOrNow(c.Seed))
	if err != nil {
		return err
	}
	return m.Play(mode, rounds)
}
