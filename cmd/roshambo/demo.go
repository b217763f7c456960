package main

import (
	"os"

	"github.com/lox/roshambo/internal/ui"
)

// DemoCmd plays one automated round and awards points for it. Demo output is
// a short transcript, so it always uses the line prompter.
type DemoCmd struct {
	Seed int64 `default:"0" help:"RNG seed (0 for random)"`
}

func (c *DemoCmd) Run(app *App) error {
	prompter := ui.NewLinePrompter(os.Stdin, os.Stdout)
	defer closePrompter(app, prompter)

	m, err := app.newMenu(prompter, app.settings.Play.Opponent, app.seedOrNow(c.Seed))
	if err != nil {
		return err
	}
	return m.Demo()
}
