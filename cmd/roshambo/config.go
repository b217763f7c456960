package main

import (
	"fmt"

	"github.com/lox/roshambo/internal/display"
)

// ConfigCmd shows or interactively edits the reward configuration.
type ConfigCmd struct {
	Show bool `help:"Print the current configuration without editing"`
}

func (c *ConfigCmd) Run(app *App) error {
	if c.Show {
		conf, err := app.store.LoadConfig()
		if err != nil {
			return err
		}
		for _, line := range display.ConfigLines(conf) {
			fmt.Println(line)
		}
		return nil
	}

	prompter := app.NewPrompter()
	defer closePrompter(app, prompter)

	m, err := app.newMenu(prompter, app.settings.Play.Opponent, app.seedOrNow(0))
	if err != nil {
		return err
	}
	return m.Configure()
}
