package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lox/roshambo/internal/ui"
)

// ResetCmd clears points and stats, asking first unless --yes is given.
type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt"`
}

func (c *ResetCmd) Run(app *App) error {
	if !c.Yes {
		prompter := ui.NewLinePrompter(os.Stdin, os.Stdout)
		answer, err := prompter.Prompt("Reset all points and stats? Type 'yes' to confirm: ")
		if err != nil {
			if errors.Is(err, ui.ErrInterrupted) {
				return nil
			}
			return err
		}
		answer = strings.ToLower(answer)
		if answer != "yes" && answer != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := app.store.ResetStats(); err != nil {
		return err
	}
	fmt.Println("All set — your points and stats are now reset. Good luck!")
	return nil
}
