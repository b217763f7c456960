package main

import (
	"fmt"

	"github.com/lox/roshambo/internal/display"
)

// HistoryCmd lists recently played series, newest first.
type HistoryCmd struct {
	Limit int `default:"10" help:"Maximum number of series to show"`
}

func (c *HistoryCmd) Run(app *App) error {
	records, err := app.history.List(c.Limit)
	if err != nil {
		return err
	}
	for _, line := range display.HistoryLines(records) {
		fmt.Println(line)
	}
	return nil
}
