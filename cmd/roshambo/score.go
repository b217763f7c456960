package main

import (
	"fmt"

	"github.com/lox/roshambo/internal/display"
	"github.com/lox/roshambo/internal/stats"
)

// ScoreCmd prints points and the all-time round percentages.
type ScoreCmd struct{}

func (c *ScoreCmd) Run(app *App) error {
	st, err := app.store.LoadStats()
	if err != nil {
		return err
	}
	for _, line := range display.StatsLines(stats.AlltimeFromStats(st)) {
		fmt.Println(line)
	}
	return nil
}
