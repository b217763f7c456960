package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	DataDir string           `help:"Directory for score, config and history files" type:"path"`
	Debug   bool             `help:"Enable debug logging"`
	Plain   bool             `help:"Force plain line-based output"`

	Menu     MenuCmd     `cmd:"" default:"1" help:"Interactive menu (the default)"`
	Play     PlayCmd     `cmd:"" help:"Play a series against the computer"`
	Demo     DemoCmd     `cmd:"" help:"Play one automated round"`
	Score    ScoreCmd    `cmd:"" help:"Show points and all-time stats"`
	Config   ConfigCmd   `cmd:"" help:"Show or edit the reward configuration"`
	Reset    ResetCmd    `cmd:"" help:"Reset points and stats"`
	History  HistoryCmd  `cmd:"" help:"List recently played series"`
	Simulate SimulateCmd `cmd:"" help:"Run strategy-vs-strategy series and report win rates"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("roshambo"),
		kong.Description("Rock-paper-scissors in the terminal, with persistent scores"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	app, err := newApp(&cli)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(app)
	ctx.FatalIfErrorf(err)
}
