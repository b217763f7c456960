package main

// MenuCmd runs the interactive menu, the default when no subcommand is given.
type MenuCmd struct {
	Seed int64 `default:"0" help:"RNG seed (0 for random)"`
}

func (c *MenuCmd) Run(app *App) error {
	prompter := app.NewPrompter()
	defer closePrompter(app, prompter)

	m, err := app.newMenu(prompter, app.settings.Play.Opponent, app.seedOrNow(c.Seed))
	if err != nil {
		return err
	}
	return m.Run()
}
