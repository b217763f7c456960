// Package settings loads application preferences: an optional settings.hcl
// in the data directory with ROSHAMBO_* environment variables layered on
// top. These tune the binary (colors, logging, play defaults) and are
// separate from the game's persisted reward configuration, which is game
// data owned by the store. Unlike the self-healing game documents, settings
// are developer-owned, so invalid values fail fast at startup.
package settings

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/roshambo/internal/bot"
	"github.com/lox/roshambo/internal/game"
)

// Filename is the settings file name inside the data directory.
const Filename = "settings.hcl"

// Settings is the complete application configuration.
type Settings struct {
	DataDir string `hcl:"data_dir,optional" env:"ROSHAMBO_DATA_DIR"`

	UI   *UISettings   `hcl:"ui,block"`
	Play *PlaySettings `hcl:"play,block"`
}

// UISettings contains user interface settings
type UISettings struct {
	NoColor  bool   `hcl:"no_color,optional" env:"ROSHAMBO_NO_COLOR"`
	LogLevel string `hcl:"log_level,optional" env:"ROSHAMBO_LOG_LEVEL"`
}

// PlaySettings contains defaults for interactive play
type PlaySettings struct {
	DefaultMode   string `hcl:"default_mode,optional" env:"ROSHAMBO_DEFAULT_MODE"`
	DefaultRounds int    `hcl:"default_rounds,optional" env:"ROSHAMBO_DEFAULT_ROUNDS"`
	Opponent      string `hcl:"opponent,optional" env:"ROSHAMBO_OPPONENT"`
}

// Default returns the baseline settings used when no file exists.
func Default() *Settings {
	return &Settings{
		UI: &UISettings{
			NoColor:  false,
			LogLevel: "info",
		},
		Play: &PlaySettings{
			DefaultMode:   "rounds",
			DefaultRounds: 3,
			Opponent:      "random",
		},
	}
}

// Load reads settings from an HCL file. A missing file yields defaults;
// missing blocks and fields are backfilled from defaults, so the result is
// always fully populated.
func Load(filename string) (*Settings, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var s Settings
	diags = gohcl.DecodeBody(file.Body, nil, &s)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()

	if s.UI == nil {
		s.UI = defaults.UI
	} else if s.UI.LogLevel == "" {
		s.UI.LogLevel = defaults.UI.LogLevel
	}

	if s.Play == nil {
		s.Play = defaults.Play
	} else {
		if s.Play.DefaultMode == "" {
			s.Play.DefaultMode = defaults.Play.DefaultMode
		}
		if s.Play.DefaultRounds == 0 {
			s.Play.DefaultRounds = defaults.Play.DefaultRounds
		}
		if s.Play.Opponent == "" {
			s.Play.Opponent = defaults.Play.Opponent
		}
	}

	return &s, nil
}

// ApplyEnv overrides fields from ROSHAMBO_* environment variables. Unset
// variables leave the loaded values untouched.
func ApplyEnv(s *Settings) error {
	if err := env.Parse(s); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// Validate validates the settings
func (s *Settings) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[s.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", s.UI.LogLevel)
	}

	mode, err := game.ModeFromString(s.Play.DefaultMode)
	if err != nil {
		return fmt.Errorf("invalid default mode: %s", s.Play.DefaultMode)
	}
	if s.Play.DefaultRounds < 1 {
		return fmt.Errorf("default rounds must be positive, got %d", s.Play.DefaultRounds)
	}
	if mode == game.BestOf && s.Play.DefaultRounds%2 == 0 {
		return fmt.Errorf("default rounds must be odd for best-of mode, got %d", s.Play.DefaultRounds)
	}

	if _, err := bot.ForName(s.Play.Opponent, nil); err != nil {
		return fmt.Errorf("invalid opponent: %s", s.Play.Opponent)
	}

	return nil
}
