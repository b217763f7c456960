// Package store persists the game's two singleton documents, the reward
// configuration and the all-time stats, as pretty-printed JSON files under a
// single data directory.
//
// Loads self-heal: a missing document is created with defaults, and a
// malformed one is silently overwritten with defaults. Corruption never
// surfaces to callers, only real I/O failures do. Saves are atomic
// whole-document overwrites, so callers follow a read-modify-write cycle.
package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/lox/roshambo/internal/fileutil"
)

const (
	configFile = "config.json"
	scoreFile  = "score.json"
)

// Store reads and writes the documents under one base directory, created on
// demand. There is no locking: a single process owns the directory.
type Store struct {
	dir    string
	logger *log.Logger
}

// New creates a store rooted at dir.
func New(dir string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{dir: dir, logger: logger}
}

// DefaultDir returns the per-user data directory, ~/.roshambo, falling back
// to a relative .roshambo when the home directory cannot be determined.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".roshambo"
	}
	return filepath.Join(home, ".roshambo")
}

// Dir returns the base directory the store writes under.
func (s *Store) Dir() string { return s.dir }

func (s *Store) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func (s *Store) configPath() string { return filepath.Join(s.dir, configFile) }
func (s *Store) scorePath() string  { return filepath.Join(s.dir, scoreFile) }

// LoadConfig returns the config document. A missing file is created with
// defaults; an unreadable or malformed one is overwritten with defaults.
func (s *Store) LoadConfig() (Config, error) {
	if err := s.ensureDir(); err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(s.configPath())
	if err == nil {
		conf, perr := configFromDocument(data)
		if perr == nil {
			return conf, nil
		}
		s.logger.Warn("Resetting malformed config document", "path", s.configPath(), "error", perr)
	} else if !os.IsNotExist(err) {
		s.logger.Warn("Resetting unreadable config document", "path", s.configPath(), "error", err)
	}

	conf := DefaultConfig()
	if err := s.SaveConfig(conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// SaveConfig writes the full config document.
func (s *Store) SaveConfig(conf Config) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := fileutil.WriteJSONFileAtomic(s.configPath(), conf, 0644); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// LoadStats returns the stats document, healing it the same way LoadConfig
// does.
func (s *Store) LoadStats() (Stats, error) {
	if err := s.ensureDir(); err != nil {
		return Stats{}, err
	}

	data, err := os.ReadFile(s.scorePath())
	if err == nil {
		stats, perr := statsFromDocument(data)
		if perr == nil {
			return stats, nil
		}
		s.logger.Warn("Resetting malformed stats document", "path", s.scorePath(), "error", perr)
	} else if !os.IsNotExist(err) {
		s.logger.Warn("Resetting unreadable stats document", "path", s.scorePath(), "error", err)
	}

	stats := Stats{}
	if err := s.SaveStats(stats); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// SaveStats writes the full stats document.
func (s *Store) SaveStats(stats Stats) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := fileutil.WriteJSONFileAtomic(s.scorePath(), stats, 0644); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// AwardPoints adds n to the points counter and returns the new total.
func (s *Store) AwardPoints(n int) (int, error) {
	stats, err := s.LoadStats()
	if err != nil {
		return 0, err
	}
	stats.Points += n
	if err := s.SaveStats(stats); err != nil {
		return 0, err
	}
	s.logger.Debug("Awarded points", "points", n, "total", stats.Points)
	return stats.Points, nil
}

// UpdateStats adds a finished series' deltas to the all-time counters.
func (s *Store) UpdateStats(playerWins, computerWins, draws, roundsPlayed int) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	stats.PlayerWins += playerWins
	stats.ComputerWins += computerWins
	stats.Draws += draws
	stats.RoundsPlayed += roundsPlayed
	return s.SaveStats(stats)
}

// ResetStats overwrites the stats document with zeroes. Points are gone too;
// this is the only way they ever go down.
func (s *Store) ResetStats() error {
	return s.SaveStats(Stats{})
}
