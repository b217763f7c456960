// Package simulator pits two bot strategies against each other over many
// best-of series and aggregates the results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/roshambo/internal/bot"
	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/randutil"
	"github.com/lox/roshambo/internal/stats"
)

// Config describes a batch of simulated series.
type Config struct {
	Series   int    // number of series to play
	BestOf   int    // series length, must be odd
	Player   string // strategy name for the player side
	Opponent string // strategy name for the computer side
	Seed     int64  // base seed, each series derives its own
	Workers  int    // concurrent workers, 0 for NumCPU
	Logger   *log.Logger
}

// Result aggregates every series in a run.
type Result struct {
	Series      int
	Wins        int // series won by the player side
	Losses      int // series won by the opponent side
	Ties        int
	RoundWins   int
	RoundLosses int
	RoundDraws  int
	Rounds      int
	Score       stats.Sample // per-series score: 1 win, 0.5 tie, 0 loss
}

// WinRate returns the mean per-series score.
func (r *Result) WinRate() float64 {
	return r.Score.Mean()
}

func (r *Result) add(t game.Tally) {
	r.Series++
	r.RoundWins += t.PlayerWins
	r.RoundLosses += t.ComputerWins
	r.RoundDraws += t.Draws
	r.Rounds += t.RoundsPlayed
	switch t.Outcome() {
	case game.Win:
		r.Wins++
		r.Score.Add(1)
	case game.Lose:
		r.Losses++
		r.Score.Add(0)
	default:
		r.Ties++
		r.Score.Add(0.5)
	}
}

func (r *Result) merge(o Result) {
	r.Series += o.Series
	r.Wins += o.Wins
	r.Losses += o.Losses
	r.Ties += o.Ties
	r.RoundWins += o.RoundWins
	r.RoundLosses += o.RoundLosses
	r.RoundDraws += o.RoundDraws
	r.Rounds += o.Rounds
	r.Score.Merge(o.Score)
}

// Simulator plays configured batches of series.
type Simulator struct {
	config Config
	logger *log.Logger
}

// New validates the configuration and returns a ready simulator. Worker
// count defaults to the number of CPUs and never exceeds the series count.
func New(config Config) (*Simulator, error) {
	if config.Series < 1 {
		return nil, fmt.Errorf("series count must be at least 1, got %d", config.Series)
	}
	if config.BestOf < 1 {
		return nil, fmt.Errorf("best-of length must be at least 1, got %d", config.BestOf)
	}
	if config.BestOf%2 == 0 {
		return nil, fmt.Errorf("best-of length must be odd, got %d", config.BestOf)
	}
	if _, err := bot.ForName(config.Player, nil); err != nil {
		return nil, fmt.Errorf("player strategy: %w", err)
	}
	if _, err := bot.ForName(config.Opponent, nil); err != nil {
		return nil, fmt.Errorf("opponent strategy: %w", err)
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Workers > config.Series {
		config.Workers = config.Series
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{config: config, logger: logger}, nil
}

// Run plays every configured series across the worker pool and returns the
// merged result. Each series derives its own seeds from the base seed, so a
// fixed seed produces the same aggregate regardless of worker count.
func (s *Simulator) Run(ctx context.Context) (Result, error) {
	g, ctx := errgroup.WithContext(ctx)

	workers := s.config.Workers
	partials := make([]Result, workers)

	s.logger.Debug("starting simulation",
		"series", s.config.Series,
		"best_of", s.config.BestOf,
		"player", s.config.Player,
		"opponent", s.config.Opponent,
		"workers", workers)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := w; i < s.config.Series; i += workers {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				tally, err := s.playSeries(i)
				if err != nil {
					return err
				}
				partials[w].add(tally)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total Result
	for _, p := range partials {
		total.merge(p)
	}
	return total, nil
}

// playSeries runs one series with strategies seeded independently of every
// other series.
func (s *Simulator) playSeries(i int) (game.Tally, error) {
	base := s.config.Seed + int64(i)*2

	player, err := bot.ForName(s.config.Player, randutil.New(base))
	if err != nil {
		return game.Tally{}, err
	}
	opponent, err := bot.ForName(s.config.Opponent, randutil.New(base+1))
	if err != nil {
		return game.Tally{}, err
	}

	series, err := game.New(game.Config{
		Mode:     game.BestOf,
		Rounds:   s.config.BestOf,
		Player:   bot.Source(player),
		Computer: bot.Source(opponent),
		OnRound: func(r game.Round) {
			player.Observe(r.Player, r.Computer)
			opponent.Observe(r.Computer, r.Player)
		},
		Logger: s.logger,
	})
	if err != nil {
		return game.Tally{}, err
	}
	return series.Run()
}
