package game

import (
	"errors"
	"fmt"
	"testing"
)

// scriptSource returns the given moves in order and fails the test if the
// series asks for more than were scripted.
func scriptSource(t *testing.T, moves ...Move) MoveSource {
	t.Helper()
	i := 0
	return MoveSourceFunc(func(round, of int) (Move, error) {
		if i >= len(moves) {
			t.Fatalf("source exhausted after %d moves (round %d/%d)", len(moves), round, of)
		}
		m := moves[i]
		i++
		return m, nil
	})
}

func TestSeriesFixedRounds(t *testing.T) {
	s, err := New(Config{
		Mode:     FixedRounds,
		Rounds:   3,
		Player:   scriptSource(t, Rock, Paper, Rock),
		Computer: scriptSource(t, Scissors, Rock, Paper),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tally, err := s.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Two wins, one loss, no draws
	if tally.PlayerWins != 2 || tally.ComputerWins != 1 || tally.Draws != 0 {
		t.Errorf("Tally = %+v, want 2 wins, 1 loss, 0 draws", tally)
	}
	if tally.RoundsPlayed != 3 {
		t.Errorf("RoundsPlayed = %d, want 3", tally.RoundsPlayed)
	}
	if tally.Quit {
		t.Error("Quit = true for a completed series")
	}
	if tally.Outcome() != Win {
		t.Errorf("Outcome() = %v, want win", tally.Outcome())
	}
}

func TestSeriesBestOfEndsEarly(t *testing.T) {
	// Player takes three straight in a best-of-5
	s, err := New(Config{
		Mode:     BestOf,
		Rounds:   5,
		Player:   scriptSource(t, Rock, Rock, Rock, Rock, Rock),
		Computer: scriptSource(t, Scissors, Scissors, Scissors, Scissors, Scissors),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Needed() != 3 {
		t.Errorf("Needed() = %d, want 3", s.Needed())
	}

	tally, err := s.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if tally.PlayerWins != 3 {
		t.Errorf("PlayerWins = %d, want 3", tally.PlayerWins)
	}
	if tally.RoundsPlayed != 3 {
		t.Errorf("RoundsPlayed = %d, want 3 (series should stop at the clinch)", tally.RoundsPlayed)
	}
}

func TestSeriesBestOfDrawsDoNotTerminate(t *testing.T) {
	// Every round draws, so the series runs the full round count
	s, err := New(Config{
		Mode:     BestOf,
		Rounds:   3,
		Player:   scriptSource(t, Rock, Paper, Scissors),
		Computer: scriptSource(t, Rock, Paper, Scissors),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tally, err := s.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if tally.Draws != 3 || tally.RoundsPlayed != 3 {
		t.Errorf("Tally = %+v, want 3 draws over 3 rounds", tally)
	}
	if tally.Outcome() != Draw {
		t.Errorf("Outcome() = %v, want draw", tally.Outcome())
	}
}

func TestSeriesQuit(t *testing.T) {
	i := 0
	player := MoveSourceFunc(func(round, of int) (Move, error) {
		i++
		if i > 2 {
			return Rock, ErrSeriesQuit
		}
		return Rock, nil
	})

	s, err := New(Config{
		Mode:     FixedRounds,
		Rounds:   5,
		Player:   player,
		Computer: scriptSource(t, Scissors, Paper, Rock, Rock, Rock),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tally, err := s.Run()
	if err != nil {
		t.Fatalf("Run returned error on quit: %v", err)
	}

	if !tally.Quit {
		t.Error("Quit = false after early exit")
	}
	if tally.RoundsPlayed != 2 {
		t.Errorf("RoundsPlayed = %d, want 2 (quit round does not count)", tally.RoundsPlayed)
	}
	if tally.PlayerWins != 1 || tally.ComputerWins != 1 {
		t.Errorf("Tally = %+v, want one win each from the resolved rounds", tally)
	}
}

func TestSeriesSourceError(t *testing.T) {
	boom := fmt.Errorf("terminal gone")
	player := MoveSourceFunc(func(round, of int) (Move, error) {
		return Rock, boom
	})

	s, err := New(Config{
		Mode:     FixedRounds,
		Rounds:   3,
		Player:   player,
		Computer: scriptSource(t, Rock, Rock, Rock),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = s.Run()
	if !errors.Is(err, boom) {
		t.Errorf("Run error = %v, want wrapped source error", err)
	}
}

func TestSeriesOnRound(t *testing.T) {
	var rounds []Round
	s, err := New(Config{
		Mode:     FixedRounds,
		Rounds:   2,
		Player:   scriptSource(t, Rock, Scissors),
		Computer: scriptSource(t, Paper, Paper),
		OnRound:  func(r Round) { rounds = append(rounds, r) },
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := s.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(rounds) != 2 {
		t.Fatalf("OnRound fired %d times, want 2", len(rounds))
	}
	if rounds[0].Number != 1 || rounds[1].Number != 2 {
		t.Errorf("Round numbers = %d, %d, want 1, 2", rounds[0].Number, rounds[1].Number)
	}
	if rounds[0].Outcome != Lose || rounds[1].Outcome != Win {
		t.Errorf("Outcomes = %v, %v, want lose, win", rounds[0].Outcome, rounds[1].Outcome)
	}
}

func TestSeriesConfigValidation(t *testing.T) {
	src := scriptSource(t)

	cases := []struct {
		name   string
		config Config
	}{
		{"zero rounds", Config{Mode: FixedRounds, Rounds: 0, Player: src, Computer: src}},
		{"negative rounds", Config{Mode: FixedRounds, Rounds: -1, Player: src, Computer: src}},
		{"even best-of", Config{Mode: BestOf, Rounds: 4, Player: src, Computer: src}},
		{"missing player", Config{Mode: FixedRounds, Rounds: 3, Computer: src}},
		{"missing computer", Config{Mode: FixedRounds, Rounds: 3, Player: src}},
	}

	for _, tc := range cases {
		if _, err := New(tc.config); err == nil {
			t.Errorf("New(%s) expected error, got nil", tc.name)
		}
	}
}

func TestModeFromString(t *testing.T) {
	cases := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"rounds", FixedRounds, false},
		{"best-of", BestOf, false},
		{"bestof", BestOf, false},
		{" Best-Of ", BestOf, false},
		{"marathon", FixedRounds, true},
	}

	for _, tc := range cases {
		got, err := ModeFromString(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ModeFromString(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ModeFromString(%q) returned error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ModeFromString(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
