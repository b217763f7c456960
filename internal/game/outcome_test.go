package game

import (
	"errors"
	"testing"
)

func TestDecideAllPairs(t *testing.T) {
	cases := []struct {
		player   Move
		computer Move
		want     Outcome
	}{
		{Rock, Rock, Draw},
		{Rock, Paper, Lose},
		{Rock, Scissors, Win},
		{Paper, Rock, Win},
		{Paper, Paper, Draw},
		{Paper, Scissors, Lose},
		{Scissors, Rock, Lose},
		{Scissors, Paper, Win},
		{Scissors, Scissors, Draw},
	}

	for _, tc := range cases {
		if got := Decide(tc.player, tc.computer); got != tc.want {
			t.Errorf("Decide(%v, %v) = %v, want %v", tc.player, tc.computer, got, tc.want)
		}
	}
}

func TestDecideStrings(t *testing.T) {
	out, err := DecideStrings(" Rock ", "SCISSORS")
	if err != nil {
		t.Fatalf("DecideStrings failed: %v", err)
	}
	if out != Win {
		t.Errorf("DecideStrings(rock, scissors) = %v, want win", out)
	}
}

func TestDecideStringsInvalid(t *testing.T) {
	cases := []struct {
		player   string
		computer string
	}{
		{"lizard", "rock"},
		{"rock", "lizard"},
		{"", ""},
	}

	for _, tc := range cases {
		_, err := DecideStrings(tc.player, tc.computer)
		if !errors.Is(err, ErrInvalidMove) {
			t.Errorf("DecideStrings(%q, %q) error = %v, want ErrInvalidMove", tc.player, tc.computer, err)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	cases := []struct {
		outcome Outcome
		want    string
	}{
		{Win, "win"},
		{Lose, "lose"},
		{Draw, "draw"},
		{Outcome(42), "unknown"},
	}

	for _, tc := range cases {
		if got := tc.outcome.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", int(tc.outcome), got, tc.want)
		}
	}
}
