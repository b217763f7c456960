package bot

import (
	"testing"

	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/randutil"
)

func TestForName(t *testing.T) {
	rng := randutil.New(1)

	cases := []struct {
		input string
		want  string
	}{
		{"random", "random"},
		{"rnd", "random"},
		{"RANDOM", "random"},
		{" cycle ", "cycle"},
		{"mirror", "mirror"},
		{"counter", "counter"},
	}

	for _, tc := range cases {
		s, err := ForName(tc.input, rng)
		if err != nil {
			t.Errorf("ForName(%q) returned error: %v", tc.input, err)
			continue
		}
		if s.Name() != tc.want {
			t.Errorf("ForName(%q).Name() = %q, want %q", tc.input, s.Name(), tc.want)
		}
	}
}

func TestForNameUnknown(t *testing.T) {
	_, err := ForName("psychic", randutil.New(1))
	if err == nil {
		t.Fatal("ForName(psychic) expected error, got nil")
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := NewRandom(randutil.New(7))
	b := NewRandom(randutil.New(7))

	for i := 0; i < 50; i++ {
		am, bm := a.Next(), b.Next()
		if am != bm {
			t.Fatalf("Same-seeded Random strategies diverged at move %d: %v != %v", i, am, bm)
		}
		if am != game.Rock && am != game.Paper && am != game.Scissors {
			t.Fatalf("Random produced invalid move %v", am)
		}
	}
}

func TestCycleRotation(t *testing.T) {
	c := NewCycle()

	want := []game.Move{
		game.Rock, game.Paper, game.Scissors,
		game.Rock, game.Paper, game.Scissors,
	}
	for i, w := range want {
		if got := c.Next(); got != w {
			t.Errorf("Cycle move %d = %v, want %v", i, got, w)
		}
	}
}

func TestMirrorRepeatsOpponent(t *testing.T) {
	m := NewMirror(randutil.New(3))

	// Opening move must at least be valid
	first := m.Next()
	if first != game.Rock && first != game.Paper && first != game.Scissors {
		t.Fatalf("Mirror opening move invalid: %v", first)
	}

	m.Observe(first, game.Scissors)
	if got := m.Next(); got != game.Scissors {
		t.Errorf("Mirror after observing scissors = %v, want scissors", got)
	}

	m.Observe(game.Scissors, game.Paper)
	if got := m.Next(); got != game.Paper {
		t.Errorf("Mirror after observing paper = %v, want paper", got)
	}
}

func TestCounterBeatsPrevious(t *testing.T) {
	c := NewCounter(randutil.New(3))
	c.Next()

	for _, opp := range game.Moves {
		c.Observe(game.Rock, opp)
		next := c.Next()
		if game.Decide(next, opp) != game.Win {
			t.Errorf("Counter played %v against previous %v, which does not beat it", next, opp)
		}
	}
}

func TestSourceAdapter(t *testing.T) {
	src := Source(NewCycle())

	m, err := src.NextMove(1, 3)
	if err != nil {
		t.Fatalf("NextMove failed: %v", err)
	}
	if m != game.Rock {
		t.Errorf("First sourced move = %v, want rock", m)
	}
}
