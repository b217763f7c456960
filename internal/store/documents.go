package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Config holds the reward amounts and series-end messages. The document is
// always fully populated: fields missing on disk are backfilled from
// DefaultConfig on load.
type Config struct {
	WinReward   int    `json:"win_reward"`
	LoseReward  int    `json:"lose_reward"`
	TieReward   int    `json:"tie_reward"`
	WinMessage  string `json:"win_message"`
	LoseMessage string `json:"lose_message"`
	TieMessage  string `json:"tie_message"`
}

// DefaultConfig returns the stock rewards and messages.
func DefaultConfig() Config {
	return Config{
		WinReward:   100,
		LoseReward:  10,
		TieReward:   20,
		WinMessage:  "🎉 You won the series!",
		LoseMessage: "😞 You lost the series.",
		TieMessage:  "🤝 The series is a tie.",
	}
}

// Stats is the all-time counters document. All counters only ever grow;
// the single exception is an explicit reset, which zeroes the document.
type Stats struct {
	Points       int `json:"points"`
	PlayerWins   int `json:"player_wins"`
	ComputerWins int `json:"computer_wins"`
	Draws        int `json:"draws"`
	RoundsPlayed int `json:"rounds_played"`
}

// decodeDocument decodes one JSON object into dst and rejects everything
// else. JSON null decodes into maps and structs as a silent no-op and a
// Decoder stops at the first complete value, so both a null document and one
// with trailing data would otherwise pass as valid instead of healing.
func decodeDocument(data []byte, dst any) error {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return fmt.Errorf("document is not an object")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("trailing data after document")
	}
	return nil
}

// configFromDocument parses a config document. Missing fields keep their
// defaults; a recognized field of the wrong type makes the whole document
// malformed.
func configFromDocument(data []byte) (Config, error) {
	conf := DefaultConfig()
	if err := decodeDocument(data, &conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// statsFromDocument parses a stats document. Counters stored as JSON floats
// truncate and integer strings convert; any other value type makes the whole
// document malformed.
func statsFromDocument(data []byte) (Stats, error) {
	var raw map[string]any
	if err := decodeDocument(data, &raw); err != nil {
		return Stats{}, err
	}

	var s Stats
	fields := map[string]*int{
		"points":        &s.Points,
		"player_wins":   &s.PlayerWins,
		"computer_wins": &s.ComputerWins,
		"draws":         &s.Draws,
		"rounds_played": &s.RoundsPlayed,
	}
	for name, dst := range fields {
		v, ok := raw[name]
		if !ok {
			// Absent fields keep the zero default
			continue
		}
		n, err := coerceInt(v)
		if err != nil {
			return Stats{}, fmt.Errorf("field %s: %w", name, err)
		}
		*dst = n
	}
	return s, nil
}

func coerceInt(v any) (int, error) {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), nil
		}
		// Out-of-range float-to-int conversion is not defined, so the bounds
		// check has to happen before the conversion.
		f, err := t.Float64()
		if err != nil || f < math.MinInt || f >= math.MaxInt {
			return 0, fmt.Errorf("cannot coerce %q to an integer", t.String())
		}
		return int(f), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot coerce %q to an integer", t)
		}
		return int(i), nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to an integer", v)
	}
}
