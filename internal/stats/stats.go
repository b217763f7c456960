// Package stats formats the percentage breakdowns shown after series and
// aggregates simulation measurements.
package stats

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lox/roshambo/internal/store"
)

// FormatPct renders part of total as a percentage with two decimals. A total
// of zero or less formats as "0.00%" rather than dividing by zero.
func FormatPct(part, total int) string {
	if total <= 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(part)/float64(total)*100)
}

// Alltime is the formatted view of the all-time counters, shared by the
// score screen and the post-series summary.
type Alltime struct {
	Points   string
	Rounds   string
	You      string
	Computer string
	Draws    string
}

// AlltimeFromStats formats a stats document for display. Percentages are
// relative to rounds played.
func AlltimeFromStats(s store.Stats) Alltime {
	return Alltime{
		Points:   strconv.Itoa(s.Points),
		Rounds:   strconv.Itoa(s.RoundsPlayed),
		You:      FormatPct(s.PlayerWins, s.RoundsPlayed),
		Computer: FormatPct(s.ComputerWins, s.RoundsPlayed),
		Draws:    FormatPct(s.Draws, s.RoundsPlayed),
	}
}

// Sample accumulates one measurement per series and reports aggregate
// measures over them.
type Sample struct {
	Count int
	Sum   float64
	Sum2  float64 // Sum of squares for variance calculation
}

// Add incorporates a new measurement
func (s *Sample) Add(v float64) {
	s.Count++
	s.Sum += v
	s.Sum2 += v * v
}

// Merge combines another sample into this one
func (s *Sample) Merge(o Sample) {
	s.Count += o.Count
	s.Sum += o.Sum
	s.Sum2 += o.Sum2
}

// Mean returns the arithmetic mean of all measurements
func (s *Sample) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Variance returns the sample variance of all measurements
func (s *Sample) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Count)*mean*mean) / float64(s.Count-1)
}

// StdDev returns the sample standard deviation
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Sample) StdError() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Count))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Sample) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}
