// Package history persists one JSON record per completed interactive series
// under the data directory, so past results survive restarts and can be
// listed from the CLI.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/roshambo/internal/fileutil"
)

// SeriesRecord is an immutable snapshot of one completed series.
type SeriesRecord struct {
	ID            string    `json:"id"`
	Mode          string    `json:"mode"`
	Limit         int       `json:"limit"`
	PlayerWins    int       `json:"player_wins"`
	ComputerWins  int       `json:"computer_wins"`
	Draws         int       `json:"draws"`
	RoundsPlayed  int       `json:"rounds_played"`
	Result        string    `json:"result"`
	PointsAwarded int       `json:"points_awarded"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
}

// Writer reads and writes series records under a single directory.
type Writer struct {
	dir    string
	clock  quartz.Clock
	logger *log.Logger
}

// NewWriter creates a writer rooted at dir. The directory is created lazily
// on first write.
func NewWriter(dir string, clock quartz.Clock, logger *log.Logger) *Writer {
	return &Writer{
		dir:    dir,
		clock:  clock,
		logger: logger.WithPrefix("history"),
	}
}

// Dir returns the directory records are written to.
func (w *Writer) Dir() string { return w.dir }

// Record persists rec as series-<id>.json, assigning the ID and finish time
// when the caller left them empty, and returns the completed record.
func (w *Writer) Record(rec SeriesRecord) (SeriesRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = w.clock.Now()
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return rec, fmt.Errorf("failed to create history directory: %w", err)
	}

	filename := filepath.Join(w.dir, fmt.Sprintf("series-%s.json", rec.ID))
	if err := fileutil.WriteJSONFileAtomic(filename, rec, 0644); err != nil {
		return rec, fmt.Errorf("failed to write series record: %w", err)
	}

	w.logger.Debug("Series record written", "id", rec.ID, "result", rec.Result)
	return rec, nil
}

// List returns up to n records, newest first. Records that fail to parse are
// skipped with a debug log rather than failing the listing; a missing
// directory just means no records yet. n <= 0 returns everything.
func (w *Writer) List(n int) ([]SeriesRecord, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history directory: %w", err)
	}

	var records []SeriesRecord
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "series-") || !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(w.dir, name))
		if err != nil {
			w.logger.Debug("Skipping unreadable record", "file", name, "error", err)
			continue
		}
		var rec SeriesRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			w.logger.Debug("Skipping malformed record", "file", name, "error", err)
			continue
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].FinishedAt.After(records[j].FinishedAt)
	})
	if n > 0 && len(records) > n {
		records = records[:n]
	}
	return records, nil
}
