// Package fileutil writes the game's files so that readers never observe a
// torn document.
package fileutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data through a temporary file and renames it over
// filename. Rename is atomic on POSIX filesystems, so a reader sees either
// the previous document or the complete new one, never a partial write. The
// temp file lives in the target's directory because a rename across
// filesystems would lose that guarantee.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	// Failures leave the target untouched; only the temp file needs removing.
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(fmt.Errorf("failed to write temp file: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("failed to sync temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		return fail(fmt.Errorf("failed to close temp file: %w", err))
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fail(fmt.Errorf("failed to set permissions: %w", err))
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fail(fmt.Errorf("failed to rename temp file: %w", err))
	}
	return nil
}

// WriteJSONFileAtomic marshals v in the game's on-disk document format,
// indented two spaces with a trailing newline, and writes it atomically. A
// crash mid-save leaves the previous document intact rather than half of the
// new one.
func WriteJSONFileAtomic(filename string, v any, perm os.FileMode) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return WriteFileAtomic(filename, append(data, '\n'), perm)
}
