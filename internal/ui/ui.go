// Package ui provides the blocking input/output surface the interactive game
// runs on. A Prompter shows lines to the player and collects one line of
// input at a time; the menu layer never touches the terminal directly.
//
// Two implementations exist: LinePrompter reads stdin with bufio and suits
// pipes, tests and dumb terminals, while the Bubble Tea prompter in tui.go
// hosts the same conversation inside a full-screen program. End-of-input and
// Ctrl-C surface as ErrInterrupted from either one, which callers treat as a
// graceful exit rather than a failure.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// ErrInterrupted is returned by Prompt when input ends (EOF) or the player
// interrupts the program. It signals a graceful exit, not an error condition.
var ErrInterrupted = errors.New("ui: interrupted")

// Prompter is the conversation surface between the game and the player.
type Prompter interface {
	// Print shows finished output lines to the player
	Print(lines ...string)
	// Prompt shows a label and blocks until the player submits a line.
	// The returned text is whitespace-trimmed. Returns ErrInterrupted on
	// EOF or interrupt.
	Prompt(label string) (string, error)
	// Close releases the underlying terminal resources
	Close() error
}

// LinePrompter reads input line by line from an io.Reader and writes output
// to an io.Writer. It is the non-TTY implementation, also used to script
// conversations in tests. Unlike the full-screen prompter, its terminal stays
// in cooked mode, so Ctrl-C arrives as a signal rather than a key; the
// prompter watches for it and reports ErrInterrupted instead of letting the
// process die mid-prompt.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer

	interrupts  chan os.Signal
	interrupted bool
}

// NewLinePrompter creates a prompter over the given streams and starts
// watching for interrupt signals. Close releases the watch.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	p := &LinePrompter{
		scanner:    bufio.NewScanner(in),
		out:        out,
		interrupts: make(chan os.Signal, 1),
	}
	signal.Notify(p.interrupts, os.Interrupt, syscall.SIGTERM)
	return p
}

// Print writes each line followed by a newline.
func (p *LinePrompter) Print(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(p.out, line)
	}
}

// scanLine carries one Scan result out of the reader goroutine.
type scanLine struct {
	text string
	ok   bool
	err  error
}

// Prompt writes the label and reads one line. EOF and interrupt signals both
// map to ErrInterrupted; the newline the player typed is not part of the
// result. After an interrupt every later call reports ErrInterrupted without
// reading, since the blocked read still owns the input stream.
func (p *LinePrompter) Prompt(label string) (string, error) {
	if p.interrupted {
		return "", ErrInterrupted
	}
	fmt.Fprint(p.out, label)

	lines := make(chan scanLine, 1)
	go func() {
		ok := p.scanner.Scan()
		lines <- scanLine{text: p.scanner.Text(), ok: ok, err: p.scanner.Err()}
	}()

	select {
	case line := <-lines:
		if !line.ok {
			if line.err != nil {
				return "", fmt.Errorf("reading input: %w", line.err)
			}
			p.interrupted = true
			fmt.Fprintln(p.out)
			return "", ErrInterrupted
		}
		return strings.TrimSpace(line.text), nil
	case <-p.interrupts:
		p.interrupted = true
		fmt.Fprintln(p.out)
		return "", ErrInterrupted
	}
}

// Close implements Prompter, releasing the signal watch.
func (p *LinePrompter) Close() error {
	signal.Stop(p.interrupts)
	return nil
}
