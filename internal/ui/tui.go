package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	tuiBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262"))

	tuiPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	tuiHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// printMsg appends output lines to the transcript viewport.
type printMsg struct {
	lines []string
}

// promptMsg arms the input field with a label and routes the next submitted
// line to the waiting Prompt call.
type promptMsg struct {
	label string
}

// promptReply carries one submitted line (or the interrupt) back to the
// blocked Prompt call.
type promptReply struct {
	text        string
	interrupted bool
}

// tuiModel is the Bubble Tea model backing the full-screen prompter: a
// transcript viewport on top and a single-line input below, in the shape of
// the game's plain-terminal conversation.
type tuiModel struct {
	logger *log.Logger

	viewport viewport.Model
	input    textinput.Model

	transcript []string
	replies    chan promptReply
	prompting  bool
	label      string

	width       int
	height      int
	initialized bool
	quitting    bool
}

func newTUIModel(logger *log.Logger) *tuiModel {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.CharLimit = 100
	ti.Width = 60
	ti.Prompt = "> "
	ti.PromptStyle = tuiPromptStyle
	ti.Focus()

	return &tuiModel{
		logger:   logger.WithPrefix("tui"),
		viewport: vp,
		input:    ti,
		replies:  make(chan promptReply, 1),
	}
}

// Init implements tea.Model.
func (m *tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case printMsg:
		m.appendLines(msg.lines)
		return m, nil

	case promptMsg:
		m.prompting = true
		m.label = msg.label
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d", "esc":
			m.logger.Debug("Interrupt key received", "key", msg.String())
			m.interrupt()
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "enter":
			if m.prompting {
				m.submit()
			}
			return m, nil
		case "up", "pgup":
			m.viewport.HalfPageUp()
			return m, nil
		case "down", "pgdown":
			m.viewport.HalfPageDown()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *tuiModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var input strings.Builder
	if m.prompting {
		input.WriteString(tuiPromptStyle.Render(m.label))
		input.WriteString("\n")
	}
	input.WriteString(m.input.View())
	input.WriteString("\n")
	input.WriteString(tuiHelpStyle.Render("Enter to submit • ↑/↓ to scroll • Ctrl+C to quit"))

	inputPane := tuiBorderStyle.Width(max(m.width-2, 1)).Render(input.String())
	logPane := tuiBorderStyle.
		Width(max(m.width-2, 1)).
		Height(max(m.height-lipgloss.Height(inputPane)-2, 1)).
		Render(m.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Top, logPane, inputPane)
}

func (m *tuiModel) appendLines(lines []string) {
	m.transcript = append(m.transcript, lines...)
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	if m.viewport.Height > 0 && m.viewport.Width > 0 {
		m.viewport.GotoBottom()
	}
}

func (m *tuiModel) resize() {
	m.viewport.Width = max(m.width-2, 1)
	m.viewport.Height = max(m.height-7, 1)
	m.input.Width = max(m.width-6, 10)
	if !m.initialized {
		m.viewport.GotoBottom()
		m.initialized = true
	}
}

// submit echoes the exchange into the transcript and hands the line to the
// waiting Prompt call.
func (m *tuiModel) submit() {
	value := strings.TrimSpace(m.input.Value())
	m.appendLines([]string{m.label + value})
	m.prompting = false
	m.input.SetValue("")
	m.replies <- promptReply{text: value}
}

// interrupt unblocks a pending Prompt before the program shuts down.
func (m *tuiModel) interrupt() {
	m.quitting = true
	if m.prompting {
		m.prompting = false
		m.replies <- promptReply{interrupted: true}
	}
}

// TUI is the full-screen Prompter. The Bubble Tea event loop runs on its own
// goroutine; Print and Prompt bridge into it over the program's message
// queue, so the synchronous game code never sees the event loop.
type TUI struct {
	model   *tuiModel
	program *tea.Program
	logger  *log.Logger
	done    chan struct{}
}

// NewTUI creates the full-screen prompter. Start must be called before any
// Print or Prompt.
func NewTUI(logger *log.Logger) *TUI {
	model := newTUIModel(logger)
	return &TUI{
		model:   model,
		program: tea.NewProgram(model, tea.WithAltScreen()),
		logger:  logger.WithPrefix("tui"),
		done:    make(chan struct{}),
	}
}

// Start launches the event loop.
func (t *TUI) Start() {
	go func() {
		defer close(t.done)
		if _, err := t.program.Run(); err != nil {
			t.logger.Error("TUI program failed", "error", err)
		}
	}()
}

// Print implements Prompter.
func (t *TUI) Print(lines ...string) {
	t.program.Send(printMsg{lines: lines})
}

// Prompt implements Prompter. It returns ErrInterrupted once the program has
// quit, so callers unwind the same way they do on a closed stdin.
func (t *TUI) Prompt(label string) (string, error) {
	select {
	case <-t.done:
		return "", ErrInterrupted
	default:
	}

	t.program.Send(promptMsg{label: label})

	select {
	case reply := <-t.replies():
		if reply.interrupted {
			return "", ErrInterrupted
		}
		return reply.text, nil
	case <-t.done:
		return "", ErrInterrupted
	}
}

func (t *TUI) replies() chan promptReply { return t.model.replies }

// Close implements Prompter, shutting the program down and waiting for the
// terminal to be restored.
func (t *TUI) Close() error {
	t.program.Quit()
	<-t.done
	return nil
}
