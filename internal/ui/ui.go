package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"duke/internal/config"
	"duke/internal/session"
)

const (
	greeting      = "Hello! I'm Duke\nWhat can I do for you?"
	maxTranscript = 200
	promptPrefix  = "> "
	defaultStatus = "Type a command and press Enter. 'bye' to leave."
)

type Handler interface {
	Handle(line string) session.Reply
}

type exchange struct {
	input string
	reply string
}

type Model struct {
	handler    Handler
	cfg        config.Config
	input      textinput.Model
	transcript []exchange
	history    []string
	histPos    int
	status     string
	quitting   bool
}

func New(handler Handler, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "todo read book"
	ti.Prompt = promptPrefix
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	return Model{
		handler:    handler,
		cfg:        cfg,
		input:      ti,
		transcript: []exchange{{reply: greeting}},
		status:     defaultStatus,
	}
}

func Run(handler Handler, cfg config.Config) error {
	program := tea.NewProgram(New(handler, cfg))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", m.cfg.Keys.Quit:
		m.quitting = true
		return m, tea.Quit
	case m.cfg.Keys.Submit:
		return m.submit()
	case m.cfg.Keys.HistoryUp:
		return m.recall(-1), nil
	case m.cfg.Keys.HistoryDown:
		return m.recall(1), nil
	case m.cfg.Keys.Clear:
		m.input.SetValue("")
		m.histPos = len(m.history)
		m.status = defaultStatus
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		m.status = "Please enter a command"
		return m, nil
	}
	reply := m.handler.Handle(line)

	m.transcript = append(m.transcript, exchange{input: line, reply: reply.Text})
	if len(m.transcript) > maxTranscript {
		m.transcript = m.transcript[len(m.transcript)-maxTranscript:]
	}
	m.history = append(m.history, line)
	m.histPos = len(m.history)
	m.input.SetValue("")
	m.status = defaultStatus

	if reply.Exit {
		m.quitting = true
		m.input.Blur()
		return m, tea.Quit
	}
	return m, nil
}

// recall moves through previously submitted lines. Stepping past the newest
// entry clears the prompt.
func (m Model) recall(step int) Model {
	if len(m.history) == 0 {
		return m
	}
	m.histPos = clampCursor(m.histPos+step, len(m.history)+1)
	if m.histPos == len(m.history) {
		m.input.SetValue("")
	} else {
		m.input.SetValue(m.history[m.histPos])
		m.input.CursorEnd()
	}
	m.status = fmt.Sprintf("History %d/%d", m.histPos+1, len(m.history))
	return m
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("Duke")
	b.WriteString("\n\n")
	b.WriteString(m.renderTranscript())

	if m.quitting {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(renderHelp(m.cfg.Keys))

	return b.String()
}

func (m Model) renderTranscript() string {
	var b strings.Builder
	for _, e := range m.transcript {
		if e.input != "" {
			b.WriteString(promptPrefix + e.input + "\n")
		}
		b.WriteString(strings.TrimRight(e.reply, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s run • %s/%s history • %s clear • %s quit • commands: todo deadline event list done delete find reminder bye",
		k.Submit, k.HistoryUp, k.HistoryDown, k.Clear, k.Quit)
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
