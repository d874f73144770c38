// Package ui implements the interactive terminal UI for tinytable.
//
// The UI is a bubbletea program: a model holding all state, an Update
// function that reacts to messages (key presses, window resizes, statement
// results), and a View that renders the whole screen from the model.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cabewaldrop/tinytable/internal/engine"
	"github.com/cabewaldrop/tinytable/internal/sql/parser"
)

// Model represents the application state.
type Model struct {
	executor *engine.Executor
	input    textinput.Model
	results  viewport.Model
	help     help.Model
	keys     keyMap

	width    int
	height   int
	showHelp bool
	lastErr  error
	output   string
	history  []string
}

// NewModel creates the initial UI state over an executor.
func NewModel(exec *engine.Executor) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 1 alice alice@example.com"
	ti.Prompt = "db > "
	ti.PromptStyle = promptStyle
	ti.CharLimit = 512
	ti.Focus()

	vp := viewport.New(80, 12)
	vp.Style = resultStyle

	return Model{
		executor: exec,
		input:    ti,
		results:  vp,
		help:     help.New(),
		keys:     keys,
		history:  make([]string, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Execute):
			line := strings.TrimSpace(m.input.Value())
			if line != "" {
				m.input.SetValue("")
				return m, m.executeStatement(line)
			}

		case key.Matches(msg, m.keys.Clear):
			m.input.SetValue("")
			m.output = ""
			m.lastErr = nil

		case key.Matches(msg, m.keys.ShowStats):
			return m, m.showStats()

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		}

	case resultMsg:
		m.lastErr = msg.err
		if msg.err == nil {
			m.output = msg.output
			m.history = append(m.history, msg.statement)
			m.results.SetContent(m.output)
			m.results.GotoTop()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.results, cmd = m.results.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.input.View())

	switch {
	case m.lastErr != nil:
		sections = append(sections, errorStyle.Render("error: "+m.lastErr.Error()))
	case m.output != "":
		sections = append(sections, m.results.View())
	}

	sections = append(sections, m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, m.help.ShortHelpView(m.keys.bindings()))
	}

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("tinytable")
	stats := m.executor.Stats()
	usage := mutedStyle.Render(fmt.Sprintf("  rows %d/%d  pages %d/%d",
		stats.NumRows, stats.MaxRows, stats.PageCount, stats.MaxPages))
	return lipgloss.JoinHorizontal(lipgloss.Left, title, usage)
}

func (m Model) renderStatusBar() string {
	status := statusStyle.Render("● ready")
	hint := mutedStyle.Render(fmt.Sprintf("  statements: %d | ctrl+h for help", len(m.history)))
	return status + hint
}

// updateLayout adjusts component sizes based on window size.
func (m *Model) updateLayout() {
	if m.width > 8 {
		m.input.Width = m.width - 8
		m.results.Width = m.width - 4
	}
	if m.height > 8 {
		m.results.Height = m.height - 6
	}
}

type resultMsg struct {
	statement string
	output    string
	err       error
}

// executeStatement parses and runs one line against the engine.
func (m Model) executeStatement(line string) tea.Cmd {
	return func() tea.Msg {
		stmt, err := parser.Parse(line)
		if err != nil {
			return resultMsg{statement: line, err: err}
		}

		result, err := m.executor.Execute(stmt)
		if err != nil {
			return resultMsg{statement: line, err: err}
		}

		return resultMsg{statement: line, output: result.String()}
	}
}

// showStats renders table usage into the result viewport.
func (m Model) showStats() tea.Cmd {
	return func() tea.Msg {
		return resultMsg{statement: ".stats", output: m.executor.Stats().String()}
	}
}

// Run starts the TUI program and blocks until the user quits.
func Run(exec *engine.Executor) error {
	_, err := tea.NewProgram(NewModel(exec), tea.WithAltScreen()).Run()
	return err
}
