// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"
)

const maxHistory = 100

// Model represents the REPL state
type Model struct {
	ready bool

	input  textinput.Model
	output viewport.Model

	session   *Session
	helpCache *cache.Cache

	transcript   []string
	history      []string
	historyIndex int // len(history) when not browsing
	showHelp     bool
	status       string
	statusIsErr  bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	Border         lipgloss.Style
	Title          lipgloss.Style
	Echo           lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		Echo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// InitialModel creates the REPL model around a session
func InitialModel(session *Session, hc *cache.Cache) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 30 20 40"
	ti.Prompt = "tree> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	output := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		input:           ti,
		output:          output,
		session:         session,
		helpCache:       hc,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
		status:          fmt.Sprintf("%s tree ready, f1 for help", strings.ToUpper(session.Variant)),
	}
	m.refreshOutput()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshOutput()
			return m, nil
		case "enter":
			m.execute(m.input.Value())
			m.input.SetValue("")
			return m, nil
		case "up":
			m.recall(-1)
			return m, nil
		case "down":
			m.recall(1)
			return m, nil
		case "pgup":
			m.output.LineUp(m.output.Height)
			return m, nil
		case "pgdown":
			m.output.LineDown(m.output.Height)
			return m, nil
		case "ctrl+y":
			keys := joinSeq(m.session.Tree().InOrder())
			if err := clipboard.WriteAll(keys); err != nil {
				m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
			} else {
				m.setStatus(fmt.Sprintf("📋 copied %d keys", m.session.Tree().Len()), false)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs one line and records it in the transcript
func (m *Model) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	m.history = append(m.history, line)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.historyIndex = len(m.history)

	m.transcript = append(m.transcript, m.styles.Echo.Render("> "+line))
	for _, cmdLine := range SplitCommands(line) {
		out, err := m.session.Exec(cmdLine)
		if err != nil {
			m.transcript = append(m.transcript, m.styles.ErrorMessage.Render(err.Error()))
			m.setStatus(err.Error(), true)
			break
		}
		if out != "" {
			m.transcript = append(m.transcript, out)
		}
		m.setStatus(fmt.Sprintf("size %d, height %d", m.session.Tree().Len(), m.session.Tree().Height()), false)
	}

	m.showHelp = false
	m.refreshOutput()
}

// recall walks the command history; delta -1 goes back in time
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	m.historyIndex = min(max(m.historyIndex+delta, 0), len(m.history))
	if m.historyIndex == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.historyIndex])
	m.input.CursorEnd()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

func (m *Model) refreshOutput() {
	if m.showHelp {
		m.output.SetContent(m.renderHelp())
		m.output.GotoTop()
		return
	}
	if len(m.transcript) == 0 {
		m.output.SetContent("Type a command, or press f1 for help.")
		return
	}
	m.output.SetContent(strings.Join(m.transcript, "\n"))
	m.output.GotoBottom()
}

// renderHelp renders the help markdown once per width
func (m *Model) renderHelp() string {
	source := replHelpMarkdown(m.session.Variant)
	if m.glamourRenderer == nil {
		return source
	}
	key := renderKey("repl-help-"+m.session.Variant, m.width)
	page, err := GetOrRender(m.helpCache, key, func() (string, error) {
		return m.glamourRenderer.Render(source)
	})
	if err != nil {
		return source
	}
	return page
}

func (m *Model) updateLayout() {
	m.output.Width = m.width - 4
	m.output.Height = max(m.height-9, 1)
	m.input.Width = m.width - 12
	m.refreshOutput()
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	title := " 🌳 Session "
	if m.showHelp {
		title = " 📖 Help "
	}
	outputBox := m.styles.Border.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Title.Render(title),
			m.output.View(),
		))

	inputBox := m.styles.Border.
		Width(m.width - 2).
		Render(m.input.View())

	statusStyle := m.styles.SuccessMessage
	if m.statusIsErr {
		statusStyle = m.styles.ErrorMessage
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		outputBox,
		inputBox,
		statusStyle.Render(m.status),
		m.renderKeyHints(),
	)
}

func (m Model) renderKeyHints() string {
	hints := []struct{ key, desc string }{
		{"enter", "run"},
		{"↑/↓", "history"},
		{"pgup/pgdn", "scroll"},
		{"ctrl+y", "copy keys"},
		{"f1", "help"},
		{"esc", "quit"},
	}
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = m.styles.HelpKey.Render(h.key) + " " + m.styles.HelpDesc.Render(h.desc)
	}
	return strings.Join(parts, "  •  ")
}

// runREPL starts the Bubble Tea application
func runREPL(session *Session, hc *cache.Cache) error {
	program := tea.NewProgram(
		InitialModel(session, hc),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}
