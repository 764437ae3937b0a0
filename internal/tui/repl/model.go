// ============================================================================
// why - Sprachwerkzeuge
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the interactive why REPL
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/why/foundation/why"
	"github.com/msto63/why/foundation/why/ast"
	"github.com/msto63/why/internal/diag"
	"github.com/msto63/why/pkg/core/version"
)

// sourceName labels REPL input in diagnostics
const sourceName = "<eingabe>"

// Config holds REPL configuration
type Config struct {
	Engine      *why.Engine
	Prompt      string
	HistorySize int
	// Plain disables colors in rendered diagnostics
	Plain bool
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Prompt:      "why> ",
		HistorySize: 100,
	}
}

// Model is the Bubbletea model for the REPL
type Model struct {
	// State
	width  int
	height int
	ready  bool
	mode   Mode

	// Components
	viewport viewport.Model
	input    textinput.Model

	// Transcript and history
	transcript []Entry
	history    []string
	histPos    int
	draft      string

	// Configuration
	engine      *why.Engine
	renderer    *diag.Renderer
	prompt      string
	historySize int
}

// New creates a REPL model
func New(cfg Config) Model {
	defaults := DefaultConfig()
	if cfg.Prompt == "" {
		cfg.Prompt = defaults.Prompt
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = defaults.HistorySize
	}
	engine := cfg.Engine
	if engine == nil {
		engine = why.NewEngine(why.DefaultOptions())
	}

	input := textinput.New()
	input.Prompt = cfg.Prompt
	input.Placeholder = "Anweisung eingeben, z.B. int x = 1;"
	input.Focus()

	return Model{
		mode:        ModeTree,
		input:       input,
		engine:      engine,
		renderer:    diag.NewRenderer(cfg.Plain),
		prompt:      cfg.Prompt,
		historySize: cfg.HistorySize,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title panel
		footerHeight := 5 // Input, status bar, help, panel border
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - lipgloss.Width(m.prompt) - 2
		m.updateViewportContent()

	case evalMsg:
		m.transcript = append(m.transcript, msg.entry)
		m.updateViewportContent()
		m.viewport.GotoBottom()
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyCtrlT:
		if m.mode == ModeTree {
			m.mode = ModeTokens
		} else {
			m.mode = ModeTree
		}
		return m, nil

	case tea.KeyCtrlL:
		m.transcript = nil
		m.updateViewportContent()
		return m, nil

	case tea.KeyEnter:
		line := m.input.Value()
		if strings.TrimSpace(line) == "" {
			return m, nil
		}
		m.pushHistory(line)
		m.input.SetValue("")
		return m, m.evaluate(line, m.mode)

	case tea.KeyUp:
		m.historyBack()
		return m, nil

	case tea.KeyDown:
		m.historyForward()
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate parses line in the background and reports an evalMsg
func (m Model) evaluate(line string, mode Mode) tea.Cmd {
	engine := m.engine
	renderer := m.renderer
	return func() tea.Msg {
		start := time.Now()
		entry := Entry{Input: line, Mode: mode}

		var err error
		switch mode {
		case ModeTokens:
			tokens, terr := engine.Tokenize(line)
			if err = terr; err == nil {
				lines := make([]string, len(tokens))
				for i, tok := range tokens {
					lines[i] = tok.Listing()
				}
				entry.Output = strings.Join(lines, "\n")
			}
		default:
			result, perr := engine.Parse(line)
			if err = perr; err == nil {
				lines := make([]string, len(result.Program.Stmts))
				for i, stmt := range result.Program.Stmts {
					lines[i] = ast.Sprint(stmt)
				}
				entry.Output = strings.Join(lines, "\n")
			}
		}

		if err != nil {
			entry.Output = strings.TrimRight(renderer.Render(sourceName, line, err), "\n")
		} else {
			entry.OK = true
		}
		entry.Duration = time.Since(start)
		return evalMsg{entry: entry}
	}
}

// pushHistory records line, skipping immediate repeats, and resets the
// history cursor
func (m *Model) pushHistory(line string) {
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
	}
	if over := len(m.history) - m.historySize; over > 0 {
		m.history = m.history[over:]
	}
	m.histPos = len(m.history)
	m.draft = ""
}

func (m *Model) historyBack() {
	if m.histPos == 0 {
		return
	}
	if m.histPos == len(m.history) {
		m.draft = m.input.Value()
	}
	m.histPos--
	m.input.SetValue(m.history[m.histPos])
	m.input.CursorEnd()
}

func (m *Model) historyForward() {
	if m.histPos >= len(m.history) {
		return
	}
	m.histPos++
	if m.histPos == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[m.histPos])
	}
	m.input.CursorEnd()
}

// Mode returns the current output mode
func (m Model) Mode() Mode {
	return m.mode
}

// History returns the accepted lines, oldest first
func (m Model) History() []string {
	return append([]string(nil), m.history...)
}

// Transcript returns the evaluated entries
func (m Model) Transcript() []Entry {
	return append([]Entry(nil), m.transcript...)
}

// Input returns the current content of the prompt
func (m Model) Input() string {
	return m.input.Value()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade REPL..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(TranscriptPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)
	ver := HelpDescStyle.Render("Sprache " + version.Language)
	header := lipgloss.JoinHorizontal(lipgloss.Center, logo, strings.Repeat(" ", 3), ver)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderStatusBar() string {
	left := HelpDescStyle.Render(fmt.Sprintf("Modus: %s", m.mode))

	right := HelpDescStyle.Render("bereit")
	if n := len(m.transcript); n > 0 {
		last := m.transcript[n-1]
		if last.OK {
			right = StatusOKStyle.Render("ok")
		} else {
			right = StatusErrorStyle.Render("Fehler")
		}
	}

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if padding < 2 {
		padding = 2
	}
	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", padding) + right)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "Parsen"),
		RenderKeyHint("↑/↓", "Verlauf"),
		RenderKeyHint("Ctrl+T", "Baum/Tokens"),
		RenderKeyHint("Ctrl+L", "Leeren"),
		RenderKeyHint("Esc", "Beenden"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent renders the transcript into the viewport
func (m *Model) updateViewportContent() {
	var content strings.Builder

	for _, e := range m.transcript {
		content.WriteString(InputEchoStyle.Render(m.prompt + e.Input))
		content.WriteString("  ")
		content.WriteString(DurationStyle.Render(e.Duration.Round(time.Microsecond).String()))
		content.WriteString("\n")
		if e.OK {
			content.WriteString(OutputStyle.Render(e.Output))
		} else {
			content.WriteString(OutputErrorStyle.Render(e.Output))
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// Run starts the REPL
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
