package repl

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Config{Plain: true, HistorySize: 3})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func typeText(m Model, text string) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

func press(m Model, key tea.KeyType) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	return updated.(Model), cmd
}

// submit types line, presses enter and feeds the evaluation result back
func submit(t *testing.T, m Model, line string) Model {
	t.Helper()
	m = typeText(m, line)
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, evalMsg{}, msg)
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "why> ", cfg.Prompt)
	assert.Equal(t, 100, cfg.HistorySize)
}

func TestView_BeforeResize(t *testing.T) {
	assert.Equal(t, "Lade REPL...", New(Config{}).View())
}

func TestEvaluate_Tree(t *testing.T) {
	m := submit(t, newTestModel(t), "x = 1 + 2;")

	entries := m.Transcript()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].OK)
	assert.Equal(t, ModeTree, entries[0].Mode)
	assert.True(t, strings.HasPrefix(entries[0].Output, "("), entries[0].Output)
	assert.Empty(t, m.Input())
	assert.Contains(t, m.View(), "Modus: Baum")
}

func TestEvaluate_Tokens(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, tea.KeyCtrlT)
	assert.Equal(t, ModeTokens, m.Mode())

	m = submit(t, m, "x = 1;")
	entry := m.Transcript()[0]
	assert.True(t, entry.OK)
	assert.Equal(t, "1:1 identifier x\n1:3 =\n1:5 number 1\n1:6 ;\n1:7 end of input", entry.Output)

	m, _ = press(m, tea.KeyCtrlT)
	assert.Equal(t, ModeTree, m.Mode())
}

func TestEvaluate_Error(t *testing.T) {
	m := submit(t, newTestModel(t), "int x = 'a';")

	entry := m.Transcript()[0]
	assert.False(t, entry.OK)
	assert.Contains(t, entry.Output, "<eingabe>:1:9: error:")
	assert.Contains(t, entry.Output, "hint: int expects")
	assert.Contains(t, m.View(), "Fehler")
}

func TestEnter_BlankLineIgnored(t *testing.T) {
	m := typeText(newTestModel(t), "   ")
	m, cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Empty(t, m.History())
}

func TestHistory(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "a = 1;")
	m = submit(t, m, "b = 2;")
	m = submit(t, m, "b = 2;")
	assert.Equal(t, []string{"a = 1;", "b = 2;"}, m.History())

	m = typeText(m, "draft")
	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, "b = 2;", m.Input())
	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, "a = 1;", m.Input())
	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, "a = 1;", m.Input(), "up at the oldest entry stays put")

	m, _ = press(m, tea.KeyDown)
	assert.Equal(t, "b = 2;", m.Input())
	m, _ = press(m, tea.KeyDown)
	assert.Equal(t, "draft", m.Input())
	m, _ = press(m, tea.KeyDown)
	assert.Equal(t, "draft", m.Input())
}

func TestHistory_Bounded(t *testing.T) {
	m := newTestModel(t)
	for _, line := range []string{"a = 1;", "b = 1;", "c = 1;", "d = 1;"} {
		m = submit(t, m, line)
	}
	assert.Equal(t, []string{"b = 1;", "c = 1;", "d = 1;"}, m.History())
}

func TestClear(t *testing.T) {
	m := submit(t, newTestModel(t), "x = 1;")
	m, _ = press(m, tea.KeyCtrlL)
	assert.Empty(t, m.Transcript())
	assert.Len(t, m.History(), 1, "clearing keeps the history")
}

func TestQuit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := press(newTestModel(t), key)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "Baum", ModeTree.String())
	assert.Equal(t, "Tokens", ModeTokens.String())
	assert.Equal(t, "?", Mode(7).String())
}
