package cli

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowgrid/flowfield"
	"github.com/katalvlaran/flowgrid/scenario"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestEditor(t *testing.T) *editorModel {
	t.Helper()
	path := writeScenario(t, "room.toml", room)
	sc, save, err := editScenario([]string{path}, editOpts{})
	require.NoError(t, err)
	assert.Equal(t, path, save)

	m, err := newEditorModel(sc, save, log.New(io.Discard))
	require.NoError(t, err)
	return m
}

func press(m *editorModel, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func TestEditor_PaintRebuildsField(t *testing.T) {
	m := newTestEditor(t)
	require.Equal(t, flowfield.Point{X: 3, Y: 2}, m.cursor, "cursor starts on the target")
	require.True(t, m.graph.Reached(0, 0))

	press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, flowfield.Point{X: 2, Y: 2}, m.cursor)
	assert.True(t, m.sc.Grid.Match(2, 2, flowfield.CodeWall))
	assert.False(t, m.graph.Reached(0, 0), "the target is sealed off")

	press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.sc.Grid.Match(2, 2, flowfield.CodeOpen))
	d, ok, _ := m.graph.Distance(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 5, d)
}

func TestEditor_TargetAndAgentAreProtected(t *testing.T) {
	m := newTestEditor(t)

	press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Contains(t, m.status, "cannot paint")
	assert.True(t, m.sc.Grid.Match(3, 2, flowfield.CodeOpen))

	// (3,1) is a wall: neither the target nor the agent may move there
	press(m, runes("k"), runes("t"))
	assert.Equal(t, flowfield.Point{X: 3, Y: 2}, m.sc.Target)
	press(m, runes("o"))
	assert.Equal(t, []flowfield.Point{{X: 0, Y: 0}}, m.sc.Sources)

	press(m, runes("h"), runes("j"), runes("t"))
	assert.Equal(t, flowfield.Point{X: 2, Y: 2}, m.sc.Target)
	tgt, _ := m.graph.Target()
	assert.Equal(t, flowfield.Point{X: 2, Y: 2}, tgt)

	press(m, runes("k"), runes("o"))
	assert.Equal(t, []flowfield.Point{{X: 2, Y: 1}}, m.sc.Sources)
}

func TestEditor_MovementAndView(t *testing.T) {
	m := newTestEditor(t)
	press(m, runes("m"))
	assert.Equal(t, flowfield.Diagonal, m.graph.Movement())
	assert.Equal(t, flowfield.Diagonal, m.sc.Movement)
	assert.Equal(t, "movement diagonal", m.status)

	press(m, runes("d"))
	view := m.View()
	assert.Contains(t, view, "room")
	assert.Contains(t, view, "diagonal")
	assert.Contains(t, view, "cell 3,2")
	assert.Contains(t, view, "q quit")

	press(m, runes("m"))
	assert.Equal(t, flowfield.Orthogonal, m.graph.Movement())
}

func TestEditor_ScatterClearSave(t *testing.T) {
	m := newTestEditor(t)
	m.scatter = 1

	press(m, runes("r"))
	assert.True(t, m.sc.Grid.Match(3, 2, flowfield.CodeOpen), "target stays open")
	assert.True(t, m.sc.Grid.Match(0, 0, flowfield.CodeOpen), "agent stays open")
	assert.True(t, m.sc.Grid.Match(1, 0, flowfield.CodeWall))

	press(m, runes("c"))
	assert.Equal(t, "cleared", m.status)
	assert.True(t, m.sc.Grid.Match(1, 1, flowfield.CodeOpen))
	assert.Equal(t, 12, m.graph.Visited())

	m.savePath = filepath.Join(t.TempDir(), "saved.yaml")
	press(m, runes("s"))
	require.NoError(t, m.err)
	got, err := scenario.Load(m.savePath)
	require.NoError(t, err)
	assert.Equal(t, m.sc.Grid.Rows(), got.Grid.Rows())
	assert.Equal(t, m.sc.Target, got.Target)
}

func TestEditor_Quit(t *testing.T) {
	m := newTestEditor(t)
	assert.Nil(t, press(m, runes("x")))
	assert.NotNil(t, press(m, runes("q")))
}

func TestEditScenario_Blank(t *testing.T) {
	sc, save, err := editScenario(nil, editOpts{width: 5, height: 4})
	require.NoError(t, err)
	assert.Equal(t, defaultSavePath, save)
	assert.Equal(t, []flowfield.Point{{X: 0, Y: 0}}, sc.Sources)

	m, err := newEditorModel(sc, save, log.New(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, flowfield.Point{X: 2, Y: 2}, sc.Target)
	assert.Equal(t, 20, m.graph.Visited())

	_, _, err = editScenario(nil, editOpts{width: 0, height: 4})
	assert.Error(t, err)
	_, _, err = editScenario(nil, editOpts{width: 3, height: 3, save: "out.json"})
	assert.ErrorIs(t, err, scenario.ErrUnsupportedFormat)
}
