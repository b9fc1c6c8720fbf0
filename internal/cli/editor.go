package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/flowgrid/flowfield"
	"github.com/katalvlaran/flowgrid/render"
	"github.com/katalvlaran/flowgrid/scenario"
)

var (
	editorHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	editorStatusStyle = lipgloss.NewStyle().Foreground(colorGreen)
	editorErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

const editorHelp = "←↑↓→/hjkl move · space paint · t target · o agent · m diagonal · d distances · r scatter · c clear · s save · q quit"

// editorModel is the bubbletea model of the interactive grid editor. The
// scenario grid is the stored map; the graph mirrors it and is edited
// incrementally with SetValue so every change rebuilds only the field.
type editorModel struct {
	sc     *scenario.Scenario
	graph  *flowfield.Graph
	logger *log.Logger

	cursor    flowfield.Point
	distances bool
	savePath  string
	scatter   float64
	seed      int64

	status string
	err    error
}

func newEditorModel(sc *scenario.Scenario, savePath string, logger *log.Logger) (*editorModel, error) {
	m := &editorModel{
		sc:       sc,
		logger:   logger,
		savePath: savePath,
		scatter:  0.25,
		seed:     1,
	}
	if !sc.HasTarget {
		sc.Target = flowfield.Point{X: sc.Grid.Width() / 2, Y: sc.Grid.Height() / 2}
		sc.HasTarget = true
		_ = sc.Grid.SetCell(sc.Target.X, sc.Target.Y, flowfield.CodeOpen)
	}
	m.cursor = sc.Target
	if err := m.rebuild(); err != nil {
		return nil, err
	}
	return m, nil
}

// rebuild recreates the graph from the scenario grid and builds a field.
func (m *editorModel) rebuild() error {
	g, err := m.sc.Graph(flowfield.WithLogger(m.logger))
	if err != nil {
		return err
	}
	m.graph = g
	return m.refield()
}

func (m *editorModel) refield() error {
	return m.graph.BuildFlowField(m.sc.Target.X, m.sc.Target.Y)
}

// agent returns the cell whose path to the target is drawn.
func (m *editorModel) agent() (flowfield.Point, bool) {
	if len(m.sc.Sources) == 0 {
		return flowfield.Point{}, false
	}
	return m.sc.Sources[0], true
}

// occupied reports whether p holds the target or the agent.
func (m *editorModel) occupied(p flowfield.Point) bool {
	a, ok := m.agent()
	return p == m.sc.Target || ok && p == a
}

func (m *editorModel) Init() tea.Cmd {
	return nil
}

func (m *editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status, m.err = "", nil

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.move(0, -1)
	case "down", "j":
		m.move(0, 1)
	case "left", "h":
		m.move(-1, 0)
	case "right", "l":
		m.move(1, 0)
	case " ", "enter":
		m.err = m.paint()
	case "t":
		m.err = m.place(true)
	case "o":
		m.err = m.place(false)
	case "m":
		m.err = m.toggleMovement()
	case "d":
		m.distances = !m.distances
	case "r":
		m.err = m.scatterWalls()
	case "c":
		m.sc.Grid.Clear(flowfield.CodeOpen)
		m.err = m.rebuild()
		m.status = "cleared"
	case "s":
		if err := m.sc.Save(m.savePath); err != nil {
			m.err = err
		} else {
			m.status = "saved " + m.savePath
		}
	}
	if m.err != nil {
		m.logger.Debug("editor action failed", "key", key.String(), "err", m.err)
	}
	return m, nil
}

func (m *editorModel) move(dx, dy int) {
	x, y := m.cursor.X+dx, m.cursor.Y+dy
	if m.graph.InBounds(x, y) {
		m.cursor = flowfield.Point{X: x, Y: y}
	}
}

// paint flips the cell under the cursor between wall and floor. The target
// and the agent cannot be painted over.
func (m *editorModel) paint() error {
	p := m.cursor
	if m.occupied(p) {
		m.status = "cannot paint over the target or the agent"
		return nil
	}
	passable, err := m.graph.IsPassable(p.X, p.Y)
	if err != nil {
		return err
	}
	v := flowfield.CodeWall
	if !passable {
		v = flowfield.CodeOpen
	}
	if err := m.sc.Grid.SetCell(p.X, p.Y, v); err != nil {
		return err
	}
	if err := m.graph.SetValue(p.X, p.Y, v); err != nil {
		return err
	}
	return m.refield()
}

// place moves the target (or the agent) onto the cursor if it is passable.
func (m *editorModel) place(target bool) error {
	p := m.cursor
	if ok, err := m.graph.IsPassable(p.X, p.Y); err != nil || !ok {
		m.status = "only passable cells can hold the target or the agent"
		return err
	}
	if target {
		m.sc.Target = p
		return m.refield()
	}
	if len(m.sc.Sources) == 0 {
		m.sc.Sources = []flowfield.Point{p}
	} else {
		m.sc.Sources[0] = p
	}
	return nil
}

func (m *editorModel) toggleMovement() error {
	next := flowfield.Diagonal
	if m.graph.Movement() == flowfield.Diagonal {
		next = flowfield.Orthogonal
	}
	if err := m.graph.SetMovement(next); err != nil {
		return err
	}
	m.sc.Movement = next
	m.status = "movement " + next.String()
	return m.refield()
}

// scatterWalls sprinkles random walls, keeping the target and agent open.
func (m *editorModel) scatterWalls() error {
	m.sc.Grid.Scatter(m.scatter, flowfield.CodeWall, m.seed)
	m.seed++
	_ = m.sc.Grid.SetCell(m.sc.Target.X, m.sc.Target.Y, flowfield.CodeOpen)
	if a, ok := m.agent(); ok {
		_ = m.sc.Grid.SetCell(a.X, a.Y, flowfield.CodeOpen)
	}
	return m.rebuild()
}

func (m *editorModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.sc.Name))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %dx%d · %s · epoch %d", m.graph.Width(), m.graph.Height(), m.graph.Movement(), m.graph.Epoch())))
	b.WriteString("\n\n")

	opts := render.TextOptions{Distances: m.distances, Color: true, Cursor: &m.cursor}
	if a, ok := m.agent(); ok {
		if p, err := m.graph.BuildPathToTarget(a.X, a.Y, true); err == nil {
			opts.Path = p
		}
	}
	b.WriteString(render.Text(m.graph, opts))
	b.WriteString("\n\n")
	b.WriteString(m.inspect())
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(editorErrorStyle.Render(m.err.Error()))
	case m.status != "":
		b.WriteString(editorStatusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(editorHelpStyle.Render(editorHelp))
	return b.String()
}

// inspect describes the node under the cursor.
func (m *editorModel) inspect() string {
	n, err := m.graph.Node(m.cursor.X, m.cursor.Y)
	if err != nil {
		return err.Error()
	}
	parent := "none"
	if n.HasParent {
		parent = n.Parent.String()
	}
	dist := "unreached"
	if n.Reached {
		dist = fmt.Sprint(n.Distance)
	}
	comp, _ := m.graph.ComponentOf(n.X, n.Y)
	nb := make([]string, len(n.Neighbors))
	for i, p := range n.Neighbors {
		nb[i] = p.String()
	}
	return StyleDim.Render(fmt.Sprintf("cell %s  value %d  distance %s  parent %s  component %d\nneighbors (%d) %s",
		m.cursor, n.Value, dist, parent, comp, len(n.Neighbors), strings.Join(nb, " ")))
}
