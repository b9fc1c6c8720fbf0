package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/flowgrid/flowfield"
)

// Glyphs used by Text.
const (
	GlyphWall      = "#"
	GlyphTarget    = "T"
	GlyphUnreached = "·"
	GlyphPath      = "*"
)

var arrows = map[flowfield.Point]string{
	{X: 0, Y: -1}:  "↑",
	{X: 1, Y: 0}:   "→",
	{X: 0, Y: 1}:   "↓",
	{X: -1, Y: 0}:  "←",
	{X: -1, Y: -1}: "↖",
	{X: 1, Y: -1}:  "↗",
	{X: 1, Y: 1}:   "↘",
	{X: -1, Y: 1}:  "↙",
}

var (
	styleWall      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleTarget    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("167"))
	styleUnreached = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	stylePath      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	styleReached   = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleCursor    = lipgloss.NewStyle().Reverse(true)
)

// TextOptions configures Text.
type TextOptions struct {
	// Distances prints hop counts instead of direction arrows.
	Distances bool
	// Path cells are drawn with GlyphPath.
	Path []flowfield.Point
	// Color enables lipgloss styling. Leave false for plain output.
	Color bool
	// Cursor, when set, is drawn in reverse video. Only used with Color.
	Cursor *flowfield.Point
}

// Text renders the grid row by row, cells separated by one space and padded
// to a common width.
// Complexity: O(W*H).
func Text(g *flowfield.Graph, opts TextOptions) string {
	onPath := make(map[flowfield.Point]bool, len(opts.Path))
	for _, p := range opts.Path {
		onPath[p] = true
	}
	target, hasTarget := g.Target()

	cells := make([][]string, g.Height())
	styles := make([][]lipgloss.Style, g.Height())
	width := 1
	for y := range cells {
		cells[y] = make([]string, g.Width())
		styles[y] = make([]lipgloss.Style, g.Width())
		for x := range cells[y] {
			glyph, style := cellGlyph(g, flowfield.Point{X: x, Y: y}, hasTarget && target == flowfield.Point{X: x, Y: y}, onPath, opts.Distances)
			cells[y][x], styles[y][x] = glyph, style
			width = max(width, lipgloss.Width(glyph))
		}
	}

	var b strings.Builder
	for y, row := range cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, glyph := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			cell := strings.Repeat(" ", width-lipgloss.Width(glyph)) + glyph
			if opts.Color {
				style := styles[y][x]
				if opts.Cursor != nil && *opts.Cursor == (flowfield.Point{X: x, Y: y}) {
					style = style.Inherit(styleCursor)
				}
				cell = style.Render(cell)
			}
			b.WriteString(cell)
		}
	}
	return b.String()
}

func cellGlyph(g *flowfield.Graph, p flowfield.Point, isTarget bool, onPath map[flowfield.Point]bool, distances bool) (string, lipgloss.Style) {
	switch {
	case isTarget && g.Reached(p.X, p.Y):
		if distances {
			return "0", styleTarget
		}
		return GlyphTarget, styleTarget
	case onPath[p]:
		return GlyphPath, stylePath
	}

	if ok, _ := g.IsPassable(p.X, p.Y); !ok {
		return GlyphWall, styleWall
	}
	if !g.Reached(p.X, p.Y) {
		return GlyphUnreached, styleUnreached
	}
	if distances {
		d, _, _ := g.Distance(p.X, p.Y)
		return strconv.Itoa(d), styleReached
	}
	step, _, _ := g.Direction(p.X, p.Y)
	return arrows[step], styleReached
}
