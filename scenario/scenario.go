// Package scenario loads flow-field scenarios from TOML or YAML files.
//
// A scenario describes a grid of cell codes, the movement mode, which codes
// are passable, a target and any number of agent sources:
//
//	movement = "diagonal"
//	open = [0]
//	rows = [
//	  "S...#....",
//	  "..#.#.##.",
//	  "..#...#T.",
//	]
//	sources = [[0, 2]]
//
//	[legend]
//	"~" = 4
//
// The grid is given either as `rows` (one string per row, one rune per cell,
// decoded through the legend) or as `grid` (a matrix of integer codes).
// The legend extends DefaultLegend; an entry for "." or "#" overrides it.
// In `rows`, 'T' marks the target and 'S' marks a source; both cells are
// stored as flowfield.CodeOpen. An explicit `target`/`sources` entry
// overrides or adds to the markers.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/flowgrid/flowfield"
	"github.com/katalvlaran/flowgrid/gridstore"
)

var (
	// ErrUnsupportedFormat indicates a file extension other than .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("scenario: unsupported format")
	// ErrInvalidScenario indicates a scenario that decodes but does not describe a usable grid.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")
)

// Format names a scenario encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Markers used in `rows`.
const (
	MarkerTarget = 'T'
	MarkerSource = 'S'
)

// DefaultLegend maps the row runes every scenario understands to cell codes.
func DefaultLegend() map[string]int {
	return map[string]int{
		".": flowfield.CodeOpen,
		"#": flowfield.CodeWall,
	}
}

// File is the on-disk shape shared by the TOML and YAML encodings.
type File struct {
	Name     string         `toml:"name,omitempty" yaml:"name,omitempty"`
	Movement string         `toml:"movement,omitempty" yaml:"movement,omitempty"`
	Open     []int          `toml:"open,omitempty" yaml:"open,omitempty"`
	Rows     []string       `toml:"rows,omitempty" yaml:"rows,omitempty"`
	Grid     [][]int        `toml:"grid,omitempty" yaml:"grid,omitempty"`
	Legend   map[string]int `toml:"legend,omitempty" yaml:"legend,omitempty"`
	Target   []int          `toml:"target,omitempty" yaml:"target,omitempty"`
	Sources  [][]int        `toml:"sources,omitempty" yaml:"sources,omitempty"`
}

// Scenario is a decoded, validated File.
type Scenario struct {
	Name      string
	Grid      *gridstore.Grid
	Movement  flowfield.Movement
	Open      []int
	Target    flowfield.Point
	HasTarget bool
	Sources   []flowfield.Point
}

// FormatFor picks the encoding from a file name's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and decodes the scenario file at path.
func Load(path string) (*Scenario, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes data in the given format and validates the result.
func Parse(data []byte, format Format) (*Scenario, error) {
	var f File
	switch format {
	case FormatTOML:
		if err := decodeTOML(data, &f); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := decodeYAML(data, &f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return f.Scenario()
}

// Scenario validates f and converts it into a Scenario.
func (f *File) Scenario() (*Scenario, error) {
	movement, err := flowfield.ParseMovement(f.Movement)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	s := &Scenario{
		Name:     f.Name,
		Movement: movement,
		Open:     f.Open,
	}
	if len(s.Open) == 0 {
		s.Open = []int{flowfield.CodeOpen}
	}

	var cells [][]int
	switch {
	case len(f.Rows) > 0 && len(f.Grid) > 0:
		return nil, fmt.Errorf("%w: both rows and grid given", ErrInvalidScenario)
	case len(f.Rows) > 0:
		cells, err = s.decodeRows(f.Rows, f.Legend)
		if err != nil {
			return nil, err
		}
	default:
		cells = f.Grid
	}

	s.Grid, err = gridstore.FromRows(cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	if f.Target != nil {
		p, err := s.point(f.Target)
		if err != nil {
			return nil, fmt.Errorf("%w: target: %v", ErrInvalidScenario, err)
		}
		s.Target, s.HasTarget = p, true
	}
	for i, src := range f.Sources {
		p, err := s.point(src)
		if err != nil {
			return nil, fmt.Errorf("%w: source %d: %v", ErrInvalidScenario, i, err)
		}
		s.Sources = append(s.Sources, p)
	}
	return s, nil
}

// decodeRows turns row strings into codes, recording T and S markers.
func (s *Scenario) decodeRows(rows []string, legend map[string]int) ([][]int, error) {
	runes := DefaultLegend()
	for k, v := range legend {
		runes[k] = v
	}
	cells := make([][]int, len(rows))
	for y, row := range rows {
		line := []rune(row)
		cells[y] = make([]int, len(line))
		for x, r := range line {
			if code, ok := runes[string(r)]; ok {
				cells[y][x] = code
				continue
			}
			switch r {
			case MarkerTarget:
				if s.HasTarget {
					return nil, fmt.Errorf("%w: second target marker at (%d,%d)", ErrInvalidScenario, x, y)
				}
				s.Target, s.HasTarget = flowfield.Point{X: x, Y: y}, true
				cells[y][x] = flowfield.CodeOpen
			case MarkerSource:
				s.Sources = append(s.Sources, flowfield.Point{X: x, Y: y})
				cells[y][x] = flowfield.CodeOpen
			default:
				return nil, fmt.Errorf("%w: unknown cell %q at (%d,%d)", ErrInvalidScenario, r, x, y)
			}
		}
	}
	return cells, nil
}

func (s *Scenario) point(xy []int) (flowfield.Point, error) {
	if len(xy) != 2 {
		return flowfield.Point{}, fmt.Errorf("want [x, y], got %v", xy)
	}
	if !s.Grid.InBounds(xy[0], xy[1]) {
		return flowfield.Point{}, fmt.Errorf("(%d,%d) outside %dx%d grid", xy[0], xy[1], s.Grid.Width(), s.Grid.Height())
	}
	return flowfield.Point{X: xy[0], Y: xy[1]}, nil
}

// Passability returns the rule described by the scenario's open codes.
func (s *Scenario) Passability() flowfield.Passability {
	return flowfield.OpenCodes(s.Open)
}

// Graph builds a flowfield.Graph from the scenario. Extra options are applied
// after the scenario's own movement and passability.
func (s *Scenario) Graph(opts ...flowfield.Option) (*flowfield.Graph, error) {
	base := []flowfield.Option{
		flowfield.WithMovement(s.Movement),
		flowfield.WithPassability(s.Passability()),
	}
	return flowfield.FromGrid(s.Grid, append(base, opts...)...)
}

// File converts the scenario back into its on-disk shape, using the numeric
// grid form so that any code survives the round trip.
func (s *Scenario) File() *File {
	f := &File{
		Name:     s.Name,
		Movement: s.Movement.String(),
		Open:     s.Open,
		Grid:     s.Grid.Rows(),
	}
	if s.HasTarget {
		f.Target = []int{s.Target.X, s.Target.Y}
	}
	for _, p := range s.Sources {
		f.Sources = append(f.Sources, []int{p.X, p.Y})
	}
	return f
}

// Save encodes the scenario into path, picking the format from its extension.
func (s *Scenario) Save(path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := s.Encode(format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Encode serializes the scenario in the given format.
func (s *Scenario) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return encodeTOML(s.File())
	case FormatYAML:
		return encodeYAML(s.File())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
