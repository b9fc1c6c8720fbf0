package scenario_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowgrid/flowfield"
	"github.com/katalvlaran/flowgrid/scenario"
)

func TestLoad_TOMLRows(t *testing.T) {
	s, err := scenario.Load(filepath.Join("testdata", "corridor.toml"))
	require.NoError(t, err)

	assert.Equal(t, "corridor", s.Name)
	assert.Equal(t, flowfield.Orthogonal, s.Movement)
	assert.Equal(t, []int{flowfield.CodeOpen}, s.Open)
	assert.True(t, s.HasTarget)
	assert.Equal(t, flowfield.Point{X: 7, Y: 2}, s.Target)
	assert.Equal(t, []flowfield.Point{{X: 0, Y: 0}}, s.Sources)

	assert.Equal(t, 9, s.Grid.Width())
	assert.Equal(t, 3, s.Grid.Height())
	assert.True(t, s.Grid.Match(4, 0, flowfield.CodeWall))
	assert.True(t, s.Grid.Match(7, 2, flowfield.CodeOpen), "target marker is stored as floor")
}

func TestLoad_YAMLLegend(t *testing.T) {
	s, err := scenario.Load(filepath.Join("testdata", "swamp.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "swamp", s.Name, "name defaults to the file name")
	assert.Equal(t, flowfield.Diagonal, s.Movement)
	assert.True(t, s.Grid.Match(2, 0, 4))
	assert.Equal(t, []flowfield.Point{{X: 0, Y: 0}, {X: 0, Y: 2}}, s.Sources)

	g, err := s.Graph()
	require.NoError(t, err)
	require.NoError(t, g.BuildFlowField(s.Target.X, s.Target.Y))

	// swamp cells are passable under the scenario's open codes
	d, ok, err := g.Distance(0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4, d)
}

// TestParse_LegendExtendsDefaults parses a TOML scenario whose legend only
// adds a swamp rune; "." and "#" keep their default codes.
func TestParse_LegendExtendsDefaults(t *testing.T) {
	data := `
movement = "diagonal"
open = [0]
rows = [
  "S...#....",
  "..#.#.##.",
  "..#...#T~",
]
sources = [[0, 2]]

[legend]
"~" = 4
`
	s, err := scenario.Parse([]byte(data), scenario.FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, flowfield.Diagonal, s.Movement)
	assert.Equal(t, flowfield.Point{X: 7, Y: 2}, s.Target)
	assert.Equal(t, []flowfield.Point{{X: 0, Y: 0}, {X: 0, Y: 2}}, s.Sources)
	assert.True(t, s.Grid.Match(1, 0, flowfield.CodeOpen))
	assert.True(t, s.Grid.Match(4, 0, flowfield.CodeWall))
	assert.True(t, s.Grid.Match(8, 2, 4))

	// an explicit entry overrides a default rune
	s, err = scenario.Parse([]byte("rows = [\".#\"]\n[legend]\n\".\" = 3\n"), scenario.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{3, flowfield.CodeWall}}, s.Grid.Rows())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		format scenario.Format
		data   string
		err    error
	}{
		{"UnknownFormat", "ini", "", scenario.ErrUnsupportedFormat},
		{"Ragged", scenario.FormatTOML, `grid = [[0, 0], [0]]`, scenario.ErrInvalidScenario},
		{"Empty", scenario.FormatTOML, `movement = "orthogonal"`, scenario.ErrInvalidScenario},
		{"BadMovement", scenario.FormatTOML, `movement = "hex"` + "\n" + `grid = [[0]]`, scenario.ErrInvalidScenario},
		{"UnknownRune", scenario.FormatTOML, `rows = ["..x"]`, scenario.ErrInvalidScenario},
		{"TwoTargets", scenario.FormatTOML, `rows = ["T.T"]`, scenario.ErrInvalidScenario},
		{"TargetOutside", scenario.FormatTOML, "grid = [[0]]\ntarget = [1, 0]", scenario.ErrInvalidScenario},
		{"SourceShape", scenario.FormatYAML, "grid: [[0]]\nsources: [[0]]", scenario.ErrInvalidScenario},
		{"BothForms", scenario.FormatYAML, "grid: [[0]]\nrows: ['.']", scenario.ErrInvalidScenario},
		{"UnknownKey", scenario.FormatTOML, "grid = [[0]]\nspeed = 3", scenario.ErrInvalidScenario},
		{"UnknownKeyYAML", scenario.FormatYAML, "grid: [[0]]\nspeed: 3", scenario.ErrInvalidScenario},
		{"BadSyntax", scenario.FormatTOML, "grid = [[0]", scenario.ErrInvalidScenario},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.data), tc.format)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFormatFor(t *testing.T) {
	for path, want := range map[string]scenario.Format{
		"a.toml": scenario.FormatTOML,
		"b.YAML": scenario.FormatYAML,
		"c.yml":  scenario.FormatYAML,
	} {
		got, err := scenario.FormatFor(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := scenario.FormatFor("map.json")
	assert.ErrorIs(t, err, scenario.ErrUnsupportedFormat)
}

// TestSave_RoundTrip saves a scenario in both formats and loads it back.
func TestSave_RoundTrip(t *testing.T) {
	src, err := scenario.Load(filepath.Join("testdata", "swamp.yaml"))
	require.NoError(t, err)
	dir := t.TempDir()

	for _, name := range []string{"out.toml", "out.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, src.Save(path))

		got, err := scenario.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, src.Name, got.Name)
		assert.Equal(t, src.Movement, got.Movement)
		assert.Equal(t, src.Open, got.Open)
		assert.Equal(t, src.Grid.Rows(), got.Grid.Rows())
		assert.Equal(t, src.Target, got.Target)
		assert.Equal(t, src.Sources, got.Sources)
	}

	assert.ErrorIs(t, src.Save(filepath.Join(dir, "out.txt")), scenario.ErrUnsupportedFormat)
}
