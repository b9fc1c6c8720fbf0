package gridstore_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowgrid/gridstore"
)

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridstore.New(tc.w, tc.h, 0)
			if !errors.Is(err, gridstore.ErrEmptyGrid) {
				t.Errorf("New(%d,%d) error = %v; want ErrEmptyGrid", tc.w, tc.h, err)
			}
		})
	}
}

func TestFromRows(t *testing.T) {
	_, err := gridstore.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, gridstore.ErrNonRectangular)

	_, err = gridstore.FromRows(nil)
	require.ErrorIs(t, err, gridstore.ErrEmptyGrid)

	src := [][]int{{0, 1}, {1, 0}}
	g, err := gridstore.FromRows(src)
	require.NoError(t, err)
	src[0][0] = 9
	v, err := g.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, v, "FromRows must copy its input")
}

func TestCellAccess(t *testing.T) {
	g, err := gridstore.New(3, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())

	require.NoError(t, g.SetCell(2, 1, 7))
	assert.True(t, g.Match(2, 1, 7))
	assert.False(t, g.Match(3, 1, 7))

	assert.ErrorIs(t, g.SetCell(3, 0, 1), gridstore.ErrOutOfBounds)
	_, err = g.Cell(0, -1)
	assert.ErrorIs(t, err, gridstore.ErrOutOfBounds)
}

func TestFillRectAndClear(t *testing.T) {
	g, _ := gridstore.New(4, 3, 0)
	g.FillRect(2, 1, 5, 5, 1) // clipped to the grid
	assert.Equal(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	}, g.Rows())

	g.Clear(2)
	for _, row := range g.Rows() {
		for _, v := range row {
			assert.Equal(t, 2, v)
		}
	}
}

func TestScatterDeterministic(t *testing.T) {
	a, _ := gridstore.New(20, 20, 0)
	b, _ := gridstore.New(20, 20, 0)
	a.Scatter(0.3, 1, 42)
	b.Scatter(0.3, 1, 42)
	assert.Equal(t, a.Rows(), b.Rows())
}
