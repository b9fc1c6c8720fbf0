package render

import (
	"github.com/katalvlaran/flowgrid/flowfield"
)

// Snapshot is the JSON view of a graph and its current field.
// Distances holds flowfield.Unset for cells outside the field.
type Snapshot struct {
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Movement  string           `json:"movement"`
	Epoch     uint64           `json:"epoch"`
	Target    *flowfield.Point `json:"target,omitempty"`
	Visited   int              `json:"visited"`
	Values    [][]int          `json:"values"`
	Distances [][]int          `json:"distances"`
}

// NewSnapshot captures g's grid and current field.
func NewSnapshot(g *flowfield.Graph) Snapshot {
	s := Snapshot{
		Width:     g.Width(),
		Height:    g.Height(),
		Movement:  g.Movement().String(),
		Epoch:     g.Epoch(),
		Values:    g.Values(),
		Distances: g.Distances(),
	}
	if t, ok := g.Target(); ok {
		s.Target = &t
		s.Visited = g.Visited()
	}
	return s
}

// PathView is the JSON view of a reconstructed path.
type PathView struct {
	From  flowfield.Point   `json:"from"`
	Trim  bool              `json:"trim"`
	Steps int               `json:"steps"`
	Cells []flowfield.Point `json:"cells"`
}

// NewPathView wraps a path returned by BuildPathToTarget.
func NewPathView(from flowfield.Point, trim bool, cells []flowfield.Point) PathView {
	if cells == nil {
		cells = []flowfield.Point{}
	}
	return PathView{From: from, Trim: trim, Steps: len(cells), Cells: cells}
}
