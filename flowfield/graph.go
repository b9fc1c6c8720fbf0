package flowfield

import (
	"fmt"

	"github.com/katalvlaran/flowgrid/gridstore"
)

// New builds a Graph from a non-empty, rectangular 2D slice of cell codes.
// One node is created per cell in row-major order, then every node gets its
// neighbor list under the configured movement and passability.
// The input slice is only read; later changes to it do not affect the graph.
// Returns ErrInvalidDimensions for empty or ragged input and
// ErrInvalidMovement for an unknown movement option.
// Complexity: O(W×H×d) time and memory.
func New(values [][]int, opts ...Option) (*Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: grid has no rows or no columns", ErrInvalidDimensions)
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, y, len(row), w)
		}
	}

	nodes := make([]node, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nodes[y*w+x] = node{
				x:        x,
				y:        y,
				value:    values[y][x],
				parent:   NoParent,
				distance: Unset,
			}
		}
	}

	g := &Graph{
		width:    w,
		height:   h,
		nodes:    nodes,
		movement: o.movement,
		offsets:  offsetsFor(o.movement),
		passable: o.passable,
		logger:   o.logger,
		target:   NoParent,
		queue:    newFrontier(w * h),
	}
	g.buildAll()
	g.logger.Debug("graph built", "width", w, "height", h, "movement", g.movement)

	return g, nil
}

// FromGrid builds a Graph from a gridstore.Grid.
func FromGrid(grid *gridstore.Grid, opts ...Option) (*Graph, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidDimensions)
	}
	return New(grid.Rows(), opts...)
}

func offsetsFor(m Movement) [][2]int {
	if m == Diagonal {
		return diagonalOffsets
	}
	return orthogonalOffsets
}

// Width returns the number of columns.
func (g *Graph) Width() int { return g.width }

// Height returns the number of rows.
func (g *Graph) Height() int { return g.height }

// Movement returns the current movement mode.
func (g *Graph) Movement() Movement { return g.movement }

// Epoch returns the number of flow fields computed so far on this graph.
func (g *Graph) Epoch() uint64 { return g.epoch }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Graph) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to its row-major arena index: y*Width + x.
// The result is meaningless for out-of-bounds input; check InBounds first.
func (g *Graph) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Graph) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

func (g *Graph) point(idx int) Point {
	return Point{X: g.nodes[idx].x, Y: g.nodes[idx].y}
}

// indexOf validates (x,y) and returns its arena index.
func (g *Graph) indexOf(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrInvalidCoordinate, x, y, g.width, g.height)
	}
	return g.Index(x, y), nil
}

func (g *Graph) isPassable(idx int) bool {
	return g.passable.Passable(g.nodes[idx].value)
}

// SetMovement switches between orthogonal and diagonal movement.
// It is a no-op when m equals the current mode; otherwise every node's
// neighbor list is recomputed under the new mode.
// Complexity: O(W×H×d).
func (g *Graph) SetMovement(m Movement) error {
	if !m.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMovement, int(m))
	}
	if m == g.movement {
		return nil
	}
	g.movement = m
	g.offsets = offsetsFor(m)
	g.buildAll()
	g.logger.Debug("movement changed", "movement", m)

	return nil
}

// SetPassability replaces the rule used by future adjacency computations.
// Existing adjacency is left alone: call Disconnect/Reconnect on the cells
// whose passability changed, or Rebuild. nil restores DefaultPassability.
func (g *Graph) SetPassability(p Passability) {
	if p == nil {
		p = DefaultPassability()
	}
	g.passable = p
}

// Rebuild recomputes every node's neighbor list under the current movement
// and passability rule.
// Complexity: O(W×H×d).
func (g *Graph) Rebuild() {
	g.buildAll()
	g.logger.Debug("graph rebuilt", "movement", g.movement)
}

func (g *Graph) buildAll() {
	for i := range g.nodes {
		g.nodes[i].neighbors = g.neighborsOf(i, g.nodes[i].neighbors[:0])
	}
}

// neighborsOf appends, in offset order, every in-bounds passable neighbor of
// node i to dst. The node's own passability is not consulted.
func (g *Graph) neighborsOf(i int, dst []int) []int {
	n := &g.nodes[i]
	for _, d := range g.offsets {
		nx, ny := n.x+d[0], n.y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		j := g.Index(nx, ny)
		if g.isPassable(j) {
			dst = append(dst, j)
		}
	}
	return dst
}

// Value returns the cell code at (x,y).
func (g *Graph) Value(x, y int) (int, error) {
	i, err := g.indexOf(x, y)
	if err != nil {
		return 0, err
	}
	return g.nodes[i].value, nil
}

// IsPassable applies the current passability rule to the cell at (x,y).
func (g *Graph) IsPassable(x, y int) (bool, error) {
	i, err := g.indexOf(x, y)
	if err != nil {
		return false, err
	}
	return g.isPassable(i), nil
}

// Neighbors returns the current neighbor list of (x,y) in offset order.
// The returned slice is a copy.
func (g *Graph) Neighbors(x, y int) ([]Point, error) {
	i, err := g.indexOf(x, y)
	if err != nil {
		return nil, err
	}
	return g.neighborPoints(i), nil
}

func (g *Graph) neighborPoints(i int) []Point {
	nbrs := g.nodes[i].neighbors
	out := make([]Point, len(nbrs))
	for k, j := range nbrs {
		out[k] = g.point(j)
	}
	return out
}

// Node returns a snapshot of the node at (x,y). Distance and Parent are
// reported only when the node belongs to the current flow field.
func (g *Graph) Node(x, y int) (NodeView, error) {
	i, err := g.indexOf(x, y)
	if err != nil {
		return NodeView{}, err
	}
	return g.view(i), nil
}

// Nodes returns snapshots of every node in row-major order.
func (g *Graph) Nodes() []NodeView {
	out := make([]NodeView, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.view(i)
	}
	return out
}

func (g *Graph) view(i int) NodeView {
	n := &g.nodes[i]
	v := NodeView{
		X:         n.x,
		Y:         n.y,
		Value:     n.value,
		Distance:  Unset,
		Neighbors: g.neighborPoints(i),
	}
	if g.current(i) {
		v.Reached = true
		v.Distance = n.distance
		if n.parent != NoParent {
			v.Parent = g.point(n.parent)
			v.HasParent = true
		}
	}
	return v
}

// Values returns a copy of the cell codes as a [][]int.
func (g *Graph) Values() [][]int {
	out := make([][]int, g.height)
	for y := 0; y < g.height; y++ {
		out[y] = make([]int, g.width)
		for x := 0; x < g.width; x++ {
			out[y][x] = g.nodes[g.Index(x, y)].value
		}
	}
	return out
}
