package flowfield

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Movement selects which neighbors a cell has: orthogonal only or orthogonal plus diagonal.
type Movement int

const (
	// Orthogonal uses 4-directional movement: N, E, S, W.
	Orthogonal Movement = iota
	// Diagonal uses 8-directional movement: W, E, N, S, NW, NE, SE, SW.
	Diagonal
)

// String returns "orthogonal" or "diagonal".
func (m Movement) String() string {
	switch m {
	case Orthogonal:
		return "orthogonal"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("movement(%d)", int(m))
	}
}

// ParseMovement converts "orthogonal"/"4" or "diagonal"/"8" into a Movement.
func ParseMovement(s string) (Movement, error) {
	switch s {
	case "orthogonal", "4", "":
		return Orthogonal, nil
	case "diagonal", "8":
		return Diagonal, nil
	default:
		return Orthogonal, fmt.Errorf("%w: %q", ErrInvalidMovement, s)
	}
}

func (m Movement) valid() bool {
	return m == Orthogonal || m == Diagonal
}

// Cell codes understood by the default passability rule and the tooling around it.
const (
	CodeOpen   = 0 // floor, passable by default
	CodeWall   = 1 // blocked
	CodeTarget = 2 // marks where a field's target sits in editors
	CodeOther  = 3 // marks an agent / source in editors
)

const (
	// Unset is the distance of a node that has no distance in the current field.
	Unset = -1
	// NoParent is the parent index of the target and of disconnected nodes.
	NoParent = -1
)

// Direction offsets. The orthogonal order is N, E, S, W. The diagonal order
// lists the four orthogonal steps first so straight moves win distance ties.
var (
	orthogonalOffsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonalOffsets   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
)

// Point is a cell coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats the point as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Passability decides from a cell's value whether the cell takes part in adjacency.
type Passability interface {
	Passable(value int) bool
}

// PassableFunc adapts a plain function to Passability.
type PassableFunc func(value int) bool

// Passable calls f(value).
func (f PassableFunc) Passable(value int) bool { return f(value) }

// OpenCodes is a Passability that accepts exactly the listed codes.
type OpenCodes []int

// Passable reports whether value is one of the open codes.
func (o OpenCodes) Passable(value int) bool {
	for _, c := range o {
		if c == value {
			return true
		}
	}
	return false
}

// DefaultPassability treats CodeOpen as the only passable value.
func DefaultPassability() Passability {
	return OpenCodes{CodeOpen}
}

// node is one arena element. neighbors and parent hold arena indices.
type node struct {
	x, y      int
	value     int
	neighbors []int
	parent    int
	distance  int
	reached   uint64
}

// NodeView is a read-only snapshot of one node, with epoch checks already applied.
type NodeView struct {
	X, Y  int
	Value int
	// Reached is true when the node belongs to the current flow field.
	Reached bool
	// Distance is the hop count to the target, or Unset when not reached.
	Distance int
	// Parent is the next cell toward the target; HasParent is false for the
	// target itself and for nodes outside the current field.
	Parent    Point
	HasParent bool
	Neighbors []Point
}

// Option configures a Graph at construction time.
// Invalid options are recorded and surfaced by New.
type Option func(*graphOptions)

type graphOptions struct {
	movement Movement
	passable Passability
	logger   *log.Logger
	err      error
}

func defaultOptions() graphOptions {
	return graphOptions{
		movement: Orthogonal,
		passable: DefaultPassability(),
		logger:   log.New(io.Discard),
	}
}

// WithMovement selects orthogonal or diagonal movement.
func WithMovement(m Movement) Option {
	return func(o *graphOptions) {
		if !m.valid() {
			o.err = fmt.Errorf("%w: %d", ErrInvalidMovement, int(m))
			return
		}
		o.movement = m
	}
}

// WithPassability replaces the default passability rule. nil is ignored.
func WithPassability(p Passability) Option {
	return func(o *graphOptions) {
		if p != nil {
			o.passable = p
		}
	}
}

// WithLogger routes debug records (builds, mode changes, field runs) to l.
func WithLogger(l *log.Logger) Option {
	return func(o *graphOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Graph is the node arena plus its adjacency and the current flow field.
// Width and Height are fixed at construction.
type Graph struct {
	width, height int
	nodes         []node
	movement      Movement
	offsets       [][2]int
	passable      Passability
	logger        *log.Logger

	// epoch identifies the current flow field; 0 means no field was built yet.
	epoch   uint64
	target  int
	visited int
	queue   frontier
}
