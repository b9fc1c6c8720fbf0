package flowfield

import "fmt"

// BuildPathToTarget walks parent pointers of the current flow field from
// (x,y) to the target and returns the visited cells, source first.
//
// With trim=false the path holds distance(source)+1 cells, from the source
// to the target inclusive. With trim=true both endpoints are dropped: the
// walk starts at the source's parent and stops before the target, so a
// source at distance 0 or 1 yields an empty, non-nil path.
//
// Returns ErrNoPath when (x,y) is not part of the current flow field, which
// covers unreachable cells, queries made before any field was built, and
// parent chains broken by a Disconnect since the last BuildFlowField.
// Returns ErrInvalidCoordinate for out-of-bounds input.
// Complexity: O(distance(source)).
func (g *Graph) BuildPathToTarget(x, y int, trim bool) ([]Point, error) {
	i, err := g.indexOf(x, y)
	if err != nil {
		return nil, err
	}
	if !g.current(i) {
		return nil, fmt.Errorf("%w: (%d,%d) not reached in epoch %d", ErrNoPath, x, y, g.epoch)
	}

	d := g.nodes[i].distance
	path := make([]Point, 0, d+1)
	cur := i
	if trim {
		if d == 0 {
			return path, nil
		}
		cur = g.nodes[i].parent
	}

	for {
		if cur == NoParent || !g.current(cur) {
			return nil, fmt.Errorf("%w: parent chain from (%d,%d) is broken", ErrNoPath, x, y)
		}
		n := &g.nodes[cur]
		if n.distance == 0 {
			if !trim {
				path = append(path, g.point(cur))
			}
			return path, nil
		}
		path = append(path, g.point(cur))
		cur = n.parent
	}
}
