package flowfield

// BuildFlowField computes a new flow field toward the target at (tx,ty).
//
// Behavior:
//  1. Advance the epoch by one.
//  2. Seed the target: distance 0, no parent, reached in this epoch.
//  3. Breadth-first expansion: pop the frontier head u; every neighbor v of u
//     not yet reached in this epoch gets parent u, distance(u)+1, and is queued.
//  4. Stop when the frontier is empty.
//
// Every node connected to the target through the current adjacency ends with
// its minimum hop count; all other nodes keep data from older epochs and are
// reported as not reached. Neighbors are expanded in offset order, so equal
// adjacency and target always yield the same parents.
//
// Returns ErrInvalidCoordinate, without advancing the epoch, for an
// out-of-bounds target.
// Complexity: O(V + E) time, no allocation after construction.
func (g *Graph) BuildFlowField(tx, ty int) error {
	t, err := g.indexOf(tx, ty)
	if err != nil {
		return err
	}

	g.epoch++
	epoch := g.epoch

	root := &g.nodes[t]
	root.reached = epoch
	root.distance = 0
	root.parent = NoParent

	g.target = t
	g.visited = 1
	g.queue.reset()
	g.queue.push(t)

	for g.queue.len() > 0 {
		u := g.queue.pop()
		next := g.nodes[u].distance + 1
		for _, v := range g.nodes[u].neighbors {
			nb := &g.nodes[v]
			if nb.reached == epoch {
				continue
			}
			nb.reached = epoch
			nb.parent = u
			nb.distance = next
			g.visited++
			g.queue.push(v)
		}
	}

	g.logger.Debug("flow field built", "epoch", epoch, "target", g.point(t), "visited", g.visited)

	return nil
}

// current reports whether node i carries a distance from the current epoch.
// Disconnect clears the distance of a reached node, which also takes it out
// of the current field.
func (g *Graph) current(i int) bool {
	n := &g.nodes[i]
	return g.epoch != 0 && n.reached == g.epoch && n.distance != Unset
}

// Target returns the target of the current flow field, or false if none was built.
func (g *Graph) Target() (Point, bool) {
	if g.epoch == 0 || g.target == NoParent {
		return Point{}, false
	}
	return g.point(g.target), true
}

// Visited returns how many nodes the most recent BuildFlowField reached,
// the target included.
func (g *Graph) Visited() int {
	return g.visited
}

// Reached reports whether (x,y) belongs to the current flow field.
// Out-of-bounds coordinates are simply not reached.
func (g *Graph) Reached(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.current(g.Index(x, y))
}

// Distance returns the hop count from (x,y) to the current target.
// ok is false when the cell is not part of the current flow field.
func (g *Graph) Distance(x, y int) (d int, ok bool, err error) {
	i, err := g.indexOf(x, y)
	if err != nil {
		return Unset, false, err
	}
	if !g.current(i) {
		return Unset, false, nil
	}
	return g.nodes[i].distance, true, nil
}

// Parent returns the cell one hop closer to the target.
// ok is false for the target itself and for cells outside the current field.
func (g *Graph) Parent(x, y int) (p Point, ok bool, err error) {
	i, err := g.indexOf(x, y)
	if err != nil {
		return Point{}, false, err
	}
	if !g.current(i) || g.nodes[i].parent == NoParent {
		return Point{}, false, nil
	}
	return g.point(g.nodes[i].parent), true, nil
}

// Direction returns the unit step (dx,dy) an agent at (x,y) should take to
// follow the field. ok is false at the target and outside the current field.
func (g *Graph) Direction(x, y int) (step Point, ok bool, err error) {
	p, ok, err := g.Parent(x, y)
	if err != nil || !ok {
		return Point{}, false, err
	}
	return Point{X: p.X - x, Y: p.Y - y}, true, nil
}

// Distances returns the current field as a [][]int; cells outside the field hold Unset.
func (g *Graph) Distances() [][]int {
	out := make([][]int, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]int, g.width)
		for x := 0; x < g.width; x++ {
			i := g.Index(x, y)
			if g.current(i) {
				row[x] = g.nodes[i].distance
			} else {
				row[x] = Unset
			}
		}
		out[y] = row
	}
	return out
}
