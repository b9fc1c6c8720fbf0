package flowfield

// Disconnect removes the cell at (x,y) from the graph without a rebuild.
// The cell is dropped from the neighbor list of every surrounding node, its
// own neighbor list is cleared, and its parent and distance are reset.
// The cell's value is not changed; callers typically make it impassable
// before or after the call.
// Complexity: O(d²).
func (g *Graph) Disconnect(x, y int) error {
	i, err := g.indexOf(x, y)
	if err != nil {
		return err
	}
	g.disconnect(i)
	return nil
}

func (g *Graph) disconnect(i int) {
	n := &g.nodes[i]
	for _, d := range g.offsets {
		nx, ny := n.x+d[0], n.y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		j := g.Index(nx, ny)
		g.nodes[j].neighbors = removeIndex(g.nodes[j].neighbors, i)
	}
	n.neighbors = n.neighbors[:0]
	n.parent = NoParent
	n.distance = Unset
}

// Reconnect restores the cell at (x,y) after it became passable again.
// Its neighbor list is recomputed, and it is added back to the list of each
// passable neighbor that lacks it, at the slot its direction dictates, so
// tie-breaking stays the same as after a full build.
// The value must already be passable; otherwise the call does nothing.
// Complexity: O(d²).
func (g *Graph) Reconnect(x, y int) error {
	i, err := g.indexOf(x, y)
	if err != nil {
		return err
	}
	g.reconnect(i)
	return nil
}

func (g *Graph) reconnect(i int) {
	if !g.isPassable(i) {
		return
	}
	n := &g.nodes[i]
	n.neighbors = g.neighborsOf(i, n.neighbors[:0])
	for _, j := range n.neighbors {
		if !g.isPassable(j) || containsIndex(g.nodes[j].neighbors, i) {
			continue
		}
		g.nodes[j].neighbors = g.insertOrdered(j, i)
	}
}

// SetValue writes a new cell code and repairs adjacency to match it:
// a cell that becomes passable is reconnected, any other is disconnected.
// This is what an editor calls when painting floors and walls.
func (g *Graph) SetValue(x, y, value int) error {
	i, err := g.indexOf(x, y)
	if err != nil {
		return err
	}
	g.nodes[i].value = value
	if g.isPassable(i) {
		g.reconnect(i)
	} else {
		g.disconnect(i)
	}
	return nil
}

// insertOrdered inserts node i into the neighbor list of node j, keeping the
// list in offset order.
func (g *Graph) insertOrdered(j, i int) []int {
	list := g.nodes[j].neighbors
	rank := g.rank(j, i)
	pos := len(list)
	for k, other := range list {
		if g.rank(j, other) > rank {
			pos = k
			break
		}
	}
	list = append(list, 0)
	copy(list[pos+1:], list[pos:])
	list[pos] = i
	return list
}

// rank returns the offset slot under which `to` appears as a neighbor of `from`.
func (g *Graph) rank(from, to int) int {
	dx := g.nodes[to].x - g.nodes[from].x
	dy := g.nodes[to].y - g.nodes[from].y
	for k, d := range g.offsets {
		if d[0] == dx && d[1] == dy {
			return k
		}
	}
	return len(g.offsets)
}

func containsIndex(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func removeIndex(list []int, v int) []int {
	for k, x := range list {
		if x == v {
			return append(list[:k], list[k+1:]...)
		}
	}
	return list
}
