package flowfield

// Components finds the connected regions of passable cells under the current
// adjacency. Each component is a slice of row-major indices in BFS order,
// seeded from the lowest index; use Coordinate to turn an index into (x,y).
// Components do not touch the flow field or the epoch.
//
// Time:   O(W·H·d).
// Memory: O(W·H) for the seen flags and output.
func (g *Graph) Components() [][]int {
	seen := make([]bool, len(g.nodes))
	var comps [][]int

	for i0 := range g.nodes {
		if seen[i0] || !g.isPassable(i0) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.nodes[queue[qi]].neighbors {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// ComponentOf returns the index into Components() of the region containing
// (x,y), or -1 for an impassable cell.
func (g *Graph) ComponentOf(x, y int) (int, error) {
	i, err := g.indexOf(x, y)
	if err != nil {
		return -1, err
	}
	for k, comp := range g.Components() {
		for _, idx := range comp {
			if idx == i {
				return k, nil
			}
		}
	}
	return -1, nil
}

// ComponentCells returns the cells of component k as points.
func (g *Graph) ComponentCells(k int) ([]Point, error) {
	comps := g.Components()
	if k < 0 || k >= len(comps) {
		return nil, ErrComponentIndex
	}
	out := make([]Point, len(comps[k]))
	for n, idx := range comps[k] {
		out[n] = g.point(idx)
	}
	return out, nil
}
