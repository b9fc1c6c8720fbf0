package flowfield

import (
	"container/list"
	"fmt"
)

// Breach finds the cheapest way for (sx,sy) to reach (tx,ty) when walls may
// be knocked down. Entering a passable cell costs 0, entering an impassable
// cell costs 1. The walk follows grid geometry under the current movement
// mode, not the stored adjacency, so disconnected cells count as walls only
// if their value says so.
// Returns the cells along the path (both endpoints included) and the number
// of impassable cells on it, the source and target counted like any other
// cell. The graph is not modified.
//
// Behavior:
//  1. 0-1 BFS from the source: cost-0 moves go to the deque front, cost-1
//     moves to the back.
//  2. Stop when the target is popped.
//  3. Reconstruct the path via predecessor indices.
//
// Complexity: O(W·H·d) time, Memory: O(W·H).
func (g *Graph) Breach(sx, sy, tx, ty int) (path []Point, cost int, err error) {
	src, err := g.indexOf(sx, sy)
	if err != nil {
		return nil, 0, err
	}
	dst, err := g.indexOf(tx, ty)
	if err != nil {
		return nil, 0, err
	}

	N := len(g.nodes)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	for i := range dist {
		dist[i] = inf
		prev[i] = NoParent
	}

	dq := list.New()
	dist[src] = 0
	if !g.isPassable(src) {
		dist[src] = 1
	}
	dq.PushFront(src)
	done := make([]bool, N)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			break
		}
		ux, uy := g.Coordinate(u)
		for _, d := range g.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			v := g.Index(vx, vy)
			step := 0
			if !g.isPassable(v) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if dist[dst] == inf {
		return nil, 0, fmt.Errorf("%w: (%d,%d) to (%d,%d)", ErrNoPath, sx, sy, tx, ty)
	}
	for at := dst; at != NoParent; at = prev[at] {
		path = append(path, g.point(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[dst], nil
}
