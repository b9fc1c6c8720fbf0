package flowfield_test

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/flowgrid/flowfield"
)

////////////////////////////////////////////////////////////////////////////////
// Example: BuildFlowField
////////////////////////////////////////////////////////////////////////////////

// ExampleGraph_BuildFlowField computes distances to the top-left corner of a
// small room with a two-cell wall in the middle.
// Scenario:
//
//   - Grid values: 0 = floor, 1 = wall
//   - Orthogonal movement (N/E/S/W)
//   - Walls print as '#'
//
// Complexity: O(V + E)
func ExampleGraph_BuildFlowField() {
	g, _ := flowfield.New([][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	})
	_ = g.BuildFlowField(0, 0)

	for _, row := range g.Distances() {
		cells := make([]string, len(row))
		for i, d := range row {
			if d == flowfield.Unset {
				cells[i] = "#"
			} else {
				cells[i] = strconv.Itoa(d)
			}
		}
		fmt.Println(strings.Join(cells, " "))
	}
	// Output:
	// 0 1 2 3
	// 1 # # 4
	// 2 3 4 5
}

////////////////////////////////////////////////////////////////////////////////
// Example: BuildPathToTarget
////////////////////////////////////////////////////////////////////////////////

// ExampleGraph_BuildPathToTarget follows the field from the far corner back to
// the target. Ties go to the first neighbor in N, E, S, W order, so the walk
// climbs the right-hand column before crossing the top row.
func ExampleGraph_BuildPathToTarget() {
	g, _ := flowfield.New([][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	})
	_ = g.BuildFlowField(0, 0)

	path, _ := g.BuildPathToTarget(3, 2, false)
	fmt.Println(path)

	trimmed, _ := g.BuildPathToTarget(3, 2, true)
	fmt.Println(trimmed)
	// Output:
	// [3,2 3,1 3,0 2,0 1,0 0,0]
	// [3,1 3,0 2,0 1,0]
}

////////////////////////////////////////////////////////////////////////////////
// Example: SetValue
////////////////////////////////////////////////////////////////////////////////

// ExampleGraph_SetValue paints a wall across a corridor and back again.
func ExampleGraph_SetValue() {
	g, _ := flowfield.New([][]int{{0, 0, 0, 0}})

	_ = g.SetValue(2, 0, flowfield.CodeWall)
	_ = g.BuildFlowField(0, 0)
	_, err := g.BuildPathToTarget(3, 0, false)
	fmt.Println(err)

	_ = g.SetValue(2, 0, flowfield.CodeOpen)
	_ = g.BuildFlowField(0, 0)
	d, ok, _ := g.Distance(3, 0)
	fmt.Println(d, ok)
	// Output:
	// flowfield: no path to target: (3,0) not reached in epoch 1
	// 3 true
}
