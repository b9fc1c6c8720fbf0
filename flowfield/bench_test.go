package flowfield_test

import (
	"testing"

	"github.com/katalvlaran/flowgrid/flowfield"
	"github.com/katalvlaran/flowgrid/gridstore"
)

// benchGrid returns an n×n grid with roughly 25% walls and an open centre.
func benchGrid(b *testing.B, n int) *gridstore.Grid {
	b.Helper()
	grid, err := gridstore.New(n, n, flowfield.CodeOpen)
	if err != nil {
		b.Fatalf("setup gridstore.New failed: %v", err)
	}
	grid.Scatter(0.25, flowfield.CodeWall, 42)
	_ = grid.SetCell(n/2, n/2, flowfield.CodeOpen)
	return grid
}

// BenchmarkBuildFlowField measures one field over a 512×512 cluttered grid.
// Complexity: O(V + E)
func BenchmarkBuildFlowField(b *testing.B) {
	for _, m := range []flowfield.Movement{flowfield.Orthogonal, flowfield.Diagonal} {
		b.Run(m.String(), func(b *testing.B) {
			g, err := flowfield.FromGrid(benchGrid(b, 512), flowfield.WithMovement(m))
			if err != nil {
				b.Fatalf("setup New failed: %v", err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = g.BuildFlowField(256, 256)
			}
		})
	}
}

// BenchmarkSetValue toggles one cell between wall and floor.
// Complexity: O(d²)
func BenchmarkSetValue(b *testing.B) {
	g, err := flowfield.FromGrid(benchGrid(b, 256), flowfield.WithMovement(flowfield.Diagonal))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := flowfield.CodeWall
		if i%2 == 1 {
			v = flowfield.CodeOpen
		}
		_ = g.SetValue(100, 100, v)
	}
}

// BenchmarkBuildPathToTarget walks from a corner of an open grid.
func BenchmarkBuildPathToTarget(b *testing.B) {
	grid, _ := gridstore.New(512, 512, flowfield.CodeOpen)
	g, _ := flowfield.FromGrid(grid)
	_ = g.BuildFlowField(511, 511)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.BuildPathToTarget(0, 0, true)
	}
}
