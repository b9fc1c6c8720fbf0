// Package flowgrid builds breadth-first flow fields on tile grids: every
// reachable cell learns its hop count to one target and the next cell to
// step into, so any number of agents can walk home in O(path) each.
//
// 🚀 What is flowgrid?
//
//	A small engine plus the tooling around it:
//		• Node graph: arena of cells with precomputed neighbor lists
//		• Movement: orthogonal (N, E, S, W) or diagonal (8 directions)
//		• Connectivity: Disconnect / Reconnect / SetValue edit the map live
//		• Flow fields: epoch-stamped BFS, no per-build clearing
//		• Paths: parent-pointer walks, optionally trimmed
//		• Extras: connected components, wall-breaching 0-1 BFS
//
// ✨ Why flowgrid?
//
//   - One BFS serves every agent heading for the same target
//   - Map edits cost O(d) per cell, not a rebuild
//   - Deterministic: equal maps and targets always yield equal parents
//
// Packages:
//
//	flowfield/   the graph, connectivity maintenance, BFS and path walks
//	gridstore/   plain rectangular storage of cell codes
//	scenario/    TOML / YAML scenario files
//	render/      terminal text, Graphviz DOT / SVG, JSON snapshots
//	cmd/flowgrid CLI: field, path, dot, edit, serve, version
//
// Quick example (target T, walls #, distances):
//
//	0 1 2 3
//	1 # # 4
//	2 3 4 5
//
//	go install github.com/katalvlaran/flowgrid/cmd/flowgrid@latest
package flowgrid
