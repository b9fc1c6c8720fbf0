// Package flowfield turns a 2D grid of cell codes into a navigation graph and
// computes shared "flow fields" over it: one breadth-first pass from a target
// gives every reachable cell its hop distance and a parent pointer one step
// closer to the target, so any number of agents can walk home without running
// their own search.
//
// What:
//
//   - Graph wraps a rectangular [][]int grid as an arena of nodes (row-major,
//     index = y*Width + x). Parents and neighbors are arena indices.
//   - Movement selects Orthogonal (4 neighbors) or Diagonal (8 neighbors).
//   - Passability decides which cell codes take part in adjacency; the default
//     treats CodeOpen as passable and everything else as blocked.
//   - Disconnect / Reconnect / SetValue repair adjacency for a single cell
//     instead of rebuilding the whole graph.
//   - BuildFlowField runs the BFS; BuildPathToTarget walks the parent tree.
//   - Components and Breach are grid-level analyses over the same adjacency.
//
// Why:
//
//   - Crowds: hundreds of units heading for one rally point share one field.
//   - Tower defense / RTS maps: walls are painted and erased at runtime, and
//     only the touched cell's edges change.
//   - Level tooling: find closed-off regions and the cheapest wall to break.
//
// Epochs:
//
//	Every BuildFlowField call advances Graph.Epoch by one. A node's distance
//	and parent belong to the current field only when the node was reached in
//	the current epoch; nodes outside the reachable region keep whatever an
//	older field left behind. The accessors (Distance, Parent, Direction,
//	Node) apply that check, so stale values are never reported as current.
//
// Complexity:
//
//   - New, SetMovement, Rebuild: O(W×H×d), Memory: O(W×H×d)   (d = 4 or 8).
//   - Disconnect, Reconnect, SetValue: O(d²).
//   - BuildFlowField: O(V + E), no allocation after the first call.
//   - BuildPathToTarget: O(distance(source)).
//   - Components, Breach: O(W×H×d).
//
// Errors:
//
//   - ErrInvalidDimensions: input grid is empty or rows differ in length.
//   - ErrInvalidCoordinate: (x, y) lies outside the grid.
//   - ErrInvalidMovement: unknown Movement value.
//   - ErrNoPath: the queried cell is not part of the current flow field.
//     This is an expected outcome, not a failure.
//   - ErrComponentIndex: component index out of range.
//
// Concurrency:
//
//	A Graph is not safe for concurrent use. Mutations (Disconnect, Reconnect,
//	SetValue, SetMovement, SetPassability, Rebuild) and computations
//	(BuildFlowField) must be serialized by the caller; readers may inspect
//	the graph between operations.
package flowfield
