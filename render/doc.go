// Package render produces read-only views of a flowfield.Graph.
//
// What:
//
//   - Text draws the grid for a terminal, one glyph per cell: walls, the
//     target, unreached cells, a highlighted path, and either distances or
//     the step direction of every reached cell. Styling uses lipgloss.
//   - ToDOT exports the graph in Graphviz DOT, either the undirected
//     adjacency or the directed parent tree of the current field.
//     RenderSVG lays a DOT graph out with go-graphviz.
//   - NewSnapshot and NewPathView build JSON-ready values for HTTP clients.
//
// Nothing in this package mutates the graph, so all views reflect exactly
// the field of the current epoch.
package render
