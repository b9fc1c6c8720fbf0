package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/flowgrid/flowfield"
)

// DOTOptions configures DOT export.
type DOTOptions struct {
	// Tree exports the parent tree of the current field as a digraph with
	// edges pointing from each cell to its parent. Otherwise the undirected
	// adjacency between passable cells is exported.
	Tree bool
	// Walls includes impassable cells as isolated grey nodes.
	Walls bool
}

// ToDOT converts the graph to Graphviz DOT. Nodes are named "x,y" and pinned
// to their grid position for the neato layout; reached nodes carry their
// distance in the label.
// Complexity: O(V + E).
func ToDOT(g *flowfield.Graph, opts DOTOptions) string {
	var buf bytes.Buffer
	kind, edgeOp := "graph", "--"
	if opts.Tree {
		kind, edgeOp = "digraph", "->"
	}
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=10, width=0.5, height=0.5, fixedsize=true];\n")
	buf.WriteString("\n")

	target, hasTarget := g.Target()
	nodes := g.Nodes()
	for _, n := range nodes {
		passable, _ := g.IsPassable(n.X, n.Y)
		isTarget := hasTarget && target == flowfield.Point{X: n.X, Y: n.Y}
		if !passable && !isTarget && !opts.Walls {
			continue
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(n), strings.Join(nodeAttrs(n, passable, isTarget), ", "))
	}

	buf.WriteString("\n")
	for _, n := range nodes {
		if opts.Tree {
			if n.HasParent {
				fmt.Fprintf(&buf, "  %q %s %q;\n", nodeID(n), edgeOp, n.Parent.String())
			}
			continue
		}
		if ok, _ := g.IsPassable(n.X, n.Y); !ok {
			continue
		}
		self := g.Index(n.X, n.Y)
		for _, p := range n.Neighbors {
			// each undirected edge once, from its lower index
			if g.Index(p.X, p.Y) > self {
				fmt.Fprintf(&buf, "  %q %s %q;\n", nodeID(n), edgeOp, p.String())
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(n flowfield.NodeView) string {
	return flowfield.Point{X: n.X, Y: n.Y}.String()
}

func nodeAttrs(n flowfield.NodeView, passable, isTarget bool) []string {
	label := nodeID(n)
	if n.Reached {
		label += fmt.Sprintf("\\nd=%d", n.Distance)
	}
	attrs := []string{
		fmt.Sprintf("label=\"%s\"", label),
		fmt.Sprintf("pos=\"%d,%d!\"", n.X, -n.Y),
	}
	switch {
	case isTarget:
		attrs = append(attrs, "fillcolor=gold", "penwidth=2")
	case !passable:
		attrs = append(attrs, "fillcolor=grey40", "fontcolor=white")
	case !n.Reached:
		attrs = append(attrs, "style=\"rounded,dashed\"")
	}
	return attrs
}

// RenderSVG lays out a DOT graph and returns it as SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
