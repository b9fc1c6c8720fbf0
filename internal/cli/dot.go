package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowgrid/render"
)

type dotOpts struct {
	fieldFlags
	output string
	tree   bool
	walls  bool
}

// dotCommand exports the graph as Graphviz DOT, or SVG when -o ends in .svg.
func (c *CLI) dotCommand() *cobra.Command {
	var opts dotOpts
	cmd := &cobra.Command{
		Use:   "dot <scenario>",
		Short: "Export adjacency or the parent tree as DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd.Context(), args[0], opts.fieldFlags)
			if err != nil {
				return err
			}
			return runDOT(cmd, s, opts)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.dot or .svg); stdout when empty")
	cmd.Flags().BoolVar(&opts.tree, "tree", false, "export the parent tree instead of adjacency")
	cmd.Flags().BoolVar(&opts.walls, "walls", false, "include impassable cells")
	return cmd
}

func runDOT(cmd *cobra.Command, s *session, opts dotOpts) error {
	dot := render.ToDOT(s.graph, render.DOTOptions{Tree: opts.tree, Walls: opts.walls})
	if opts.output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), dot)
		return err
	}

	data := []byte(dot)
	switch ext := strings.ToLower(filepath.Ext(opts.output)); ext {
	case ".dot", ".gv":
	case ".svg":
		sw := startTimer(loggerFromContext(cmd.Context()))
		svg, err := render.RenderSVG(cmd.Context(), dot)
		if err != nil {
			return sw.fail("SVG render failed", err)
		}
		sw.done("Rendered SVG", "bytes", len(svg))
		data = svg
	default:
		return fmt.Errorf("unsupported output format %q (want .dot, .gv or .svg)", ext)
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	kind := "adjacency"
	if opts.tree {
		kind = "parent tree"
	}
	printSuccess(cmd.OutOrStdout(), "Wrote %s", kind)
	printFile(cmd.OutOrStdout(), opts.output)
	return nil
}
