package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowgrid/render"
)

type fieldOpts struct {
	fieldFlags
	distances bool
	color     bool
	paths     bool
}

// fieldCommand builds one flow field and prints it with a short summary.
func (c *CLI) fieldCommand() *cobra.Command {
	var opts fieldOpts
	cmd := &cobra.Command{
		Use:   "field <scenario>",
		Short: "Build a flow field and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd.Context(), args[0], opts.fieldFlags)
			if err != nil {
				return err
			}
			return runField(cmd, s, opts)
		},
	}
	opts.register(cmd)
	cmd.Flags().BoolVarP(&opts.distances, "distances", "d", false, "print hop counts instead of arrows")
	cmd.Flags().BoolVar(&opts.color, "color", false, "style the grid with terminal colors")
	cmd.Flags().BoolVar(&opts.paths, "paths", false, "overlay the paths of all scenario sources")
	return cmd
}

func runField(cmd *cobra.Command, s *session, opts fieldOpts) error {
	w := cmd.OutOrStdout()
	g := s.graph

	text := render.TextOptions{Distances: opts.distances, Color: opts.color}
	if opts.paths {
		for _, src := range s.scenario.Sources {
			p, err := g.BuildPathToTarget(src.X, src.Y, true)
			if err != nil {
				continue
			}
			text.Path = append(text.Path, p...)
		}
	}

	fmt.Fprintln(w, StyleTitle.Render(s.scenario.Name))
	fmt.Fprintln(w, render.Text(g, text))
	fmt.Fprintln(w)

	printKeyValue(w, "target", s.target.String())
	printKeyValue(w, "movement", g.Movement().String())
	printKeyValue(w, "reached", fmt.Sprintf("%d of %d cells", g.Visited(), g.Width()*g.Height()))
	printKeyValue(w, "components", strconv.Itoa(len(g.Components())))

	for _, src := range s.scenario.Sources {
		d, ok, err := g.Distance(src.X, src.Y)
		switch {
		case err != nil:
			return err
		case ok:
			printSuccess(w, "source %s reaches the target in %d steps", src, d)
		default:
			printWarning(w, "source %s cannot reach the target", src)
		}
	}
	return nil
}
