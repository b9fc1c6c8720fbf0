package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowgrid/flowfield"
	"github.com/katalvlaran/flowgrid/render"
)

type pathOpts struct {
	fieldFlags
	from   []string
	trim   bool
	json   bool
	breach bool
}

// pathCommand reconstructs the path of every source toward the target.
func (c *CLI) pathCommand() *cobra.Command {
	var opts pathOpts
	cmd := &cobra.Command{
		Use:   "path <scenario>",
		Short: "Reconstruct agent paths toward the target",
		Long: `Walk the parent pointers of the flow field from each source to the target.

Sources come from --from (repeatable) or, when absent, from the scenario.
With --trim the source and target cells are left out of the path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd.Context(), args[0], opts.fieldFlags)
			if err != nil {
				return err
			}
			return runPath(cmd, s, opts)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringArrayVar(&opts.from, "from", nil, "source cell as x,y (repeatable)")
	cmd.Flags().BoolVar(&opts.trim, "trim", false, "drop the source and target cells")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print paths as JSON")
	cmd.Flags().BoolVar(&opts.breach, "breach", false, "for unreachable sources, show the fewest walls to knock down")
	return cmd
}

func runPath(cmd *cobra.Command, s *session, opts pathOpts) error {
	sources := s.scenario.Sources
	if len(opts.from) > 0 {
		sources = nil
		for _, f := range opts.from {
			p, err := parsePoint(f)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			sources = append(sources, p)
		}
	}
	if len(sources) == 0 {
		return errors.New("no sources; add S markers or pass --from")
	}

	w := cmd.OutOrStdout()
	logger := loggerFromContext(cmd.Context())
	var views []render.PathView
	for _, src := range sources {
		cells, err := s.graph.BuildPathToTarget(src.X, src.Y, opts.trim)
		switch {
		case errors.Is(err, flowfield.ErrNoPath):
			logger.Debug("no path", "from", src, "err", err)
			if opts.json {
				continue
			}
			printWarning(w, "%s: no path to %s", src, s.target)
			if opts.breach {
				if err := printBreach(cmd, s, src); err != nil {
					return err
				}
			}
			continue
		case err != nil:
			return err
		}

		if opts.json {
			views = append(views, render.NewPathView(src, opts.trim, cells))
			continue
		}
		printSuccess(w, "%s: %d cells", src, len(cells))
		fmt.Fprintln(w, "  "+StyleDim.Render(joinPoints(cells)))
	}

	if opts.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}
	return nil
}

func printBreach(cmd *cobra.Command, s *session, src flowfield.Point) error {
	w := cmd.OutOrStdout()
	cells, walls, err := s.graph.Breach(src.X, src.Y, s.target.X, s.target.Y)
	if err != nil {
		return err
	}
	printInfo(w, "breaching %d wall(s) opens a %d-step route", walls, len(cells)-1)
	fmt.Fprintln(w, "  "+StyleDim.Render(joinPoints(cells)))
	return nil
}

func joinPoints(ps []flowfield.Point) string {
	if len(ps) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " "+iconArrow+" ")
}
