// Package cli implements the flowgrid command-line interface.
//
// # Commands
//
//   - field: build a flow field for a scenario and print it
//   - path: reconstruct agent paths toward the target
//   - dot: export adjacency or the parent tree as DOT or SVG
//   - edit: interactive terminal editor for scenarios
//   - serve: HTTP access to one live graph
//   - version: print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried in the command context and handed to the flowfield graph, so
// graph builds and field runs show up as debug records.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowgrid/flowfield"
	"github.com/katalvlaran/flowgrid/internal/buildinfo"
	"github.com/katalvlaran/flowgrid/scenario"
)

const appName = "flowgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level; debug also turns on caller reports.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	c.Logger.SetReportCaller(level <= log.DebugLevel)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Flowgrid builds breadth-first flow fields on tile grids",
		Long:         `Flowgrid computes hop-count flow fields toward a target on a grid of walls and floors, reconstructs agent paths, and lets you edit the grid live.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.fieldCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.versionCommand())

	return root
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}

// =============================================================================
// Shared helpers
// =============================================================================

// fieldFlags are the flags every scenario command accepts.
type fieldFlags struct {
	target   string
	movement string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.target, "target", "t", "", "target cell as x,y (overrides the scenario)")
	cmd.Flags().StringVarP(&f.movement, "movement", "m", "", "movement mode: orthogonal or diagonal (overrides the scenario)")
}

// session is a loaded scenario with its graph and the target to build from.
type session struct {
	scenario *scenario.Scenario
	graph    *flowfield.Graph
	target   flowfield.Point
}

// loadSession reads the scenario at path, applies flag overrides and builds
// the first flow field.
func loadSession(ctx context.Context, path string, flags fieldFlags) (*session, error) {
	logger := loggerFromContext(ctx)
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	if flags.movement != "" {
		if sc.Movement, err = flowfield.ParseMovement(flags.movement); err != nil {
			return nil, err
		}
	}
	if flags.target != "" {
		p, err := parsePoint(flags.target)
		if err != nil {
			return nil, fmt.Errorf("--target: %w", err)
		}
		sc.Target, sc.HasTarget = p, true
	}
	if !sc.HasTarget {
		return nil, fmt.Errorf("%s: no target; add a T marker or pass --target", path)
	}

	g, err := sc.Graph(flowfield.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	sw := startTimer(logger)
	if err := g.BuildFlowField(sc.Target.X, sc.Target.Y); err != nil {
		return nil, sw.fail("Flow field rejected", err)
	}
	sw.done("Built flow field", "scenario", sc.Name, "visited", g.Visited())

	return &session{scenario: sc, graph: g, target: sc.Target}, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (flowfield.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return flowfield.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return flowfield.Point{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return flowfield.Point{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return flowfield.Point{X: x, Y: y}, nil
}
