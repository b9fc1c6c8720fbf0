package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowgrid/flowfield"
	"github.com/katalvlaran/flowgrid/gridstore"
	"github.com/katalvlaran/flowgrid/scenario"
)

const (
	defaultEditWidth  = 24
	defaultEditHeight = 16
	defaultSavePath   = "flowgrid.toml"
)

type editOpts struct {
	width, height int
	save          string
	density       float64
}

// editCommand opens the interactive editor on a scenario, or on a blank grid.
func (c *CLI) editCommand() *cobra.Command {
	opts := editOpts{width: defaultEditWidth, height: defaultEditHeight}
	cmd := &cobra.Command{
		Use:   "edit [scenario]",
		Short: "Edit a grid interactively and watch the flow field update",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, save, err := editScenario(args, opts)
			if err != nil {
				return err
			}
			m, err := newEditorModel(sc, save, loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "grid width for a new scenario")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "grid height for a new scenario")
	cmd.Flags().StringVar(&opts.save, "save", "", "file written by the s key (default: the opened scenario, or "+defaultSavePath+")")
	cmd.Flags().Float64Var(&opts.density, "walls", 0, "fraction of random walls for a new scenario")
	return cmd
}

// editScenario loads the named scenario or creates a blank one, and picks
// the save path.
func editScenario(args []string, opts editOpts) (*scenario.Scenario, string, error) {
	if len(args) == 1 {
		sc, err := scenario.Load(args[0])
		if err != nil {
			return nil, "", err
		}
		save := opts.save
		if save == "" {
			save = args[0]
		}
		return sc, save, nil
	}

	grid, err := gridstore.New(opts.width, opts.height, flowfield.CodeOpen)
	if err != nil {
		return nil, "", err
	}
	if opts.density > 0 {
		grid.Scatter(opts.density, flowfield.CodeWall, 1)
	}
	agent := flowfield.Point{}
	_ = grid.SetCell(agent.X, agent.Y, flowfield.CodeOpen)

	save := opts.save
	if save == "" {
		save = defaultSavePath
	}
	if _, err := scenario.FormatFor(save); err != nil {
		return nil, "", fmt.Errorf("--save: %w", err)
	}
	return &scenario.Scenario{
		Name:     "untitled",
		Grid:     grid,
		Movement: flowfield.Orthogonal,
		Open:     []int{flowfield.CodeOpen},
		Sources:  []flowfield.Point{agent},
	}, save, nil
}
