package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knotgrid/disk"
	"github.com/katalvlaran/knotgrid/gridgraph"
)

// buildGrid reads the seed and builds its grid, logging the elapsed time.
func (c *CLI) buildGrid(cmd *cobra.Command, args []string) (*gridgraph.Grid, error) {
	seed, err := c.readSeed(cmd, args)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("building grid", "seed", seed, "workers", c.cfg.Workers)

	p := newProgress(c.Logger)
	g, err := disk.Build(cmd.Context(), seed, c.diskOptions()...)
	if err != nil {
		return nil, fmt.Errorf("build grid for %q: %w", seed, err)
	}
	p.done("built grid", "rows", g.Height, "cols", g.Width)
	return g, nil
}

// usedCommand creates the "used" command.
func (c *CLI) usedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "used [seed]",
		Short: "Count used squares in the grid of seed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.buildGrid(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), g.SetCount())
			return nil
		},
	}
}

// regionsCommand creates the "regions" command.
func (c *CLI) regionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regions [seed]",
		Short: "Count connected regions of used squares in the grid of seed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.buildGrid(cmd, args)
			if err != nil {
				return err
			}
			p := newProgress(c.Logger)
			n := g.LabelRegions()
			p.done("labeled regions", "regions", n)
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

// renderCommand creates the "render" command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		rows, cols int
		framed     bool
		plain      bool
	)

	cmd := &cobra.Command{
		Use:   "render [seed]",
		Short: "Draw the top-left window of the grid of seed",
		Long: `Draw the grid with '#' for used and '.' for free squares.

The window defaults to the config's rows/cols (8×8); use --rows/--cols
to change it, up to the full 128×128.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rows") {
				rows = c.cfg.Rows
			}
			if !cmd.Flags().Changed("cols") {
				cols = c.cfg.Cols
			}
			g, err := c.buildGrid(cmd, args)
			if err != nil {
				return err
			}
			out := g.Render(cols, rows)
			if !plain {
				out = styleGrid(out, framed)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 8, "rows to draw")
	cmd.Flags().IntVar(&cols, "cols", 8, "columns to draw")
	cmd.Flags().BoolVar(&framed, "frame", false, "draw a border around the grid")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable styling")
	return cmd
}

// statsCommand creates the "stats" command.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [seed]",
		Short: "Summarize used squares and regions of the grid of seed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.buildGrid(cmd, args)
			if err != nil {
				return err
			}
			regions := g.Regions()
			largest := 0
			for _, r := range regions {
				if len(r) > largest {
					largest = len(r)
				}
			}

			w := cmd.OutOrStdout()
			printKeyValue(w, "grid", fmt.Sprintf("%d×%d", g.Width, g.Height))
			printKeyValue(w, "used", g.SetCount())
			printKeyValue(w, "regions", len(regions))
			printKeyValue(w, "largest", largest)
			return nil
		},
	}
}
