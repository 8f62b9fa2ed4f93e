package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/mapdata"
	"github.com/decker502/farmsim/pkg/tui"
)

var flagShowGrid bool

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print a summary of the map and configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		m, err := loadMap()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		inspect(w, m, cfg)
		if flagShowGrid {
			l, err := newHeadlessLevel()
			if err != nil {
				return err
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, tui.RenderGrid(l, nil))
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&flagShowGrid, "grid", false, "Also print the farm grid")
}

func inspect(w io.Writer, m *mapdata.Map, cfg *config.Config) {
	bounds := m.Bounds()
	fmt.Fprintln(w, headingStyle.Render("map "+m.Name))
	fmt.Fprintf(w, "  size      %d x %d tiles (%.0f x %.0f px, tile %.0f)\n", m.Width, m.Height, bounds.Width, bounds.Height, m.TileSize)
	fmt.Fprintf(w, "  farmable  %d cells\n", len(m.FarmableCells()))

	fmt.Fprintln(w, headingStyle.Render("layers"))
	for _, name := range m.LayerNames() {
		fmt.Fprintf(w, "  %-22s %d tiles\n", name, len(m.Tiles(name)))
	}

	fmt.Fprintln(w, headingStyle.Render("objects"))
	for _, group := range []string{mapdata.GroupTrees, mapdata.GroupDecoration, mapdata.GroupPlayer} {
		fmt.Fprintf(w, "  %-22s %d\n", group, len(m.Group(group)))
	}

	fmt.Fprintln(w, headingStyle.Render("species"))
	for _, name := range cfg.Species.Names() {
		s := cfg.Species[name]
		fmt.Fprintf(w, "  %-10s grow %.2f/day, %d frames\n", name, s.GrowSpeed, s.Frames)
	}

	fmt.Fprintln(w, headingStyle.Render("layer order"))
	for i, layer := range cfg.Layers.Layers() {
		fmt.Fprintf(w, "  %2d %s\n", i, layer)
	}
}
