package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/grid"
	"github.com/decker502/farmsim/pkg/level"
	"github.com/decker502/farmsim/pkg/tui"
)

var (
	flagDays  int
	flagPlant string
	flagPlots int
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	rainStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	sunStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate days without a window",
	Long: `Till and plant the first farmable plots, water them every dry day,
sleep through the given number of days and harvest whatever is ripe.
Prints one line per day and the final farm.

Examples:
  farmsim simulate
  farmsim simulate --days 5 --plant tomato --plots 8 --seed 1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDays < 0 || flagPlots < 0 {
			return fmt.Errorf("--days and --plots must not be negative")
		}
		l, err := newHeadlessLevel()
		if err != nil {
			return err
		}
		if _, err := l.Config().Species.Lookup(flagPlant); err != nil {
			return err
		}
		simulate(cmd.OutOrStdout(), l, flagPlant, flagPlots, flagDays)
		return nil
	},
}

func init() {
	simulateCmd.Flags().IntVar(&flagDays, "days", 10, "Number of days to simulate")
	simulateCmd.Flags().StringVar(&flagPlant, "plant", "corn", "Species to plant")
	simulateCmd.Flags().IntVar(&flagPlots, "plots", 4, "Number of plots to plant")
}

// simulate 种下作物，逐天浇水睡觉，最后收获并打印农田
func simulate(w io.Writer, l *level.Level, species string, plots, days int) {
	inv := l.Inventory()
	for inv.Seed(species) < plots {
		if err := inv.Buy(species); err != nil {
			break
		}
	}

	var planted []grid.Cell
	for _, c := range l.Grid().Cells(grid.Farmable) {
		if len(planted) == plots {
			break
		}
		x, y := grid.CellCenter(c, l.Map().TileSize)
		l.Soil().Till(x, y)
		if l.PlantSeed(species, x, y) {
			planted = append(planted, c)
		}
	}
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("planted %d x %s", len(planted), species)))

	for i := 0; i < days; i++ {
		weather := sunStyle.Render("sunny")
		if l.Raining() {
			weather = rainStyle.Render("rain ")
		} else {
			for _, c := range planted {
				x, y := grid.CellCenter(c, l.Map().TileSize)
				l.Soil().Water(x, y)
			}
		}
		day := l.Day()
		l.ResetDay()
		fmt.Fprintf(w, "day %3d  %s  ripe %d/%d\n", day, weather, countRipe(l, planted), len(planted))
	}

	harvested := 0
	for _, c := range planted {
		if l.HarvestAt(c) {
			harvested++
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.RenderGrid(l, nil))
	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("harvested %d %s, now holding %d, money $%d", harvested, species, inv.Item(species), inv.Money())))
}

func countRipe(l *level.Level, cells []grid.Cell) int {
	ripe := 0
	for _, c := range cells {
		id, ok := l.Plants().PlantAt(c)
		if !ok {
			continue
		}
		if plant, _ := ecs.GetComponent[*components.PlantComponent](l.EntityManager(), id); plant.Harvestable {
			ripe++
		}
	}
	return ripe
}
