package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/decker502/farmsim/pkg/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Play the farm in the terminal.

A cursor replaces the walking character: move it with the arrow keys
(or h/j/k/l) and act on the selected cell. Press ? for all keys.

Legend:
  ,  farmable ground     =  tilled soil     ~  watered soil
  0-9 growing crop       *  ripe crop       T/t  tree/stump
  @  player`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := newHeadlessLevel()
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(tui.NewModel(l), tea.WithAltScreen()).Run()
		return err
	},
}
