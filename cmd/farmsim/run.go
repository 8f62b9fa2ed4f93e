package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/farmsim/pkg/app"
	"github.com/decker502/farmsim/pkg/embedded"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the game window",
	Long: `Open the game window.

Controls:
  Arrows/WASD  - Move
  Space        - Use tool (hoe, axe, watering can)
  Q            - Switch tool
  Left Ctrl    - Plant seed
  E            - Switch seed
  Enter        - Talk to the trader / go to bed
  G            - Toggle grid overlay
  Tab          - Toggle status line
  F11          - Toggle fullscreen

Missing graphics are replaced by colored placeholders.`,
	Args: cobra.NoArgs,
	RunE: runGame,
}

func runGame(cmd *cobra.Command, args []string) error {
	opts := app.Config{
		Data:     embedded.FS(),
		Override: overrideFS(),
		Seed:     seed(),
	}
	if flagMap != "" {
		m, err := loadMap()
		if err != nil {
			return err
		}
		opts.Map = m
	}

	a, err := app.NewApp(opts)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	a.ApplyWindowSettings()
	return ebiten.RunGame(a)
}
