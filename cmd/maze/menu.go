package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a maze variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Press Tab for best times. Leaving a maze returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Best times
  Q            - Quit

Examples:
  maze menu
  maze menu --fps 30 --mute
  maze menu --db ./runs.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	player := playerName()

	for {
		choice, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = choice.Config

		switch {
		case choice.Quit:
			return nil
		case choice.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if !back {
				return nil
			}
		default:
			// A fixed --seed replays the same maze every time.
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			playVariant(choice.GameID, store, cfg, player)
		}
	}
}

// playVariant runs one variant until the player leaves it. Failures are
// reported and the menu comes back.
func playVariant(id string, store *storage.Store, cfg core.RuntimeConfig, player string) {
	game, err := registry.Create(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "maze: %v\n", err)
		return
	}
	if err := tui.Run(game, store, cfg, player, logger); err != nil {
		fmt.Fprintf(os.Stderr, "maze: %s: %v\n", id, err)
	}
}
