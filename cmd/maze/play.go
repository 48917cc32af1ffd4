package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSize       int
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a maze",
	Long: `Start a maze session. Solved mazes are followed by a new, possibly
larger one after a short overview.

Controls:
  W/S, Up/Down       - Move forward/back
  A/D                - Strafe left/right
  Left/Right, H/L    - Turn
  T                  - Show/hide walls
  P/Space            - Pause
  R                  - New maze
  Q/Ctrl+C/Esc       - Quit

Difficulty options:
  easy   - Start with 5x5 mazes, grow with every escape
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty
  fixed  - No progression, stays at the config's maze size

Examples:
  maze play
  maze play maze_easy
  maze play --difficulty hard
  maze play --size 15 --seed 7
  maze play --config ./my-maze.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Fixed maze size in cells per side (disables progression)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the contact tone")

	menuCmd.Flags().AddFlagSet(playCmd.Flags())
}

// applyGameFlags configures the maze package before a game is created.
func applyGameFlags() error {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	if flagSize < 0 {
		return fmt.Errorf("invalid --size %d", flagSize)
	}
	maze.SetConfigPath(flagConfig)
	maze.SetDifficultyPreset(flagDifficulty)
	maze.SetSize(flagSize)
	maze.SetAudioEnabled(!flagMute)
	return nil
}

// terminalConfig builds the runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playerName names local runs after the OS user.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// openStore opens the runs database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "maze"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown maze %q; run 'maze list' to see available variants", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig(), playerName(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
