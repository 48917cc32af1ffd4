// maze is a tactile maze game for the terminal: the walls are hidden and the
// exit is found by feel, through rumble meters and a stereo contact tone.
//
// Usage:
//
//	maze list              - List available maze variants
//	maze play [variant]    - Play a maze (default: maze)
//	maze menu              - Pick a variant interactively
//	maze serve             - Start SSH server for remote play
//	maze scores [variant]  - Show best times for a variant
//	maze generate          - Print a generated maze as text
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible mazes
//	--db <path>     - Set database path (default: ~/.maze/runs.db)
//	--log <path>    - Append logs to a file
//	--debug         - Log every contact cue
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/maze"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

var (
	// logger is shared by every command after PersistentPreRunE.
	logger *log.Logger
	// logFile is closed on exit when --log is set.
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Tactile Maze - find the exit by feel",
	Long: `Tactile Maze is a terminal maze game with invisible walls.

Bumping into a wall pulses the left and right rumble meters and pans a tone
toward the side you hit. Scraping along a wall keeps the cue running.
Reach the exit and the whole maze is revealed.

Available commands:
  list      - Show all maze variants
  play      - Play a maze directly
  menu      - Interactive variant picker
  serve     - Start SSH server for remote play
  scores    - View best times
  generate  - Print a generated maze

Examples:
  maze play
  maze play maze_hard --mute
  maze play --size 12 --seed 42
  maze serve --ssh :2222
  maze generate --size 6 --check`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		l, err := newLogger()
		if err != nil {
			return err
		}
		logger = l
		maze.SetLogger(l)
		return nil
	},
	SilenceUsage: true,
}

// newLogger builds the game logger. The TUI owns the terminal, so game logs
// only go to a file when --log is set.
func newLogger() (*log.Logger, error) {
	var w io.Writer = io.Discard
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}

	return configureLogger(w, "maze"), nil
}

func configureLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.maze/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every contact cue")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(generateCmd)
}
