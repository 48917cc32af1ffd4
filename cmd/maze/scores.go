package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show best times for a maze variant",
	Long: `Display the fastest escapes and run statistics for a maze variant.

Examples:
  maze scores
  maze scores maze_hard --limit 20
  maze scores maze_easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs of the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := "maze"
	if len(args) == 1 {
		gameID = args[0]
	}

	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown maze %q; run 'maze list' to see available variants", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared runs for %s.\n", info.Title)
		return nil
	}

	runs, err := store.BestRuns(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Best Times - %s\n", info.Title)
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No solved mazes yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'maze play %s' to set the first time!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-7s  %-5s  %-12s  %s\n", "Rank", "Time", "Size", "Bumps", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-7s  %-5s  %-12s  %s\n", "----", "----", "----", "-----", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8s  %-7s  %-5d  %-12s  %s\n",
			i+1,
			formatDuration(r.Duration),
			fmt.Sprintf("%dx%d", r.Size, r.Size),
			r.Bumps,
			r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Escaped %d of %d mazes, average %s, %d bumps in total\n",
		stats.Wins, stats.Runs, formatDuration(stats.AvgTime), stats.TotalBumps)
	return nil
}

// formatDuration renders a run time as m:ss.t.
func formatDuration(d time.Duration) string {
	tenths := int(d / (100 * time.Millisecond))
	return fmt.Sprintf("%d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}
