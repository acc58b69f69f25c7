package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresLimit  int
	flagScoresStats  bool
	flagScoresClear  bool
	flagScoresRun    string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs, optionally for a single player.

Examples:
  flapper scores
  flapper scores --player alice
  flapper scores --limit 25
  flapper scores --stats
  flapper scores --run 3f6c2a9e-8d1b-4f0e-9a57-2c4d6e8f1a3b
  flapper scores --clear --player alice`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show runs of this player")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-player statistics")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete runs (of --player, or all)")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by its ID")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagScoresClear:
		if err := store.ClearScores(flagScoresPlayer); err != nil {
			return err
		}
		newLogger(os.Stderr, "flapper").Info("scores cleared", "player", flagScoresPlayer)
		return nil
	case flagScoresStats:
		return printStats(out, store)
	case flagScoresRun != "":
		return printRun(out, store, flagScoresRun)
	}
	return printScores(out, store, flagScoresPlayer, flagScoresLimit)
}

// printScores writes the top runs as a table.
func printScores(w io.Writer, store *storage.Store, player string, limit int) error {
	var (
		runs []storage.Run
		err  error
	)
	if player == "" {
		runs, err = store.TopScores(limit)
		fmt.Fprintln(w, "High Scores")
	} else {
		runs, err = store.TopScoresForPlayer(player, limit)
		fmt.Fprintf(w, "High Scores - %s\n", player)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flapper play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-16s  %-6s  %-8s  %s\n", "Rank", "Player", "Score", "Frames", "When")
	fmt.Fprintf(w, "  %-4s  %-16s  %-6s  %-8s  %s\n", "----", "------", "-----", "------", "----")

	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-16s  %-6d  %-8s  %s\n",
			i+1, r.Player, r.Score, humanize.Comma(int64(r.Frames)), humanize.Time(r.CreatedAt))
	}

	// Show high score
	fmt.Fprintln(w)
	best, err := store.HighScore()
	if player != "" {
		best, err = store.PlayerHighScore(player)
	}
	if err == nil {
		fmt.Fprintf(w, "Best: %d\n", best)
	}
	return nil
}

// printRun writes the details of one run.
func printRun(w io.Writer, store *storage.Store, runID string) error {
	run, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run with ID %q", runID)
	}

	fmt.Fprintf(w, "Run:     %s\n", run.RunID)
	fmt.Fprintf(w, "Player:  %s\n", run.Player)
	fmt.Fprintf(w, "Score:   %d\n", run.Score)
	fmt.Fprintf(w, "Frames:  %s\n", humanize.Comma(int64(run.Frames)))
	fmt.Fprintf(w, "Played:  %s (%s)\n", run.CreatedAt.Format(time.DateTime), humanize.Time(run.CreatedAt))
	return nil
}

// printStats writes per-player statistics.
func printStats(w io.Writer, store *storage.Store) error {
	stats, err := store.AllPlayerStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-5s  %-5s  %-6s  %-10s  %s\n", "Player", "Runs", "Best", "Avg", "Frames", "Last played")
	for _, s := range stats {
		fmt.Fprintf(w, "  %-16s  %-5d  %-5d  %-6.1f  %-10s  %s\n",
			s.Player, s.Runs, s.HighScore, s.AvgScore,
			humanize.Comma(s.TotalFrames), humanize.Time(s.LastPlayed))
	}
	return nil
}
