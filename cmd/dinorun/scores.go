package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-run/internal/room"
	"github.com/vovakirdan/dino-run/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores across all rooms, or for one room.

Examples:
  dinorun scores
  dinorun scores --room dunes
  dinorun scores --limit 25`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Ignore --room and list every room")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Fprintln(out, "All scores cleared.")
		return nil
	}

	code := room.NormalizeCode(flagRoom)
	roomOnly := !flagScoresAll && cmd.Flags().Changed("room")

	var scores []storage.ScoreEntry
	if roomOnly {
		scores, err = store.RoomTopScores(code, flagScoresLimit)
	} else {
		scores, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	if roomOnly {
		fmt.Fprintf(out, "High Scores - room %s\n\n", code)
	} else {
		fmt.Fprint(out, "High Scores - all rooms\n\n")
	}
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'dinorun play' to set the first high score!")
		return nil
	}

	printScores(out, scores)

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load stats: %v\n", err)
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %s   Runs: %s   Players: %d   Average: %.0f   Last played %s\n",
		humanize.Comma(int64(stats.HighScore)),
		humanize.Comma(int64(stats.Runs)),
		stats.Players,
		stats.AvgScore,
		humanize.Time(stats.LastPlayed),
	)
	return nil
}

func printScores(w io.Writer, scores []storage.ScoreEntry) {
	fmt.Fprintf(w, "  %-4s  %-16s  %-12s  %8s  %s\n", "Rank", "Player", "Room", "Score", "When")
	fmt.Fprintf(w, "  %-4s  %-16s  %-12s  %8s  %s\n", "----", "------", "----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-16s  %-12s  %8s  %s\n",
			i+1, e.Player, e.Room, humanize.Comma(int64(e.Score)), humanize.Time(e.CreatedAt))
	}
}
