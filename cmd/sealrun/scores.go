package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seal-run/internal/games/sealrun"
	"github.com/vovakirdan/seal-run/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs with the level reached and the seed, so a good
run can be replayed with --seed.

Examples:
  sealrun scores
  sealrun scores --limit 25
  sealrun scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all saved scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(sealrun.GameID); err != nil {
			exitf("%v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	scores, err := store.TopScores(sealrun.GameID, flagScoresLimit)
	if err != nil {
		exitf("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Seal Run")
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'sealrun play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-20s  %s\n", "Rank", "Score", "Level", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-20s  %s\n", "----", "-----", "-----", "----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-5d  %-20d  %s\n", i+1, e.Score, e.Level, e.Seed, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GameStats(sealrun.GameID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Furthest level: %d\n",
			stats.Runs, stats.HighScore, stats.AvgScore, stats.BestLevel)
	}
}
