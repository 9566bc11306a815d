package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagRuns int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the hall of fame",
	Long: `Display the hall of fame, followed by the most recent runs when the
run history is available.

Examples:
  wallbreaker scores
  wallbreaker scores --runs 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of recent runs to show (0 hides them)")
}

func runScores(_ *cobra.Command, _ []string) error {
	a, err := setup(setupOptions{history: true})
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Println("Hall of Fame")
	fmt.Println()

	entries := a.env.Ledger.Entries()
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'wallbreaker play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-20s  %s\n", "Rank", "Name", "Score")
		fmt.Printf("  %-4s  %-20s  %s\n", "----", "----", "-----")
		for i, e := range entries {
			fmt.Printf("  %-4d  %-20s  %d\n", i+1, e.Name, e.Score)
		}
	}

	store := a.env.Store
	if store == nil || flagRuns <= 0 {
		return nil
	}

	runs, err := store.RecentRuns(flagRuns)
	if err != nil {
		return fmt.Errorf("cannot read run history: %w", err)
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-16s  %-10s  %-5s  %-20s  %s\n", "Date", "Pack", "Level", "Name", "Score")
	fmt.Printf("  %-16s  %-10s  %-5s  %-20s  %s\n", "----", "----", "-----", "----", "-----")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-10s  %-5d  %-20s  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Pack, r.Level+1, r.Name, r.Score)
	}

	if stats, err := store.GetStats(); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f\n", stats.Runs, stats.HighScore, stats.AvgScore)
	}
	return nil
}
