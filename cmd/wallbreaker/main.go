// wallbreaker is a brick breaker for the terminal.
//
// Usage:
//
//	wallbreaker              - Pick a level pack and play
//	wallbreaker play [pack]  - Play a pack directly
//	wallbreaker levels       - List level packs
//	wallbreaker scores       - Show the hall of fame
//	wallbreaker serve        - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal or hard
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Run history database (default: ~/.wallbreaker/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagDBPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wallbreaker",
	Short: "Wallbreaker - break bricks in your terminal",
	Long: `Wallbreaker is a brick breaker for the terminal. Bounce the ball off
the paddle, clear every breakable brick and keep away from the poisoned ones.

Available commands:
  play     - Play a level pack directly
  levels   - Show all level packs
  scores   - View the hall of fame and run history
  serve    - Start SSH server for remote play

Without a command the pack picker menu starts.

Examples:
  wallbreaker
  wallbreaker play classic --difficulty hard
  wallbreaker play --levels-dir ./mylevels --watch
  wallbreaker serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wallbreaker/runs.db", "Path to run history database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
