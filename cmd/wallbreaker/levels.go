package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wallbreaker/internal/games/wallbreaker"
	"github.com/vovakirdan/wallbreaker/internal/levels"
)

var flagCheckDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all level packs",
	Long: `Shows the built-in level packs. With --check, parses every level of a
directory pack and reports the first problem of each broken level.

Examples:
  wallbreaker levels
  wallbreaker levels --check ./mylevels`,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagCheckDir, "check", "", "Validate the levels in a directory")
}

func runLevels(_ *cobra.Command, _ []string) error {
	if flagCheckDir != "" {
		return checkDir(flagCheckDir)
	}

	packs := levels.List()
	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return nil
	}

	fmt.Println("Available level packs:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, p := range packs {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Levels", "Description")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "------", "-----------")
	for _, p := range packs {
		fmt.Printf("  %-*s  %-6d  %s\n", maxNameLen, p.Name, p.Levels, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'wallbreaker play <name>' to play a pack.")
	return nil
}

func checkDir(dir string) error {
	pack, err := levels.LoadDir(dir)
	if err != nil {
		return err
	}

	bad := 0
	for _, l := range pack.Levels {
		g, err := wallbreaker.ParseGrid(l.Name, l.Rows)
		if err != nil {
			bad++
			fmt.Printf("  FAIL  %v\n", err)
			continue
		}
		fmt.Printf("  ok    %-20s %dx%d, %d scoring bricks\n", l.Name, g.Cols, g.Rows, g.Scoring())
	}

	if bad > 0 {
		return fmt.Errorf("%d of %d levels refused", bad, pack.Len())
	}
	return nil
}
