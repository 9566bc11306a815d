package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wallbreaker/internal/levels"
	"github.com/vovakirdan/wallbreaker/internal/platform/tui"
)

var (
	flagLevelsDir string
	flagWatch     bool
)

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a level pack",
	Long: `Start playing the given level pack, or the configured one.

Controls:
  Left/Right, A/D   - Move the paddle
  S/Down            - Stop the paddle
  Mouse             - Paddle follows the pointer
  Space/Enter/Click - Launch the ball, continue
  Esc               - Back
  Q/Ctrl+C          - Quit

Level directories hold one .txt file per level, played in file name order
unless a pack.yaml manifest lists them. With --watch, edited levels are
loaded while you play.

Examples:
  wallbreaker play
  wallbreaker play practice --difficulty easy
  wallbreaker play --levels-dir ./mylevels --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Play levels from a directory")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the levels directory when it changes")
}

func runPlay(_ *cobra.Command, args []string) error {
	a, err := setup(setupOptions{sound: true, history: true})
	if err != nil {
		return err
	}
	defer a.Close()

	sel := tui.Selection{
		Pack:       a.cfg.Levels.Pack,
		Dir:        a.cfg.Levels.Dir,
		Difficulty: a.preset,
	}
	if len(args) == 1 {
		sel.Pack = args[0]
		sel.Dir = ""
	}
	if flagLevelsDir != "" {
		sel.Dir = flagLevelsDir
	}
	if sel.Dir == "" && !levels.Exists(sel.Pack) {
		return fmt.Errorf("unknown level pack %q; run 'wallbreaker levels' to see available packs", sel.Pack)
	}

	session, err := a.env.NewSession(sel)
	if err != nil {
		a.logger.Error("level pack refused", "pack", sel.Pack, "dir", sel.Dir, "err", err)
		return err
	}
	a.logger.Info("game started", "pack", session.PackName(), "levels", session.Levels(), "difficulty", sel.Difficulty)

	_, err = tui.Run(session, runtimeConfig(), sel, flagWatch || a.cfg.Levels.Watch, a.logger)
	return err
}
