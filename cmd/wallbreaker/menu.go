package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wallbreaker/internal/platform/tui"
)

// runMenu loops through the pack picker, the scoreboard and games until
// the player quits.
func runMenu(_ *cobra.Command, _ []string) error {
	a, err := setup(setupOptions{sound: true, history: true})
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := runtimeConfig()
	preset := a.preset

	for {
		menuResult, err := tui.RunMenu(cfg, a.cfg.Levels.Pack, preset)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(a.env.Ledger, a.env.Store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		sel := menuResult.Selection
		preset = sel.Difficulty
		session, err := a.env.NewSession(sel)
		if err != nil {
			a.logger.Error("level pack refused", "pack", sel.Pack, "err", err)
			continue
		}
		a.logger.Info("game started", "pack", session.PackName(), "difficulty", sel.Difficulty)

		back, err := tui.Run(session, cfg, sel, false, a.logger)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
