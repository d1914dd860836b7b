package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seal-run/internal/games/sealrun"
	"github.com/vovakirdan/seal-run/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level and theme, then play",
	Long: `Start with the interactive menu. Choose the start level and the theme
(auto cycles by level), view high scores, and come back to the menu
after each run.

Controls:
  Up/Down/j/k     - Navigate
  Left/Right/h/l  - Change level or theme
  Enter/Space     - Select
  Tab             - Scores
  Q               - Quit

Examples:
  sealrun menu
  sealrun menu --fps 30 --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := openStore()
	defer closeStore(store)

	opts := tui.MenuOptions{
		GameID:   sealrun.GameID,
		Title:    sealrun.New().Title(),
		Themes:   themeNames(cfg),
		MaxLevel: cfg.Difficulty.MaxLevel,
		Level:    1,
	}
	rc := runtimeConfig(1)

	for {
		res, err := tui.RunMenu(store, rc, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		rc = res.Config
		opts.Level, opts.Theme = res.Level, res.Theme

		if res.Quit {
			return
		}
		if res.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, opts.GameID, opts.Title, rc.ScreenW, rc.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return
			}
			continue
		}

		game := sealrun.New()
		game.UseTheme(res.Theme)
		if err := tui.Run(game, store, rc, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
