package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seal-run/internal/config"
	"github.com/vovakirdan/seal-run/internal/core"
	"github.com/vovakirdan/seal-run/internal/games/sealrun"
	"github.com/vovakirdan/seal-run/internal/platform/tui"
	"github.com/vovakirdan/seal-run/internal/storage"
)

var (
	flagLevel int
	flagTheme string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Seal Run",
	Long: `Start a run. Finishing a level builds the next one; themes cycle
beach, city, ocean, harbor, arctic unless --theme fixes one.

Controls:
  Left/Right/A/D  - Run (keeps running until Down or the other way)
  Space/Up/W      - Jump
  Down/S          - Stop
  P               - Pause
  Esc/B           - Leave (when paused or game over)
  R               - Restart (after game over)
  Ctrl+S          - Screenshot to ~/.sealrun/screenshots
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Fewer enemies, more lives
  normal - Config values
  hard   - More enemies, fewer lives
  fixed  - Enemy count never grows with the level

Examples:
  sealrun play
  sealrun play --level 4 --theme harbor
  sealrun play --seed 1234 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Fix every level to one theme")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty, cfg.Level)
	if err := diff.ValidateLevel(flagLevel); err != nil {
		exitf("%v", err)
	}
	if flagTheme != "" {
		if _, ok := cfg.ThemeByName(flagTheme); !ok {
			exitf("unknown theme %q (have %s)", flagTheme, strings.Join(themeNames(cfg), ", "))
		}
	}

	game := sealrun.New()
	game.UseTheme(flagTheme)

	store := openStore()
	defer closeStore(store)

	if err := tui.Run(game, store, runtimeConfig(flagLevel), logger); err != nil {
		exitf("running game: %v", err)
	}
}

// runtimeConfig builds the runtime config from the terminal and global flags.
func runtimeConfig(level int) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		StartLevel: level,
	}
}

// openStore opens the scores database. The game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
