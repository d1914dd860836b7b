package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seal-run/internal/config"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List themes and the enemies they use",
	Long: `Shows the configured themes in cycle order with their enemy rosters.
Level n uses theme ((n-1) mod count) unless --theme fixes one.`,
	Args: cobra.NoArgs,
	Run:  runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if len(cfg.Themes) == 0 {
		fmt.Println("No themes configured.")
		return
	}

	nameW := len("Name")
	for _, th := range cfg.Themes {
		nameW = max(nameW, len(th.Name))
	}

	fmt.Println("Themes:")
	fmt.Println()
	fmt.Printf("  %-*s  %-4s  %s\n", nameW, "Name", "Ice", "Enemies")
	fmt.Printf("  %-*s  %-4s  %s\n", nameW, "----", "---", "-------")
	for _, th := range cfg.Themes {
		fmt.Printf("  %-*s  %-4s  %s\n", nameW, th.Name, yesNo(th.Ice), strings.Join(th.Roster, ", "))
	}

	diff := config.NewDifficultyManager(cfg.Difficulty, cfg.Level)
	fmt.Println()
	fmt.Printf("Enemies per level: %d at level 1, %d at level %d\n",
		diff.EnemyCount(1), diff.EnemyCount(cfg.Difficulty.LevelCap), cfg.Difficulty.LevelCap)
	fmt.Println("Run 'sealrun play --theme <name>' to stay in one theme.")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
