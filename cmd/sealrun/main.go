// sealrun is a terminal platformer: a seal crosses procedurally generated
// levels of beaches, cities, oceans, harbors and ice.
//
// Usage:
//
//	sealrun play               - Play from level 1 (or --level)
//	sealrun menu               - Pick level and theme interactively
//	sealrun serve              - Serve the game over SSH
//	sealrun scores             - Show high scores
//	sealrun themes             - List themes and their enemies
//	sealrun generate           - Export a generated level
//	sealrun check              - Generate many levels and audit them
//
// Global flags:
//
//	--fps <rate>         - Tick rate (default: 60)
//	--seed <value>       - RNG seed for reproducible levels
//	--db <path>          - Database path (default: ~/.sealrun/scores.db)
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log destination, "-" for stderr
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seal-run/internal/config"
	"github.com/vovakirdan/seal-run/internal/games/sealrun"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logger is set up before any subcommand runs.
var logger = log.New(os.Stderr)

// logCloser closes the log file, if one was opened.
var logCloser = func() {}

func main() {
	err := rootCmd.Execute()
	logCloser()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sealrun",
	Short: "Seal Run - a procedurally generated platformer for your terminal",
	Long: `Seal Run is a side-scrolling platformer played in the terminal.

Each level is generated from a seed: platforms are laid out left to right,
gaps the seal cannot jump get bridges, and themed enemies are spread across
the level. Hawks and orcas dive at you, polar bears charge.

Examples:
  sealrun play
  sealrun play --level 5 --theme arctic --seed 42
  sealrun menu --difficulty easy
  sealrun serve --ssh :2222
  sealrun generate --level 3 --format yaml
  sealrun check --levels 10 --seeds 50`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		sealrun.SetConfigPath(flagConfig)
		sealrun.SetDifficultyPreset(flagDifficulty)
		sealrun.SetLogger(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sealrun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.sealrun/sealrun.log", `Log file ("-" for stderr)`)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
}

// setupLogging points the logger at --log-file. The TUI owns the terminal,
// so logs go to a file unless "-" is given.
func setupLogging() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	out := os.Stderr
	if flagLogFile != "-" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		logCloser = func() { f.Close() }
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "sealrun",
		Level:           level,
	})
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// loadConfig loads the game config the same way a game Reset does.
func loadConfig() config.SealConfig {
	cfg, err := config.LoadSeal(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultSealConfig()
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	return cfg
}

// themeNames lists the configured themes in order.
func themeNames(cfg config.SealConfig) []string {
	names := make([]string, len(cfg.Themes))
	for i, th := range cfg.Themes {
		names[i] = th.Name
	}
	return names
}

// exitf prints an error and exits.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	logCloser()
	os.Exit(1)
}
