package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seal-run/internal/games/sealrun"
	"github.com/vovakirdan/seal-run/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve Seal Run over SSH",
	Long: `Start an SSH server. Every connection gets its own menu and runs;
all users share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.sealrun/host_key

Examples:
  sealrun serve                           # Listen on :23234
  sealrun serve --ssh :2222
  sealrun serve --host-key ./host_key --db ./scores.db

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.DBPath = flagDBPath
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.TickRate = flagFPS
	srvCfg.Menu = tui.MenuOptions{
		GameID:   sealrun.GameID,
		Title:    sealrun.New().Title(),
		Themes:   themeNames(cfg),
		MaxLevel: cfg.Difficulty.MaxLevel,
		Level:    1,
	}

	server, err := tui.NewSSHServer(srvCfg, logger.WithPrefix("sealrun-ssh"))
	if err != nil {
		exitf("creating server: %v", err)
	}

	fmt.Printf("Starting Seal Run SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		exitf("server: %v", err)
	}
}
