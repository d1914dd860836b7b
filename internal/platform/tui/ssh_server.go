package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/seal-run/internal/core"
	"github.com/vovakirdan/seal-run/internal/registry"
	"github.com/vovakirdan/seal-run/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on.
	Address string

	// HostKeyPath is the host key file. Empty means ~/.sealrun/host_key,
	// generated on first start.
	HostKeyPath string

	// DBPath is the scores database. Empty disables score saving.
	DBPath string

	IdleTimeout time.Duration
	TickRate    int

	// Menu configures the start menu every session sees.
	Menu MenuOptions
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.sealrun/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves the game to SSH clients through Wish.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a server. A database that fails to open is logged
// and the server runs without scores.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "sealrun-ssh"})
	}

	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		if store, err = storage.Open(cfg.DBPath); err != nil {
			logger.Warn("could not open scores database", "err", err)
			store = nil
		}
	}

	srv := &SSHServer{config: cfg, store: store, logger: logger}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".sealrun", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	srv.server = server
	return srv, nil
}

// teaHandler creates the session model for each connection.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}
	id := uuid.New()
	logger := s.logger.With("session", id.String()[:8], "user", sess.User())
	return NewSessionModel(s.store, cfg, s.config.Menu, logger), []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started", "user", sess.User(), "remote", sess.RemoteAddr().String())
		next(sess)
		s.logger.Info("session ended", "user", sess.User(), "remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe runs until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "err", err)
		}
	}()

	<-done
	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown stops the server and closes the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// themed games accept a per-instance theme.
type themed interface {
	UseTheme(name string)
}

// sessionScreen is what a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenBoard
)

// SessionModel runs menu, game and scoreboard inside one program, which is
// what an SSH session needs since it cannot start new programs.
type SessionModel struct {
	store  *storage.Store
	config core.RuntimeConfig
	opts   MenuOptions
	logger *log.Logger

	screen   sessionScreen
	menu     MenuModel
	game     *GameModel
	board    ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, opts MenuOptions, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	return SessionModel{
		store:  store,
		config: cfg,
		opts:   opts,
		logger: logger,
		menu:   NewMenuModel(store, cfg, opts),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenBoard:
		return m.updateBoard(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.WantsScoreboard():
		m.board = NewScoreboardModel(m.store, m.opts.GameID, m.opts.Title, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenBoard
		return m, m.board.Init()
	case m.menu.Started():
		return m.startGame()
	}
	return m, cmd
}

func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.opts.GameID)
	if err != nil {
		m.logger.Error("create game", "err", err)
		m.menu = NewMenuModel(m.store, m.config, m.opts)
		m.screen = screenMenu
		return m, nil
	}
	if theme := m.menu.Theme(); theme != "" {
		if tg, ok := game.(themed); ok {
			tg.UseTheme(theme)
		}
	}

	cfg := m.config
	cfg.StartLevel = m.menu.Level()
	m.logger.Info("game started", "level", cfg.StartLevel, "theme", m.menu.Theme())

	gm := NewGameModel(game, m.store, cfg, m.logger)
	m.game = &gm
	m.screen = screenGame
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	gm := next.(GameModel)
	m.game = &gm

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		st := m.game.State()
		m.logger.Info("game left", "score", st.Score, "level", st.Level)
		m.backToMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	m.board = next.(ScoreboardModel)

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.IsGoingBack():
		m.backToMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

// backToMenu shows a fresh menu that remembers the last level and theme.
func (m *SessionModel) backToMenu() {
	opts := m.opts
	opts.Level = m.menu.Level()
	opts.Theme = m.menu.Theme()
	m.menu = NewMenuModel(m.store, m.config, opts)
	m.game = nil
	m.screen = screenMenu
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenBoard:
		return m.board.View()
	default:
		return m.menu.View()
	}
}
