package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seal-run/internal/core"
	"github.com/vovakirdan/seal-run/internal/registry"
	"github.com/vovakirdan/seal-run/internal/storage"
)

// GameModel drives one game: it maps keys into the next input frame, steps
// the game on every tick and saves the score once per game over.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	fixedSeed  bool // Restart replays the same seed
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for game. A zero seed picks a time-based one
// and every restart picks a new one; a fixed seed is replayed on restart.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		fixedSeed:  fixed,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The renderer scales to whatever size it gets, so the run survives.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore is best effort: a failed save is logged and play continues.
func (m *GameModel) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level, m.config.Seed); err != nil {
		m.logger.Error("save score", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Info("score saved", "game", m.game.ID(), "score", m.gameState.Score, "level", m.gameState.Level)
}

// saveScreenshot writes the current frame as plain text under
// ~/.sealrun/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".sealrun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the user asked to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to leave the game.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays game in the local terminal until the user quits or backs out.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)
	m := &backQuitter{model}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// backQuitter ends the program when the wrapped game asks for the menu,
// since a standalone run has no menu to return to.
type backQuitter struct {
	GameModel
}

func (b *backQuitter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := b.GameModel.Update(msg)
	b.GameModel = next.(GameModel)
	if b.GameModel.BackToMenu() {
		return b, tea.Quit
	}
	return b, cmd
}
