package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seal-run/internal/core"
	"github.com/vovakirdan/seal-run/internal/storage"
)

// MenuOptions configures the start menu.
type MenuOptions struct {
	GameID   string
	Title    string
	Themes   []string // Selectable theme names; "auto" cycles by level
	MaxLevel int
	Level    int    // Initially selected level
	Theme    string // Initially selected theme, empty for auto
}

const autoTheme = "auto"

// Menu rows in display order.
const (
	rowStart = iota
	rowLevel
	rowTheme
	rowScores
	rowQuit
	rowCount
)

// MenuModel is the start screen: pick a level and theme, then play.
type MenuModel struct {
	opts      MenuOptions
	themes    []string
	themeIdx  int
	level     int
	cursor    int
	highScore int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting       bool
	started        bool
	openScoreboard bool
}

// NewMenuModel creates a menu. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, opts MenuOptions) MenuModel {
	if opts.MaxLevel < 1 {
		opts.MaxLevel = 1
	}
	themes := append([]string{autoTheme}, opts.Themes...)
	m := MenuModel{
		opts:      opts,
		themes:    themes,
		level:     min(max(opts.Level, 1), opts.MaxLevel),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, name := range themes {
		if name == opts.Theme {
			m.themeIdx = i
		}
	}
	if store != nil {
		if hs, err := store.HighScore(opts.GameID); err == nil {
			m.highScore = hs
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = (m.cursor + rowCount - 1) % rowCount
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % rowCount
	case MenuActionLeft:
		m.adjust(-1)
	case MenuActionRight:
		m.adjust(1)
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuActionSelect:
		switch m.cursor {
		case rowStart:
			m.started = true
			return m, tea.Quit
		case rowScores:
			m.openScoreboard = true
			return m, tea.Quit
		case rowQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.adjust(1)
		}
	}
	return m, nil
}

// adjust cycles the value on the current row.
func (m *MenuModel) adjust(delta int) {
	switch m.cursor {
	case rowLevel:
		m.level = (m.level-1+delta+m.opts.MaxLevel)%m.opts.MaxLevel + 1
	case rowTheme:
		n := len(m.themes)
		m.themeIdx = (m.themeIdx + delta + n) % n
	}
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(spaced(m.opts.Title)), m.width))
	b.WriteString("\n\n")
	if m.highScore > 0 {
		b.WriteString(centerText(menuDim.Render(fmt.Sprintf("High score: %d", m.highScore)), m.width))
		b.WriteString("\n\n")
	}

	rows := [rowCount]string{
		rowStart:  "Start",
		rowLevel:  fmt.Sprintf("Level   < %d >", m.level),
		rowTheme:  fmt.Sprintf("Theme   < %s >", m.themes[m.themeIdx]),
		rowScores: "High scores",
		rowQuit:   "Quit",
	}
	for i, row := range rows {
		line := "  " + row
		if i == m.cursor {
			line = menuCursor.Render("> " + row)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDim.Render("Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// spaced turns "Seal Run" into "S E A L   R U N".
func spaced(title string) string {
	return strings.Join(strings.Split(strings.ToUpper(title), ""), " ")
}

// centerText centers text within width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// Started reports whether the user chose Start.
func (m MenuModel) Started() bool {
	return m.started
}

// IsQuitting reports whether the user asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Level is the selected start level.
func (m MenuModel) Level() int {
	return m.level
}

// Theme is the selected theme name, empty for auto.
func (m MenuModel) Theme() string {
	if t := m.themes[m.themeIdx]; t != autoTheme {
		return t
	}
	return ""
}

// Config returns the runtime config with the selected level applied.
func (m MenuModel) Config() core.RuntimeConfig {
	cfg := m.config
	cfg.StartLevel = m.level
	return cfg
}

// MenuResult holds the outcome of the menu.
type MenuResult struct {
	Level           int
	Theme           string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// result summarizes the final menu state.
func (m MenuModel) result() MenuResult {
	res := MenuResult{Level: m.Level(), Theme: m.Theme(), Config: m.Config()}
	switch {
	case m.openScoreboard:
		res.WantsScoreboard = true
	case !m.started:
		res.Quit = true
	}
	return res
}

// RunMenu shows the menu in the local terminal.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, opts MenuOptions) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg, opts), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
