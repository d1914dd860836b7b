package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seal-run/internal/storage"
)

const maxScores = 100

// boardTab selects what the scoreboard lists.
type boardTab int

const (
	tabScores boardTab = iota
	tabCapped          // Levels whose bridging stopped at the cap
	tabCount
)

func (t boardTab) String() string {
	if t == tabCapped {
		return "Capped levels"
	}
	return "High scores"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Tab  key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Tab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Tab}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the default bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Tab:  key.NewBinding(key.WithKeys("tab", "left", "right"), key.WithHelp("tab", "switch list")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists saved runs and capped level reports.
type ScoreboardModel struct {
	gameID    string
	title     string
	store     *storage.Store
	tab       boardTab
	stats     *storage.Stats
	scores    []storage.ScoreEntry
	capped    []storage.LevelReport
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard for gameID. store may be nil.
func NewScoreboardModel(store *storage.Store, gameID, title string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		gameID: gameID,
		title:  title,
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.fillRows()
	return m
}

func (m *ScoreboardModel) load() {
	if m.store == nil {
		return
	}
	var err error
	if m.stats, err = m.store.GameStats(m.gameID); err != nil {
		m.loadErr = err
		return
	}
	if m.scores, err = m.store.TopScores(m.gameID, maxScores); err != nil {
		m.loadErr = err
		return
	}
	m.capped, m.loadErr = m.store.CapHitReports(maxScores)
}

func (m *ScoreboardModel) columns() []table.Column {
	if m.tab == tabCapped {
		return []table.Column{
			{Title: "Level", Width: 6},
			{Title: "Theme", Width: 8},
			{Title: "Seed", Width: 20},
			{Title: "Bridges", Width: 8},
			{Title: "Enemies", Width: 8},
		}
	}
	date := min(max(m.width-48, 12), 20)
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 6},
		{Title: "Seed", Width: 12},
		{Title: "Date", Width: date},
	}
}

func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) fillRows() {
	var rows []table.Row
	if m.tab == tabCapped {
		for _, r := range m.capped {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", r.Level),
				r.Theme,
				fmt.Sprintf("%d", r.Seed),
				fmt.Sprintf("%d", r.Bridges),
				fmt.Sprintf("%d/%d", r.EnemiesSpawned, r.EnemiesRequested),
			})
		}
	} else {
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				fmt.Sprintf("%d", s.Level),
				fmt.Sprintf("%d", s.Seed),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.tab = (m.tab + 1) % tabCount
			m.table = m.createTable()
			m.fillRows()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.fillRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrame      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmpty      = boardDim.Italic(true).Padding(2, 4)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render(strings.ToUpper(m.title)+" - "+m.tab.String()), m.width))
	b.WriteString("\n")
	if m.stats != nil && m.stats.Runs > 0 {
		line := fmt.Sprintf("%d runs  |  best %d  |  average %.0f  |  furthest level %d",
			m.stats.Runs, m.stats.HighScore, m.stats.AvgScore, m.stats.BestLevel)
		b.WriteString(centerText(boardDim.Render(line), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(boardFrame.Render(m.body()), m.width))
	b.WriteString("\n")
	b.WriteString(boardDim.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) body() string {
	switch {
	case m.store == nil:
		return boardEmpty.Render("Scores are disabled (no database).")
	case m.loadErr != nil:
		return boardEmpty.Render("Could not load: " + m.loadErr.Error())
	case m.tab == tabScores && len(m.scores) == 0:
		return boardEmpty.Render("No scores recorded yet.\nFinish a run to set a high score!")
	case m.tab == tabCapped && len(m.capped) == 0:
		return boardEmpty.Render("No capped levels recorded.\nRun `sealrun check` to survey seeds.")
	}
	return m.table.View()
}

// IsGoingBack reports whether the user wants the menu again.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard locally and reports whether the user
// went back rather than quitting.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, gameID, title, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
