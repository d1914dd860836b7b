package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seal-run/internal/core"
	"github.com/vovakirdan/seal-run/internal/storage"
)

// scriptedGame ends after a fixed number of steps.
type scriptedGame struct {
	steps   int
	endAt   int
	resets  int
	seeds   []int64
	lastIn  core.InputFrame
	score   int
	paused  bool
	renders int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.seeds = append(g.seeds, cfg.Seed)
}
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastIn = in
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	return core.StepResult{State: g.State()}
}
func (g *scriptedGame) Render(dst *core.Screen) { g.renders++; dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.score, Level: 2, GameOver: g.steps >= g.endAt, Paused: g.paused}
}

func quietLogger() *log.Logger { return log.New(io.Discard) }

func step(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{endAt: 3, score: 700}
	m := NewGameModel(g, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 9}, quietLogger())
	m.Init()

	for i := 0; i < 6; i++ {
		m = step(t, m, TickMsg(time.Now()))
	}
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 700 || scores[0].Level != 2 || scores[0].Seed != 9 {
		t.Errorf("saved entry = %+v", scores[0])
	}
}

func TestGameModelKeysReachNextStep(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m := NewGameModel(g, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1}, quietLogger())
	m.Init()

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = step(t, m, TickMsg(time.Now()))
	if !g.lastIn.Has(core.ActionRight) {
		t.Error("key press did not reach Step")
	}

	m = step(t, m, TickMsg(time.Now()))
	if g.lastIn.Has(core.ActionRight) {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestGameModelRestartKeepsFixedSeed(t *testing.T) {
	g := &scriptedGame{endAt: 1}
	m := NewGameModel(g, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 42}, quietLogger())
	m.Init()

	m = step(t, m, TickMsg(time.Now()))
	m = step(t, m, runeKey('r'))
	m = step(t, m, TickMsg(time.Now()))

	if g.resets != 2 {
		t.Fatalf("resets = %d, want 2", g.resets)
	}
	if g.seeds[1] != 42 {
		t.Errorf("restart seed = %d, want 42", g.seeds[1])
	}
}

func TestGameModelBackOnlyWhenPausedOrOver(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m := NewGameModel(g, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1}, quietLogger())
	m.Init()

	m = step(t, m, TickMsg(time.Now()))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m = step(t, m, runeKey('p'))
	m = step(t, m, TickMsg(time.Now()))
	if !m.State().Paused {
		t.Fatal("expected paused")
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should leave a paused game")
	}
}

func TestGameModelQuitAndResize(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m := NewGameModel(g, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1}, quietLogger())
	m.Init()

	m = step(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if g.resets != 1 {
		t.Error("resize should not reset the run")
	}
	if m.View() == "" {
		t.Error("view should render while playing")
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}
