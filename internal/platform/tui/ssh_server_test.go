package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seal-run/internal/core"
	"github.com/vovakirdan/seal-run/internal/registry"
)

type themedStub struct {
	scriptedGame
	theme string
}

func (g *themedStub) UseTheme(name string) { g.theme = name }

var lastThemed *themedStub

func init() {
	registry.Register("session-stub", func() registry.Game {
		lastThemed = &themedStub{scriptedGame: scriptedGame{endAt: 1000}}
		return lastThemed
	})
}

func sessionSend(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func newTestSession() SessionModel {
	return NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5},
		MenuOptions{GameID: "session-stub", Title: "Stub", Themes: []string{"beach", "arctic"}, MaxLevel: 5},
		quietLogger())
}

func TestSessionStartsGameWithMenuChoices(t *testing.T) {
	m := newTestSession()
	// Level row: 1 -> 3. Theme row: auto -> beach -> arctic.
	m = sessionSend(t, m, keyDown, keyRight, keyRight, keyDown, keyRight, keyRight, keyUp, keyUp, keyEnter)

	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if lastThemed.theme != "arctic" {
		t.Errorf("theme = %q, want arctic", lastThemed.theme)
	}
	if m.game.config.StartLevel != 3 {
		t.Errorf("StartLevel = %d, want 3", m.game.config.StartLevel)
	}

	m = sessionSend(t, m, TickMsg(time.Now()), runeKey('p'), TickMsg(time.Now()), tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after back", m.screen)
	}
	if m.menu.Level() != 3 || m.menu.Theme() != "arctic" {
		t.Errorf("menu forgot choices: level %d theme %q", m.menu.Level(), m.menu.Theme())
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := sessionSend(t, newTestSession(), tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenBoard {
		t.Fatalf("screen = %v, want board", m.screen)
	}
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
	if m.View() == "" {
		t.Error("menu view should not be empty")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession()
	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q should end the session")
	}
}
