package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seal-run/internal/storage"
)

func TestScoreboardListsScoresAndCappedLevels(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	store.SaveScore("seal", 300, 2, 11)
	store.SaveScore("seal", 900, 4, 12)
	store.SaveLevelReport(storage.LevelReport{Seed: 77, Level: 5, Theme: "harbor", Bridges: 9, CapHit: true})

	m := NewScoreboardModel(store, "seal", "Seal Run", 100, 30)
	if len(m.scores) != 2 || m.scores[0].Score != 900 {
		t.Fatalf("scores = %+v", m.scores)
	}
	view := m.View()
	if !strings.Contains(view, "2 runs") || !strings.Contains(view, "best 900") {
		t.Errorf("stats line missing:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.tab != tabCapped {
		t.Fatalf("tab = %v, want capped", m.tab)
	}
	if rows := m.table.Rows(); len(rows) != 1 || rows[0][1] != "harbor" {
		t.Errorf("capped rows = %v", rows)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "seal", "Seal Run", 80, 24)
	if !strings.Contains(m.View(), "no database") {
		t.Errorf("view = %q", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
