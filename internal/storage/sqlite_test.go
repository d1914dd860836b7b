package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTemp(t)

	runs := []struct {
		game  string
		score int
		level int
	}{
		{"seal", 100, 1},
		{"seal", 50, 1},
		{"seal", 200, 3},
		{"other", 500, 9},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r.game, r.score, r.level, 42); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("seal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Level != 3 || scores[0].Seed != 42 {
		t.Errorf("top entry = %+v, want level 3 seed 42", scores[0])
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)
	for i := 0; i < 5; i++ {
		store.SaveScore("seal", (i+1)*100, 1, 0)
	}

	scores, err := store.TopScores("seal", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("seal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty game, got %d", high)
	}

	store.SaveScore("seal", 100, 1, 0)
	store.SaveScore("seal", 300, 2, 0)
	store.SaveScore("other", 900, 1, 0)

	if high, _ = store.HighScore("seal"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	if err := store.ClearScores("seal"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("seal", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Clearing one game should not touch another")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.GameStats("seal")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("seal", 100, 2, 0)
	store.SaveScore("seal", 300, 4, 0)

	stats, err := store.GameStats("seal")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 300 || stats.BestLevel != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
}

func TestStoreLevelReports(t *testing.T) {
	store := openTemp(t)

	id, err := store.SaveLevelReport(LevelReport{
		Seed: 7, Level: 3, Theme: "ocean",
		Platforms: 30, Bridges: 4, CapHit: true,
		EnemiesRequested: 5, EnemiesSpawned: 4,
		CollectiblesRequested: 10, CollectiblesSpawned: 10,
	})
	if err != nil {
		t.Fatalf("SaveLevelReport() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("generated ID %q is not a UUID: %v", id, err)
	}
	if _, err := store.SaveLevelReport(LevelReport{Seed: 8, Level: 1, Theme: "beach"}); err != nil {
		t.Fatalf("SaveLevelReport() failed: %v", err)
	}

	got, err := store.LevelReportByID(id)
	if err != nil {
		t.Fatalf("LevelReportByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("report not found")
	}
	if got.Seed != 7 || got.Theme != "ocean" || !got.CapHit || got.EnemiesSpawned != 4 {
		t.Errorf("report = %+v", got)
	}

	missing, err := store.LevelReportByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("missing report = %v, %v; want nil, nil", missing, err)
	}

	capped, err := store.CapHitReports(10)
	if err != nil {
		t.Fatalf("CapHitReports() failed: %v", err)
	}
	if len(capped) != 1 || capped[0].ID != id {
		t.Errorf("CapHitReports = %+v, want only %s", capped, id)
	}
}
