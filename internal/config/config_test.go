package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded SealConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &embedded); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}

	if !reflect.DeepEqual(embedded, DefaultSealConfig()) {
		t.Errorf("embedded defaults drifted from DefaultSealConfig()\nyaml: %+v\ngo:   %+v", embedded, DefaultSealConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultSealConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestLoadSealCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("level:\n  max_bridges: 7\nenemies:\n  hawk:\n    ascend_duration: 500ms\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSeal(path)
	if err != nil {
		t.Fatalf("LoadSeal() failed: %v", err)
	}

	if cfg.Level.MaxBridges != 7 {
		t.Errorf("MaxBridges = %d, expected 7", cfg.Level.MaxBridges)
	}
	if cfg.Enemies.Hawk.AscendDuration != 500*time.Millisecond {
		t.Errorf("AscendDuration = %v, expected 500ms", cfg.Enemies.Hawk.AscendDuration)
	}
	// Untouched keys keep their defaults
	if cfg.Level.MaxJumpDistance != 220 {
		t.Errorf("MaxJumpDistance = %v, expected default 220", cfg.Level.MaxJumpDistance)
	}
}

func TestLoadSealErrors(t *testing.T) {
	if _, err := LoadSeal(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("level:\n  min_gap: 300\n  max_gap: 100\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSeal(path); err == nil {
		t.Error("inverted gap range should fail validation")
	}
}

func TestEnemyCountFormula(t *testing.T) {
	d := NewDifficultyManager(DefaultSealConfig().Difficulty, DefaultSealConfig().Level)

	tests := []struct {
		level, expected int
	}{
		{1, 9},
		{2, 10},
		{6, 14},
		{7, 15},
		{10, 15},
		{25, 15},
	}
	for _, tc := range tests {
		if got := d.EnemyCount(tc.level); got != tc.expected {
			t.Errorf("EnemyCount(%d) = %d, expected %d", tc.level, got, tc.expected)
		}
	}
}

func TestEnemyCountMonotonic(t *testing.T) {
	d := NewDifficultyManager(DefaultSealConfig().Difficulty, DefaultSealConfig().Level)

	prev := d.EnemyCount(1)
	for level := 2; level <= 30; level++ {
		got := d.EnemyCount(level)
		if got < prev {
			t.Fatalf("EnemyCount(%d) = %d is below level %d's %d", level, got, level-1, prev)
		}
		prev = got
	}
}

func TestFixedPresetDisablesProgression(t *testing.T) {
	cfg := DefaultSealConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	d := NewDifficultyManager(cfg.Difficulty, cfg.Level)

	if d.EnemyCount(1) != d.EnemyCount(8) {
		t.Errorf("fixed preset should not scale enemies: %d vs %d", d.EnemyCount(1), d.EnemyCount(8))
	}
	if d.Progress(8) != 0 {
		t.Errorf("fixed preset Progress should be 0, got %v", d.Progress(8))
	}
}

func TestPresetsAdjustLives(t *testing.T) {
	easy := DefaultSealConfig()
	ApplyPreset(&easy, ParsePreset("easy"))
	hard := DefaultSealConfig()
	ApplyPreset(&hard, ParsePreset("hard"))

	if easy.Player.Lives <= hard.Player.Lives {
		t.Errorf("easy lives %d should exceed hard lives %d", easy.Player.Lives, hard.Player.Lives)
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestParseLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultSealConfig().Difficulty, DefaultSealConfig().Level)

	if n, err := d.ParseLevel(" 12 "); err != nil || n != 12 {
		t.Errorf("ParseLevel(\" 12 \") = %d, %v", n, err)
	}

	for _, in := range []string{"0", "-3", "100", "abc", ""} {
		if _, err := d.ParseLevel(in); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("ParseLevel(%q) error = %v, expected ErrInvalidLevel", in, err)
		}
	}
}

func TestThemeForLevelCycles(t *testing.T) {
	cfg := DefaultSealConfig()

	if got := cfg.ThemeForLevel(1).Name; got != "beach" {
		t.Errorf("level 1 theme = %q, expected beach", got)
	}
	if got := cfg.ThemeForLevel(5).Name; got != "arctic" {
		t.Errorf("level 5 theme = %q, expected arctic", got)
	}
	if got := cfg.ThemeForLevel(6).Name; got != "beach" {
		t.Errorf("level 6 theme = %q, expected beach", got)
	}
	if _, ok := cfg.ThemeByName("ocean"); !ok {
		t.Error("ocean theme should exist")
	}
}
