package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLevel is returned for level numbers outside [1, MaxLevel].
var ErrInvalidLevel = errors.New("invalid level number")

// DifficultyManager derives per-level parameters from the configuration.
type DifficultyManager struct {
	cfg   DifficultyConfig
	level LevelConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, level LevelConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, level: level}
}

// EnemyCount returns how many enemies a level requests:
// min(MinEnemies + min(level, LevelCap), MaxEnemies).
// With progression disabled the level-1 count is used throughout.
func (d *DifficultyManager) EnemyCount(level int) int {
	if !d.cfg.Progression {
		level = 1
	}
	level = max(level, 0)
	return min(d.cfg.MinEnemies+min(level, d.cfg.LevelCap), d.cfg.MaxEnemies)
}

// PlatformCount returns the target main-sequence platform count for a level.
func (d *DifficultyManager) PlatformCount(level int) int {
	if !d.cfg.Progression {
		level = 1
	}
	return d.level.BasePlatforms + d.level.PlatformsPerLevel*min(max(level, 1), d.cfg.LevelCap)
}

// Progress returns how far a level is along the scaling curve (0.0 to 1.0).
func (d *DifficultyManager) Progress(level int) float64 {
	if !d.cfg.Progression || d.cfg.LevelCap <= 1 {
		return 0
	}
	p := float64(level-1) / float64(d.cfg.LevelCap-1)
	return min(max(p, 0), 1)
}

// ValidateLevel rejects level numbers the game cannot start.
func (d *DifficultyManager) ValidateLevel(level int) error {
	maxLevel := d.cfg.MaxLevel
	if maxLevel <= 0 {
		maxLevel = 99
	}
	if level < 1 || level > maxLevel {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidLevel, level, maxLevel)
	}
	return nil
}

// ParseLevel parses a user-entered level number and validates it.
func (d *DifficultyManager) ParseLevel(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidLevel, s)
	}
	if err := d.ValidateLevel(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ThemeForLevel returns the theme a level is played in; themes cycle.
func (c SealConfig) ThemeForLevel(level int) ThemeConfig {
	if len(c.Themes) == 0 {
		return ThemeConfig{}
	}
	idx := (max(level, 1) - 1) % len(c.Themes)
	return c.Themes[idx]
}

// ThemeByName looks up a theme by its name.
func (c SealConfig) ThemeByName(name string) (ThemeConfig, bool) {
	for _, th := range c.Themes {
		if th.Name == name {
			return th, true
		}
	}
	return ThemeConfig{}, false
}
