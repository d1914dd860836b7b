package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name searched in the user and local config dirs.
const configFile = "sealrun.yaml"

// LoadSeal loads the game configuration.
// Search order: customPath -> ~/.sealrun/configs/sealrun.yaml -> ./configs/sealrun.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadSeal(customPath string) (SealConfig, error) {
	cfg := DefaultSealConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultSealConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		candidate := DefaultSealConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	var embedded SealConfig
	if err := yaml.Unmarshal(defaultSealYAML, &embedded); err != nil {
		return DefaultSealConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sealrun", "configs", filename)
}

// Validate rejects configurations the generator cannot work with.
func (c SealConfig) Validate() error {
	l := c.Level
	switch {
	case l.TileSize <= 0:
		return fmt.Errorf("config: level.tile_size must be positive")
	case l.MinGap <= 0 || l.MaxGap < l.MinGap:
		return fmt.Errorf("config: level gap range [%v, %v] is invalid", l.MinGap, l.MaxGap)
	case l.MinWidthTiles <= 0 || l.MaxWidthTiles < l.MinWidthTiles:
		return fmt.Errorf("config: level width range [%d, %d] is invalid", l.MinWidthTiles, l.MaxWidthTiles)
	case l.MaxY < l.MinY:
		return fmt.Errorf("config: level.min_y must not exceed level.max_y")
	case l.Width <= l.StartX+l.GoalOffset:
		return fmt.Errorf("config: level.width %v leaves no room between start and goal", l.Width)
	case l.MaxBridges < 0:
		return fmt.Errorf("config: level.max_bridges must not be negative")
	}
	if c.Spawn.MaxAttempts <= 0 {
		return fmt.Errorf("config: spawn.max_attempts must be positive")
	}
	if c.Difficulty.MaxEnemies < c.Difficulty.MinEnemies {
		return fmt.Errorf("config: difficulty.max_enemies must not be below min_enemies")
	}
	if len(c.Themes) == 0 {
		return fmt.Errorf("config: at least one theme is required")
	}
	for _, th := range c.Themes {
		if len(th.Roster) == 0 {
			return fmt.Errorf("config: theme %q has an empty enemy roster", th.Name)
		}
	}
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SealConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.MinEnemies = max(cfg.Difficulty.MinEnemies-3, 1)
		cfg.Player.Lives = 5
	case DifficultyHard:
		cfg.Difficulty.MinEnemies += 2
		cfg.Difficulty.MaxEnemies += 5
		cfg.Player.Lives = 2
	case DifficultyFixed:
		cfg.Difficulty.Progression = false
	}
}
