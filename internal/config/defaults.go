package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/sealrun.yaml
var defaultSealYAML []byte

// DefaultSealConfig returns the built-in configuration.
// Kept in sync with defaults/sealrun.yaml.
func DefaultSealConfig() SealConfig {
	return SealConfig{
		Level: LevelConfig{
			TileSize:       32,
			Width:          10240,
			Height:         720,
			GoalOffset:     200,
			GoalBuffer:     300,
			PlatformHeight: 32,

			BasePlatforms:     30,
			PlatformsPerLevel: 2,

			MinGap:        80,
			MaxGap:        180,
			MinWidthTiles: 5,
			MaxWidthTiles: 12,

			MaxRise:      100,
			DampenAbove:  50,
			DampenFactor: 0.7,
			MinY:         260,
			MaxY:         620,

			StartX:          300,
			StartY:          600,
			StartWidthTiles: 10,
			GoalWidthTiles:  8,

			GroundY:          680,
			SafetyEvery:      1000,
			SafetyWidthTiles: 10,

			MovingChance:     0.15,
			MovingMinAnchors: 3,
			MovingAmplitude:  100,
			MovingPeriod:     3000 * time.Millisecond,
			MovingWidthTiles: 3,
			MovingLift:       160,

			BridgeWidthTiles: 4,
			MaxJumpDistance:  220,
			MaxJumpUp:        150,
			MaxJumpDown:      250,
			MaxBridges:       50,
			BridgeJitter:     25,
			VerticalBridge:   0.7,

			CrackChance: 0.3,
			CrackTime:   1500 * time.Millisecond,
		},
		Spawn: SpawnConfig{
			DefaultRadius:   60,
			HeavyRadius:     80,
			MaxAttempts:     5,
			MinHeavyTiles:   8,
			EdgeMargin:      16,
			Collectibles:    24,
			CollectibleLift: 40,
			GroundLift:      0,
			AirLift:         180,
			CollectibleKinds: map[string]int{
				"fish":   60,
				"star":   8,
				"speed":  10,
				"time":   8,
				"life":   4,
				"magnet": 10,
			},
		},
		Enemies: EnemiesConfig{
			Human: PatrolConfig{
				Speed:      60,
				StallSpeed: 10,
				LookAhead:  8,
				HalfWidth:  16,
				HalfHeight: 20,
			},
			Crab: PatrolConfig{
				Speed:      40,
				LookAhead:  6,
				HalfWidth:  14,
				HalfHeight: 10,
				HopChance:  0.01,
				HopSpeed:   250,
			},
			Hawk: DiverConfig{
				HalfWidth:      20,
				HalfHeight:     14,
				DetectRange:    300,
				PatrolSpeed:    80,
				PatrolRange:    200,
				AscendSpeed:    150,
				AscendDuration: 800 * time.Millisecond,
				DiveSpeed:      400,
				DiveTimeout:    2000 * time.Millisecond,
				MaxDiveDepth:   400,
				RestDuration:   3000 * time.Millisecond,
			},
			Orca: DiverConfig{
				HalfWidth:      32,
				HalfHeight:     16,
				DetectRange:    280,
				PatrolSpeed:    70,
				PatrolRange:    200,
				AscendSpeed:    120,
				AscendDuration: 800 * time.Millisecond,
				DiveSpeed:      380,
				DiveTimeout:    2000 * time.Millisecond,
				MaxDiveDepth:   400,
				RestDuration:   3000 * time.Millisecond,
				Swims:          true,
			},
			PolarBear: BearConfig{
				HalfWidth:         40,
				HalfHeight:        28,
				PatrolSpeed:       50,
				StallSpeed:        10,
				EdgeLookAhead:     10,
				DetectX:           300,
				DetectY:           100,
				EscapeRange:       450,
				StandUpDuration:   200 * time.Millisecond,
				StandUpScale:      1.2,
				AlertDuration:     1000 * time.Millisecond,
				ChargeSpeed:       350,
				MaxChargeDistance: 500,
				CloseToTarget:     60,
				HitDistance:       40,
				ChargeLean:        0.2,
				CooldownDuration:  2000 * time.Millisecond,
			},
		},
		Player: PlayerConfig{
			Width:           40,
			Height:          28,
			RunSpeed:        240,
			JumpSpeed:       620,
			Gravity:         1200,
			MaxFallSpeed:    900,
			Lives:           3,
			GrowStep:        0.1,
			MinScale:        1.0,
			MaxScale:        1.5,
			Invulnerability: 1500 * time.Millisecond,
			PowerUpDuration: 5 * time.Second,
			SpeedBoost:      1.5,
			MagnetRadius:    150,
			TimeLimit:       120 * time.Second,
			TimeBonus:       15 * time.Second,
		},
		Difficulty: DifficultyConfig{
			Progression: true,
			MinEnemies:  8,
			MaxEnemies:  15,
			LevelCap:    10,
			MaxLevel:    99,
		},
		Themes: []ThemeConfig{
			{Name: "beach", Title: "Sunny Beach", Roster: []string{"human", "hawk", "crab"}},
			{Name: "city", Title: "Seaside City", Roster: []string{"human", "hawk"}},
			{Name: "ocean", Title: "Open Ocean", Roster: []string{"orca", "crab"}},
			{Name: "harbor", Title: "Busy Harbor", Roster: []string{"human", "crab", "orca"}},
			{Name: "arctic", Title: "Arctic Ice", Roster: []string{"polarbear", "hawk"}, Ice: true},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSealYAML
}
