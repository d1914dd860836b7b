// Package config provides YAML-based configuration loading and difficulty
// scaling for Seal Run.
package config

import "time"

// SealConfig contains all tunables for level generation, enemies and the player.
type SealConfig struct {
	Level      LevelConfig      `yaml:"level"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Player     PlayerConfig     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Themes     []ThemeConfig    `yaml:"themes"`
}

// LevelConfig drives the platform generator and the gap validator.
// All distances are world pixels, Y grows downward.
type LevelConfig struct {
	TileSize       float64 `yaml:"tile_size"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	GoalOffset     float64 `yaml:"goal_offset"` // goal X = Width - GoalOffset
	GoalBuffer     float64 `yaml:"goal_buffer"` // main sequence keeps this far from the goal
	PlatformHeight float64 `yaml:"platform_height"`

	BasePlatforms     int `yaml:"base_platforms"`
	PlatformsPerLevel int `yaml:"platforms_per_level"`

	MinGap        float64 `yaml:"min_gap"`
	MaxGap        float64 `yaml:"max_gap"`
	MinWidthTiles int     `yaml:"min_width_tiles"`
	MaxWidthTiles int     `yaml:"max_width_tiles"`

	MaxRise      float64 `yaml:"max_rise"`
	DampenAbove  float64 `yaml:"dampen_above"`
	DampenFactor float64 `yaml:"dampen_factor"`
	MinY         float64 `yaml:"min_y"`
	MaxY         float64 `yaml:"max_y"`

	StartX          float64 `yaml:"start_x"`
	StartY          float64 `yaml:"start_y"`
	StartWidthTiles int     `yaml:"start_width_tiles"`
	GoalWidthTiles  int     `yaml:"goal_width_tiles"`

	GroundY          float64 `yaml:"ground_y"`
	SafetyEvery      float64 `yaml:"safety_every"`
	SafetyWidthTiles int     `yaml:"safety_width_tiles"`

	MovingChance     float64       `yaml:"moving_chance"`
	MovingMinAnchors int           `yaml:"moving_min_anchors"`
	MovingAmplitude  float64       `yaml:"moving_amplitude"`
	MovingPeriod     time.Duration `yaml:"moving_period"`
	MovingWidthTiles int           `yaml:"moving_width_tiles"`
	MovingLift       float64       `yaml:"moving_lift"`

	BridgeWidthTiles int     `yaml:"bridge_width_tiles"`
	MaxJumpDistance  float64 `yaml:"max_jump_distance"`
	MaxJumpUp        float64 `yaml:"max_jump_up"`
	MaxJumpDown      float64 `yaml:"max_jump_down"`
	MaxBridges       int     `yaml:"max_bridges"`
	BridgeJitter     float64 `yaml:"bridge_jitter"`
	VerticalBridge   float64 `yaml:"vertical_bridge"` // share of the vertical limit a bridge climbs

	CrackChance float64       `yaml:"crack_chance"`
	CrackTime   time.Duration `yaml:"crack_time"`
}

// SpawnConfig drives the spawn placement engine.
type SpawnConfig struct {
	DefaultRadius    float64        `yaml:"default_radius"`
	HeavyRadius      float64        `yaml:"heavy_radius"`
	MaxAttempts      int            `yaml:"max_attempts"`
	MinHeavyTiles    int            `yaml:"min_heavy_tiles"`
	EdgeMargin       float64        `yaml:"edge_margin"`
	Collectibles     int            `yaml:"collectibles"`
	CollectibleLift  float64        `yaml:"collectible_lift"`
	GroundLift       float64        `yaml:"ground_lift"`
	AirLift          float64        `yaml:"air_lift"`
	CollectibleKinds map[string]int `yaml:"collectible_kinds"` // kind -> weight
}

// EnemiesConfig holds per-archetype behavior tuning.
type EnemiesConfig struct {
	Human     PatrolConfig `yaml:"human"`
	Crab      PatrolConfig `yaml:"crab"`
	Hawk      DiverConfig  `yaml:"hawk"`
	Orca      DiverConfig  `yaml:"orca"`
	PolarBear BearConfig   `yaml:"polarbear"`
}

// PatrolConfig tunes the ground and sideways patrol machines.
type PatrolConfig struct {
	Speed      float64 `yaml:"speed"`
	StallSpeed float64 `yaml:"stall_speed"` // 0 disables the stall check
	LookAhead  float64 `yaml:"look_ahead"`
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	HopChance  float64 `yaml:"hop_chance"` // per frame
	HopSpeed   float64 `yaml:"hop_speed"`
}

// DiverConfig tunes the aerial dive machine shared by hawks and orcas.
type DiverConfig struct {
	HalfWidth      float64       `yaml:"half_width"`
	HalfHeight     float64       `yaml:"half_height"`
	DetectRange    float64       `yaml:"detect_range"`
	PatrolSpeed    float64       `yaml:"patrol_speed"`
	PatrolRange    float64       `yaml:"patrol_range"`
	AscendSpeed    float64       `yaml:"ascend_speed"`
	AscendDuration time.Duration `yaml:"ascend_duration"`
	DiveSpeed      float64       `yaml:"dive_speed"`
	DiveTimeout    time.Duration `yaml:"dive_timeout"`
	MaxDiveDepth   float64       `yaml:"max_dive_depth"`
	RestDuration   time.Duration `yaml:"rest_duration"`
	Swims          bool          `yaml:"swims"` // dive also ends MaxDiveDepth above the baseline
}

// BearConfig tunes the polar bear alert-charge-cooldown machine.
type BearConfig struct {
	HalfWidth         float64       `yaml:"half_width"`
	HalfHeight        float64       `yaml:"half_height"`
	PatrolSpeed       float64       `yaml:"patrol_speed"`
	StallSpeed        float64       `yaml:"stall_speed"`
	EdgeLookAhead     float64       `yaml:"edge_look_ahead"`
	DetectX           float64       `yaml:"detect_x"`
	DetectY           float64       `yaml:"detect_y"`
	EscapeRange       float64       `yaml:"escape_range"`
	StandUpDuration   time.Duration `yaml:"stand_up_duration"`
	StandUpScale      float64       `yaml:"stand_up_scale"`
	AlertDuration     time.Duration `yaml:"alert_duration"`
	ChargeSpeed       float64       `yaml:"charge_speed"`
	MaxChargeDistance float64       `yaml:"max_charge_distance"`
	CloseToTarget     float64       `yaml:"close_to_target"`
	HitDistance       float64       `yaml:"hit_distance"`
	ChargeLean        float64       `yaml:"charge_lean"` // radians
	CooldownDuration  time.Duration `yaml:"cooldown_duration"`
}

// PlayerConfig defines the seal's movement and power-ups.
type PlayerConfig struct {
	Width           float64       `yaml:"width"`
	Height          float64       `yaml:"height"`
	RunSpeed        float64       `yaml:"run_speed"`
	JumpSpeed       float64       `yaml:"jump_speed"`
	Gravity         float64       `yaml:"gravity"`
	MaxFallSpeed    float64       `yaml:"max_fall_speed"`
	Lives           int           `yaml:"lives"`
	GrowStep        float64       `yaml:"grow_step"`
	MinScale        float64       `yaml:"min_scale"`
	MaxScale        float64       `yaml:"max_scale"`
	Invulnerability time.Duration `yaml:"invulnerability"`
	PowerUpDuration time.Duration `yaml:"power_up_duration"`
	SpeedBoost      float64       `yaml:"speed_boost"`
	MagnetRadius    float64       `yaml:"magnet_radius"`
	TimeLimit       time.Duration `yaml:"time_limit"`
	TimeBonus       time.Duration `yaml:"time_bonus"`
}

// DifficultyConfig defines how levels scale.
type DifficultyConfig struct {
	Progression bool `yaml:"progression"` // false keeps enemy counts at the level-1 value
	MinEnemies  int  `yaml:"min_enemies"`
	MaxEnemies  int  `yaml:"max_enemies"`
	LevelCap    int  `yaml:"level_cap"` // level beyond which enemy count stops growing
	MaxLevel    int  `yaml:"max_level"`
}

// ThemeConfig is a named preset with its eligible enemy roster.
type ThemeConfig struct {
	Name   string   `yaml:"name"`
	Title  string   `yaml:"title"`
	Roster []string `yaml:"roster"`
	Ice    bool     `yaml:"ice"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
