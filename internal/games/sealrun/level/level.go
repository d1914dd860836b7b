package level

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seal-run/internal/config"
	"github.com/vovakirdan/seal-run/internal/core"
)

// Report summarizes how a level build went.
type Report struct {
	Platforms             int
	Bridges               int
	CapHit                bool
	EnemiesRequested      int
	EnemiesSpawned        int
	CollectiblesRequested int
	CollectiblesSpawned   int
}

// Level is a fully built, populated level.
type Level struct {
	Number int
	Seed   int64
	Theme  config.ThemeConfig

	Platforms    []*Platform // Sorted by X
	Enemies      []EnemySpawn
	Collectibles []*Collectible

	Start core.Vec // Where the player's feet go
	Goal  *Platform
	Width float64

	Report Report
}

// Builder runs the level pipeline: generate, validate, populate. Each stage
// finishes before the next begins.
type Builder struct {
	cfg    config.SealConfig
	diff   *config.DifficultyManager
	logger *log.Logger
}

// NewBuilder creates a builder. A nil logger discards output.
func NewBuilder(cfg config.SealConfig, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Builder{
		cfg:    cfg,
		diff:   config.NewDifficultyManager(cfg.Difficulty, cfg.Level),
		logger: logger,
	}
}

// Build creates level number with the theme it cycles to.
func (b *Builder) Build(number int, seed int64) *Level {
	return b.BuildTheme(number, seed, b.cfg.ThemeForLevel(number))
}

// BuildTheme creates level number in an explicit theme. The same inputs always
// produce the same level.
func (b *Builder) BuildTheme(number int, seed int64, theme config.ThemeConfig) *Level {
	rng := rand.New(rand.NewSource(seed))

	gen := NewGenerator(b.cfg.Level, rng)
	raw := gen.Generate(b.diff.PlatformCount(number), theme)

	val := NewValidator(b.cfg.Level, rng, b.logger, gen.NextID())
	platforms, vres := val.Validate(raw)

	spawn := NewSpawnContext(b.cfg.Spawn, b.cfg.Level.TileSize, rng)
	collectibles := spawn.SpawnCollectibles(platforms, b.cfg.Spawn.Collectibles)
	enemyCount := b.diff.EnemyCount(number)
	enemies := spawn.SpawnEnemies(platforms, enemyCount, ParseRoster(theme.Roster), b.liftFor)

	lvl := &Level{
		Number:       number,
		Seed:         seed,
		Theme:        theme,
		Platforms:    platforms,
		Enemies:      enemies,
		Collectibles: collectibles,
		Width:        b.cfg.Level.Width,
		Report: Report{
			Platforms:             len(platforms),
			Bridges:               vres.Bridges,
			CapHit:                vres.CapHit,
			EnemiesRequested:      enemyCount,
			EnemiesSpawned:        len(enemies),
			CollectiblesRequested: b.cfg.Spawn.Collectibles,
			CollectiblesSpawned:   len(collectibles),
		},
	}
	for _, p := range platforms {
		switch p.Kind {
		case KindStart:
			lvl.Start = core.V(p.X, p.Top())
		case KindGoal:
			lvl.Goal = p
		}
	}

	if lvl.Report.EnemiesSpawned < enemyCount {
		b.logger.Warn("spawn shortfall", "level", number, "requested", enemyCount, "spawned", len(enemies))
	}
	b.logger.Info("level built",
		"level", number,
		"theme", theme.Name,
		"platforms", lvl.Report.Platforms,
		"bridges", lvl.Report.Bridges,
		"enemies", lvl.Report.EnemiesSpawned,
	)
	return lvl
}

// liftFor returns how far above its platform an enemy type is placed: body
// half height for walkers, a hover height for divers.
func (b *Builder) liftFor(t EntityType) float64 {
	e := b.cfg.Enemies
	switch t {
	case Hawk, Orca:
		return b.cfg.Spawn.AirLift
	case Human:
		return e.Human.HalfHeight + b.cfg.Spawn.GroundLift
	case Crab:
		return e.Crab.HalfHeight + b.cfg.Spawn.GroundLift
	case PolarBear:
		return e.PolarBear.HalfHeight + b.cfg.Spawn.GroundLift
	default:
		return b.cfg.Spawn.GroundLift
	}
}
