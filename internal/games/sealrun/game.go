// Package sealrun implements Seal Run, a side-scrolling platformer where a
// seal crosses procedurally generated levels full of themed enemies.
package sealrun

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seal-run/internal/config"
	"github.com/vovakirdan/seal-run/internal/core"
	"github.com/vovakirdan/seal-run/internal/games/sealrun/enemy"
	"github.com/vovakirdan/seal-run/internal/games/sealrun/level"
	"github.com/vovakirdan/seal-run/internal/games/sealrun/sched"
	"github.com/vovakirdan/seal-run/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "seal"

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game logging.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements the Seal Run game logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.SealConfig
	theme   string // Fixed theme name, empty to cycle
	builder *level.Builder
	clock   *sched.Clock
	dt      time.Duration

	level        *level.Level
	seal         *Seal
	enemies      []*enemy.Enemy
	collectibles []*level.Collectible

	score    int
	lives    int
	timeLeft time.Duration
	gameOver bool
	paused   bool
	banner   string

	invulnHandle sched.Handle
	boostHandle  sched.Handle
	magnetHandle sched.Handle

	events []Event
}

// New creates a new Seal Run game instance.
func New() *Game {
	return &Game{}
}

// UseTheme fixes the theme for this instance only. It applies from the next
// Reset.
func (g *Game) UseTheme(name string) {
	g.theme = name
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Seal Run"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.TickDuration()

	cfg, err := config.LoadSeal(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultSealConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig starts a new run with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.SealConfig) {
	g.runtime = runtime
	g.dt = runtime.TickDuration()
	g.cfg = cfg
	g.builder = level.NewBuilder(cfg, logger)
	g.clock = sched.New()

	g.score = 0
	g.lives = cfg.Player.Lives
	g.gameOver = false
	g.paused = false

	start := runtime.StartLevel
	diff := config.NewDifficultyManager(cfg.Difficulty, cfg.Level)
	if err := diff.ValidateLevel(start); err != nil {
		start = 1
	}
	g.loadLevel(start)
}

// LevelSeed derives the seed level n is built from, so each level of a run
// differs but the whole run replays from one seed.
func LevelSeed(seed int64, n int) int64 {
	return seed + int64(n)*104729
}

// loadLevel tears down everything tied to the previous level and builds n.
func (g *Game) loadLevel(n int) {
	g.clock.Reset()
	g.invulnHandle, g.boostHandle, g.magnetHandle = 0, 0, 0

	theme := g.cfg.ThemeForLevel(n)
	if g.theme != "" {
		if th, ok := g.cfg.ThemeByName(g.theme); ok {
			theme = th
		}
	}
	g.level = g.builder.BuildTheme(n, LevelSeed(g.runtime.Seed, n), theme)

	g.enemies = g.enemies[:0]
	for i, sp := range g.level.Enemies {
		e, err := enemy.New(i, sp, g.cfg.Enemies)
		if err != nil {
			logger.Warn("skipping enemy", "err", err)
			continue
		}
		g.enemies = append(g.enemies, e)
	}
	g.collectibles = g.level.Collectibles

	g.seal = newSeal(g.cfg.Player, g.level.Start)
	g.timeLeft = g.cfg.Player.TimeLimit
	g.showBanner(theme.Title, 2*time.Second)
}

// Level returns the level being played.
func (g *Game) Level() *level.Level {
	return g.level
}

// Seal returns the player.
func (g *Game) Seal() *Seal {
	return g.seal
}

// Enemies returns the enemies still in play.
func (g *Game) Enemies() []*enemy.Enemy {
	return g.enemies
}

// Events returns what happened during the last Step.
func (g *Game) Events() []Event {
	return g.events
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.dt
	pc := g.cfg.Player

	// Player first so enemies sense this frame's position.
	g.seal.applyInput(in)
	g.level.AdvanceMotion(dt)
	g.seal.Body.Step(dt, g.level.Platforms, pc.Gravity, pc.MaxFallSpeed)
	g.seal.Body.Pos.X = max(g.seal.Body.Pos.X, g.seal.Body.HalfW)

	if g.seal.Body.Grounded {
		if p := level.Support(g.level.Platforms, g.seal.Body.Box()); p != nil {
			if level.CrackIce(p, dt, g.cfg.Level.CrackTime) {
				g.emit(Event{Kind: EventIceBroken})
				logger.Debug("ice broke", "platform", p.ID)
			}
			if p.Kind == level.KindGoal {
				g.completeLevel()
				return core.StepResult{State: g.State()}
			}
		}
	}

	g.updateEnemies(dt)
	g.collect()

	g.timeLeft -= dt
	switch {
	case g.seal.Body.Pos.Y-g.seal.Body.HalfH > g.cfg.Level.Height:
		g.loseLife()
	case g.timeLeft <= 0:
		g.loseLife()
	}

	g.clock.Advance(dt)
	return core.StepResult{State: g.State()}
}

func (g *Game) updateEnemies(dt time.Duration) {
	w := enemy.World{
		Player:    g.seal.Body.Pos,
		Platforms: g.level.Platforms,
		Gravity:   g.cfg.Player.Gravity,
		MaxFall:   g.cfg.Player.MaxFallSpeed,
	}

	kept := g.enemies[:0]
	for _, e := range g.enemies {
		cmd := e.Update(w, dt)
		if e.OutOfWorld(g.cfg.Level.Height) {
			g.clock.CancelOwner(e)
			continue
		}
		kept = append(kept, e)

		if !e.Alive {
			continue
		}
		if cmd.Hit {
			g.hurt(e.Kind)
			continue
		}
		if !e.Box().Overlaps(g.seal.Body.Box()) {
			continue
		}
		if g.seal.Body.Vel.Y > 0 && g.seal.Body.Bottom() <= e.Body.Pos.Y {
			g.defeat(e)
		} else {
			g.hurt(e.Kind)
		}
	}
	clear(g.enemies[len(kept):])
	g.enemies = kept
}

// defeat handles a stomp. The body lingers briefly before removal.
func (g *Game) defeat(e *enemy.Enemy) {
	e.Defeat()
	g.seal.bounce()
	g.score += ScoreStomp
	g.emit(Event{Kind: EventEnemyDefeated, Entity: e.Kind})

	g.clock.After(e, defeatedLingerMs*time.Millisecond, func() {
		g.removeEnemy(e)
	})
}

func (g *Game) removeEnemy(target *enemy.Enemy) {
	for i, e := range g.enemies {
		if e == target {
			g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
			return
		}
	}
}

// hurt shrinks the seal, or costs a life when it is already small.
func (g *Game) hurt(by level.EntityType) {
	if g.seal.Invulnerable {
		return
	}
	g.emit(Event{Kind: EventPlayerDamaged, Entity: by})
	if !g.seal.Shrink() {
		g.loseLife()
		return
	}
	g.grantInvulnerability(g.cfg.Player.Invulnerability)
}

func (g *Game) loseLife() {
	g.lives--
	g.emit(Event{Kind: EventLifeLost})
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
		g.emit(Event{Kind: EventGameOver, Level: g.level.Number})
		logger.Info("game over", "level", g.level.Number, "score", g.score)
		return
	}

	g.seal.setScale(g.cfg.Player.MinScale)
	g.seal.placeFeet(g.level.Start)
	g.timeLeft = g.cfg.Player.TimeLimit
	g.grantInvulnerability(g.cfg.Player.Invulnerability)
}

func (g *Game) grantInvulnerability(d time.Duration) {
	g.clock.Cancel(g.invulnHandle)
	g.seal.Invulnerable = true
	g.invulnHandle = g.clock.After(g.seal, d, func() {
		g.seal.Invulnerable = false
	})
}

// collect picks up collectibles touching the seal. The magnet widens the reach.
func (g *Game) collect() {
	reach := math.Max(g.seal.Body.HalfW, g.seal.Body.HalfH) + 8
	if g.seal.Magnet {
		reach = g.cfg.Player.MagnetRadius
	}

	pc := g.cfg.Player
	for _, c := range g.collectibles {
		if c.Taken || core.Dist(c.Pos, g.seal.Body.Pos) > reach {
			continue
		}
		c.Taken = true
		g.emit(Event{Kind: EventCollected, Entity: c.Kind})

		switch c.Kind {
		case level.Fish:
			g.score += ScoreFish
			g.seal.Grow()
		case level.Star:
			g.score += ScoreStar
			g.grantInvulnerability(pc.PowerUpDuration)
		case level.Speed:
			g.clock.Cancel(g.boostHandle)
			g.seal.Boosted = true
			g.boostHandle = g.clock.After(g.seal, pc.PowerUpDuration, func() { g.seal.Boosted = false })
		case level.Time:
			g.timeLeft += pc.TimeBonus
		case level.Life:
			g.lives++
		case level.Magnet:
			g.clock.Cancel(g.magnetHandle)
			g.seal.Magnet = true
			g.magnetHandle = g.clock.After(g.seal, pc.PowerUpDuration, func() { g.seal.Magnet = false })
		}
	}
}

func (g *Game) completeLevel() {
	bonus := ScoreLevel + int(g.timeLeft.Seconds())*ScorePerSecond
	g.score += bonus
	done := g.level.Number
	g.emit(Event{Kind: EventLevelComplete, Level: done})
	logger.Info("level complete", "level", done, "bonus", bonus, "score", g.score)

	diff := config.NewDifficultyManager(g.cfg.Difficulty, g.cfg.Level)
	if diff.ValidateLevel(done+1) != nil {
		g.gameOver = true
		g.emit(Event{Kind: EventGameOver, Level: done})
		return
	}
	scale := g.seal.Scale
	g.loadLevel(done + 1)
	g.seal.setScale(scale)
	g.seal.placeFeet(g.level.Start)
}

func (g *Game) showBanner(text string, d time.Duration) {
	g.banner = text
	g.clock.After(nil, d, func() {
		if g.banner == text {
			g.banner = ""
		}
	})
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// TimeLeft returns the remaining level time.
func (g *Game) TimeLeft() time.Duration {
	return g.timeLeft
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	n := 0
	if g.level != nil {
		n = g.level.Number
	}
	return core.GameState{
		Score:    g.score,
		Level:    n,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
