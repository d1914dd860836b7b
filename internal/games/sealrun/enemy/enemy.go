// Package enemy holds the per-archetype behavior state machines and the
// entity that couples them to a physics body.
package enemy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/seal-run/internal/config"
	"github.com/vovakirdan/seal-run/internal/core"
	"github.com/vovakirdan/seal-run/internal/games/sealrun/level"
	"github.com/vovakirdan/seal-run/internal/games/sealrun/physics"
)

// State is a behavior state. Patrol machines stay in StatePatrol.
type State int

const (
	StatePatrol State = iota
	StateAscend
	StateDive
	StateTired
	StateAlert
	StateCharging
	StateCooldown
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateAscend:
		return "ascend"
	case StateDive:
		return "dive"
	case StateTired:
		return "tired"
	case StateAlert:
		return "alert"
	case StateCharging:
		return "charging"
	case StateCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Indicator is a floating marker drawn above an enemy.
type Indicator int

const (
	IndicatorNone  Indicator = iota
	IndicatorSleep           // Resting after a dive
	IndicatorAlert           // Bear spotted the player
)

// Command is a behavior's output for one frame.
type Command struct {
	Velocity core.Vec
	KeepVY   bool // Leave vertical velocity to gravity
	Gravity  bool
	Frozen   bool // Physics body fully disabled

	FlipX     bool
	Rotation  float64
	Scale     float64
	Tint      core.Color
	Indicator Indicator

	Hop bool // Crab started a hop this frame
	Hit bool // Charge connected with the player
}

// Behavior is one archetype's state machine. Update consumes the frame delta
// and never reads a clock, so identical inputs give identical outputs.
type Behavior interface {
	Update(s Sense, dt time.Duration) Command
	State() State
	Reset()
}

// World is the per-frame context the host passes to every enemy. The player
// position must already be updated for the frame.
type World struct {
	Player    core.Vec
	Platforms []*level.Platform
	Gravity   float64
	MaxFall   float64
}

// Enemy is a spawned enemy entity.
type Enemy struct {
	ID       int
	Kind     level.EntityType
	Body     physics.Body
	Behavior Behavior
	Alive    bool
	Last     Command
}

// New instantiates an enemy from a level spawn.
func New(id int, spawn level.EnemySpawn, cfg config.EnemiesConfig) (*Enemy, error) {
	e := &Enemy{ID: id, Kind: spawn.Kind, Alive: true}
	e.Body.Pos = spawn.Pos
	e.Body.MotionEnabled = true

	switch spawn.Kind {
	case level.Human:
		e.Body.HalfW, e.Body.HalfH = cfg.Human.HalfWidth, cfg.Human.HalfHeight
		e.Behavior = NewPatrol(cfg.Human, nil)
	case level.Crab:
		e.Body.HalfW, e.Body.HalfH = cfg.Crab.HalfWidth, cfg.Crab.HalfHeight
		e.Behavior = NewPatrol(cfg.Crab, rand.New(rand.NewSource(spawn.Seed)))
	case level.Hawk:
		e.Body.HalfW, e.Body.HalfH = cfg.Hawk.HalfWidth, cfg.Hawk.HalfHeight
		e.Behavior = NewDiver(cfg.Hawk)
	case level.Orca:
		e.Body.HalfW, e.Body.HalfH = cfg.Orca.HalfWidth, cfg.Orca.HalfHeight
		e.Behavior = NewDiver(cfg.Orca)
	case level.PolarBear:
		e.Body.HalfW, e.Body.HalfH = cfg.PolarBear.HalfWidth, cfg.PolarBear.HalfHeight
		e.Behavior = NewPolarBear(cfg.PolarBear)
	default:
		return nil, fmt.Errorf("enemy: unknown kind %q", spawn.Kind)
	}
	e.Body.GravityEnabled = !spawn.Kind.Airborne()
	return e, nil
}

// Update runs the behavior for one frame and integrates the body.
func (e *Enemy) Update(w World, dt time.Duration) Command {
	if !e.Alive {
		return e.Last
	}

	cmd := e.Behavior.Update(Sense{Self: e.Body, Player: w.Player, Platforms: w.Platforms}, dt)

	e.Body.GravityEnabled = cmd.Gravity
	e.Body.MotionEnabled = !cmd.Frozen
	if cmd.Frozen {
		e.Body.Vel = core.Vec{}
	} else {
		vy := cmd.Velocity.Y
		if cmd.KeepVY {
			vy = e.Body.Vel.Y
		}
		e.Body.Vel = core.V(cmd.Velocity.X, vy)
	}
	e.Body.Step(dt, w.Platforms, w.Gravity, w.MaxFall)

	e.Last = cmd
	return cmd
}

// State returns the current behavior state.
func (e *Enemy) State() State {
	return e.Behavior.State()
}

// Box returns the collision box scaled by the current stance.
func (e *Enemy) Box() core.Box {
	scale := e.Last.Scale
	if scale <= 0 {
		scale = 1
	}
	return core.BoxAt(e.Body.Pos.X, e.Body.Pos.Y, e.Body.HalfW*2*scale, e.Body.HalfH*2*scale)
}

// Defeat marks the enemy dead and freezes it in place.
func (e *Enemy) Defeat() {
	e.Alive = false
	e.Body.MotionEnabled = false
	e.Body.Vel = core.Vec{}
}

// OutOfWorld reports whether the enemy fell below the level.
func (e *Enemy) OutOfWorld(height float64) bool {
	return e.Body.Pos.Y-e.Body.HalfH > height
}
