package enemy

import (
	"math"
	"time"

	"github.com/vovakirdan/seal-run/internal/config"
	"github.com/vovakirdan/seal-run/internal/core"
)

// PolarBear patrols until it sees the player, stands up, charges in a locked
// direction and cools down:
// PATROL -> ALERT -> CHARGING -> COOLDOWN -> PATROL.
type PolarBear struct {
	cfg config.BearConfig

	state  State
	timeIn time.Duration
	dir    float64
	primed bool

	chargeDir    float64
	chargeStartX float64
	lastHit      bool
}

// NewPolarBear creates a bear in PATROL facing right.
func NewPolarBear(cfg config.BearConfig) *PolarBear {
	b := &PolarBear{cfg: cfg}
	b.Reset()
	return b
}

// State returns the current state.
func (b *PolarBear) State() State { return b.state }

// LastChargeHit reports whether the most recent charge ended on the player.
func (b *PolarBear) LastChargeHit() bool { return b.lastHit }

// Reset returns to PATROL facing right.
func (b *PolarBear) Reset() {
	b.state = StatePatrol
	b.timeIn = 0
	b.dir = 1
	b.primed = false
	b.chargeDir = 0
	b.lastHit = false
}

func (b *PolarBear) enter(s State) {
	b.state = s
	b.timeIn = 0
	if s == StatePatrol {
		b.primed = false
	}
}

// Update advances the machine by dt.
func (b *PolarBear) Update(s Sense, dt time.Duration) Command {
	switch b.state {
	case StatePatrol:
		return b.patrol(s)

	case StateAlert:
		b.timeIn += dt
		if s.PlayerDistance() > b.cfg.EscapeRange {
			b.enter(StatePatrol)
			return b.patrolCommand()
		}
		if b.timeIn >= b.cfg.AlertDuration {
			b.enter(StateCharging)
			b.chargeDir = s.PlayerSide()
			b.dir = b.chargeDir
			b.chargeStartX = s.Self.Pos.X
			b.lastHit = false
			return b.charge(s)
		}
		return b.alertCommand()

	case StateCharging:
		return b.charge(s)

	case StateCooldown:
		b.timeIn += dt
		if b.timeIn >= b.cfg.CooldownDuration {
			b.enter(StatePatrol)
			return b.patrolCommand()
		}
		return Command{KeepVY: true, Gravity: true, FlipX: b.dir < 0, Scale: 1, Tint: core.ColorGray}
	}
	return b.patrolCommand()
}

func (b *PolarBear) patrol(s Sense) Command {
	if shouldTurn(s, b.dir, b.cfg.EdgeLookAhead, b.cfg.StallSpeed, b.primed) {
		b.dir = -b.dir
	}
	b.primed = true

	if b.spots(s) {
		b.enter(StateAlert)
		return b.alertCommand()
	}
	return b.patrolCommand()
}

// spots reports whether the bear faces the player inside its detection box
// with nothing in between.
func (b *PolarBear) spots(s Sense) bool {
	dx := s.Player.X - s.Self.Pos.X
	dy := s.Player.Y - s.Self.Pos.Y
	facing := dx == 0 || core.Sign(dx) == b.dir
	if !facing || math.Abs(dx) > b.cfg.DetectX || math.Abs(dy) > b.cfg.DetectY {
		return false
	}
	return s.LineOfSight()
}

// charge runs one charging frame, ending in COOLDOWN on a hit, the distance
// limit, a wall, or the platform edge. Close to the player the edge guard is
// relaxed so the bear commits to the last stretch.
func (b *PolarBear) charge(s Sense) Command {
	dist := s.PlayerDistance()
	switch {
	case dist <= b.cfg.HitDistance:
		b.lastHit = true
	case math.Abs(s.Self.Pos.X-b.chargeStartX) > b.cfg.MaxChargeDistance,
		s.Self.Blocked(b.chargeDir),
		dist >= b.cfg.CloseToTarget && s.Self.Grounded && !s.PlatformAhead(b.chargeDir, b.cfg.EdgeLookAhead):
	default:
		return Command{
			Velocity: core.V(b.chargeDir*b.cfg.ChargeSpeed, 0),
			KeepVY:   true,
			Gravity:  true,
			FlipX:    b.chargeDir < 0,
			Rotation: b.chargeDir * b.cfg.ChargeLean,
			Scale:    b.cfg.StandUpScale,
			Tint:     core.ColorBrightRed,
		}
	}

	b.enter(StateCooldown)
	return Command{KeepVY: true, Gravity: true, FlipX: b.dir < 0, Scale: 1, Tint: core.ColorGray, Hit: b.lastHit}
}

func (b *PolarBear) alertCommand() Command {
	cmd := Command{KeepVY: true, Gravity: true, FlipX: b.dir < 0, Scale: b.cfg.StandUpScale}
	if b.cfg.StandUpDuration > 0 && b.timeIn < b.cfg.StandUpDuration {
		t := float64(b.timeIn) / float64(b.cfg.StandUpDuration)
		cmd.Scale = core.Lerp(1, b.cfg.StandUpScale, t)
		return cmd
	}
	cmd.Indicator = IndicatorAlert
	return cmd
}

func (b *PolarBear) patrolCommand() Command {
	return Command{
		Velocity: core.V(b.dir*b.cfg.PatrolSpeed, 0),
		KeepVY:   true,
		Gravity:  true,
		FlipX:    b.dir < 0,
		Scale:    1,
	}
}
