package enemy

import (
	"math"
	"time"

	"github.com/vovakirdan/seal-run/internal/config"
	"github.com/vovakirdan/seal-run/internal/core"
)

// Diver is the aerial attack machine used by hawks and orcas:
// PATROL -> ASCEND -> DIVE -> TIRED -> PATROL.
type Diver struct {
	cfg config.DiverConfig

	state     State
	timeIn    time.Duration
	canCharge bool
	dir       float64

	anchored bool
	startX   float64
	baseline float64 // Hover height the dive depth is measured from

	target  core.Vec // Locked when the ascent starts
	diveVel core.Vec
}

// NewDiver creates a diver in PATROL.
func NewDiver(cfg config.DiverConfig) *Diver {
	d := &Diver{cfg: cfg}
	d.Reset()
	return d
}

// State returns the current state.
func (d *Diver) State() State { return d.state }

// Target returns the locked dive target.
func (d *Diver) Target() core.Vec { return d.target }

// Reset returns to PATROL and forgets the anchor, target and timers.
func (d *Diver) Reset() {
	d.state = StatePatrol
	d.timeIn = 0
	d.canCharge = true
	d.dir = 1
	d.anchored = false
	d.target = core.Vec{}
	d.diveVel = core.Vec{}
}

func (d *Diver) enter(s State) {
	d.state = s
	d.timeIn = 0
}

// Update advances the machine by dt.
func (d *Diver) Update(s Sense, dt time.Duration) Command {
	if !d.anchored {
		d.startX = s.Self.Pos.X
		d.baseline = s.Self.Pos.Y
		d.anchored = true
	}

	switch d.state {
	case StatePatrol:
		return d.patrol(s)

	case StateAscend:
		d.timeIn += dt
		if d.timeIn >= d.cfg.AscendDuration {
			d.startDive(s.Self.Pos)
			return d.diveCommand()
		}
		return d.ascendCommand()

	case StateDive:
		d.timeIn += dt
		if d.diveOver(s) {
			d.enter(StateTired)
			return Command{Frozen: true, FlipX: d.diveVel.X < 0, Scale: 1, Indicator: IndicatorSleep}
		}
		return d.diveCommand()

	case StateTired:
		d.timeIn += dt
		if d.timeIn >= d.cfg.RestDuration {
			d.enter(StatePatrol)
			d.canCharge = true
			return d.patrolCommand()
		}
		return Command{Frozen: true, FlipX: d.dir < 0, Scale: 1, Indicator: IndicatorSleep}
	}
	return d.patrolCommand()
}

func (d *Diver) patrol(s Sense) Command {
	if offset := s.Self.Pos.X - d.startX; math.Abs(offset) > d.cfg.PatrolRange {
		d.dir = -core.Sign(offset)
	}

	if d.canCharge && s.PlayerDistance() < d.cfg.DetectRange {
		d.enter(StateAscend)
		d.canCharge = false
		d.target = s.Player
		d.dir = s.PlayerSide()
		return d.ascendCommand()
	}
	return d.patrolCommand()
}

func (d *Diver) startDive(from core.Vec) {
	d.enter(StateDive)
	delta := d.target.Sub(from)
	if l := delta.Len(); l > 0 {
		d.diveVel = delta.Scale(d.cfg.DiveSpeed / l)
	} else {
		d.diveVel = core.V(0, d.cfg.DiveSpeed)
	}
}

// diveOver reports whether the dive ends this frame: timeout, landing, or
// straying too far from the hover baseline.
func (d *Diver) diveOver(s Sense) bool {
	if d.timeIn >= d.cfg.DiveTimeout || s.Self.Grounded {
		return true
	}
	if s.Self.Pos.Y-d.baseline > d.cfg.MaxDiveDepth {
		return true
	}
	return d.cfg.Swims && d.baseline-s.Self.Pos.Y > d.cfg.MaxDiveDepth
}

func (d *Diver) patrolCommand() Command {
	return Command{Velocity: core.V(d.dir*d.cfg.PatrolSpeed, 0), FlipX: d.dir < 0, Scale: 1}
}

func (d *Diver) ascendCommand() Command {
	return Command{Velocity: core.V(0, -d.cfg.AscendSpeed), FlipX: d.dir < 0, Scale: 1}
}

func (d *Diver) diveCommand() Command {
	return Command{Velocity: d.diveVel, FlipX: d.diveVel.X < 0, Scale: 1, Tint: core.ColorBrightRed}
}
