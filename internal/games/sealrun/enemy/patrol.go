package enemy

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/seal-run/internal/config"
	"github.com/vovakirdan/seal-run/internal/core"
)

// Patrol walks back and forth along its platform. Humans and crabs share it;
// crabs carry an rng for their random hops and no stall check.
type Patrol struct {
	cfg    config.PatrolConfig
	rng    *rand.Rand
	dir    float64
	primed bool // Stall check is skipped until one velocity has been applied
}

// NewPatrol creates a patrol machine. rng may be nil to disable hops.
func NewPatrol(cfg config.PatrolConfig, rng *rand.Rand) *Patrol {
	return &Patrol{cfg: cfg, rng: rng, dir: 1}
}

// State always reports StatePatrol.
func (p *Patrol) State() State { return StatePatrol }

// Direction returns -1 or +1.
func (p *Patrol) Direction() float64 { return p.dir }

// Reset restores the initial direction.
func (p *Patrol) Reset() {
	p.dir = 1
	p.primed = false
}

// Update reverses at edges, walls and stalls, then walks.
func (p *Patrol) Update(s Sense, dt time.Duration) Command {
	if shouldTurn(s, p.dir, p.cfg.LookAhead, p.cfg.StallSpeed, p.primed) {
		p.dir = -p.dir
	}
	p.primed = true

	cmd := Command{
		Velocity: core.V(p.dir*p.cfg.Speed, 0),
		KeepVY:   true,
		Gravity:  true,
		FlipX:    p.dir < 0,
		Scale:    1,
	}
	if p.rng != nil && p.cfg.HopChance > 0 && s.Self.Grounded && p.rng.Float64() < p.cfg.HopChance {
		cmd.Velocity.Y = -p.cfg.HopSpeed
		cmd.KeepVY = false
		cmd.Hop = true
	}
	return cmd
}

// shouldTurn applies the shared patrol reversal rule. Checks only run on the
// ground; a stallSpeed of zero disables the stall check.
func shouldTurn(s Sense, dir, lookAhead, stallSpeed float64, primed bool) bool {
	if !s.Self.Grounded {
		return false
	}
	switch {
	case !s.PlatformAhead(dir, lookAhead):
		return true
	case s.Self.Blocked(dir):
		return true
	case primed && stallSpeed > 0 && math.Abs(s.Self.Vel.X) < stallSpeed:
		return true
	}
	return false
}
