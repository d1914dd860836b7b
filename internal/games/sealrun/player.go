package sealrun

import (
	"github.com/vovakirdan/seal-run/internal/config"
	"github.com/vovakirdan/seal-run/internal/core"
	"github.com/vovakirdan/seal-run/internal/games/sealrun/physics"
)

// Seal is the player. It grows by eating fish and shrinks when hurt.
type Seal struct {
	Body   physics.Body
	Scale  float64
	Run    float64 // -1, 0 or +1; terminal keys have no release so the run latches
	Facing float64

	Invulnerable bool
	Boosted      bool
	Magnet       bool

	cfg config.PlayerConfig
}

func newSeal(cfg config.PlayerConfig, feet core.Vec) *Seal {
	s := &Seal{cfg: cfg, Facing: 1}
	s.Body.MotionEnabled = true
	s.Body.GravityEnabled = true
	s.setScale(cfg.MinScale)
	s.placeFeet(feet)
	return s
}

// placeFeet puts the bottom center of the seal at feet and stops it.
func (s *Seal) placeFeet(feet core.Vec) {
	s.Body.Pos = core.V(feet.X, feet.Y-s.Body.HalfH)
	s.Body.Vel = core.Vec{}
	s.Run = 0
}

// setScale resizes the body keeping the feet where they are.
func (s *Seal) setScale(scale float64) {
	feet := s.Body.Bottom()
	s.Scale = core.ClampF(scale, s.cfg.MinScale, s.cfg.MaxScale)
	s.Body.HalfW = s.cfg.Width / 2 * s.Scale
	s.Body.HalfH = s.cfg.Height / 2 * s.Scale
	if feet != 0 {
		s.Body.Pos.Y = feet - s.Body.HalfH
	}
}

// Grow makes the seal one step bigger, up to MaxScale.
func (s *Seal) Grow() {
	s.setScale(s.Scale + s.cfg.GrowStep)
}

// Shrink makes the seal one step smaller. It reports false when the seal is
// already at its smallest, meaning the hit costs a life instead.
func (s *Seal) Shrink() bool {
	if s.Scale <= s.cfg.MinScale+1e-9 {
		return false
	}
	s.setScale(s.Scale - s.cfg.GrowStep)
	return true
}

// Feet returns the bottom center.
func (s *Seal) Feet() core.Vec {
	return core.V(s.Body.Pos.X, s.Body.Bottom())
}

// applyInput latches the run direction and starts a jump from the ground.
func (s *Seal) applyInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		s.Run = -1
	case in.Has(core.ActionRight):
		s.Run = 1
	case in.Has(core.ActionDuck):
		s.Run = 0
	}
	if s.Run != 0 {
		s.Facing = s.Run
	}

	speed := s.cfg.RunSpeed
	if s.Boosted {
		speed *= s.cfg.SpeedBoost
	}
	s.Body.Vel.X = s.Run * speed

	if in.Has(core.ActionJump) && s.Body.Grounded {
		s.Body.Vel.Y = -s.cfg.JumpSpeed
	}
}

// bounce is the small hop after stomping an enemy.
func (s *Seal) bounce() {
	s.Body.Vel.Y = -s.cfg.JumpSpeed * 0.6
}
