// Package physics integrates the axis-aligned bodies shared by the seal and
// its enemies.
package physics

import (
	"math"
	"time"

	"github.com/vovakirdan/seal-run/internal/core"
	"github.com/vovakirdan/seal-run/internal/games/sealrun/level"
)

// Body is the minimal physics state integrated for the seal and every enemy.
type Body struct {
	Pos   core.Vec // Center
	Vel   core.Vec
	HalfW float64
	HalfH float64

	GravityEnabled bool
	MotionEnabled  bool

	// Contact flags, refreshed by every Step.
	Grounded     bool
	BlockedLeft  bool
	BlockedRight bool
}

// Box returns the collision box.
func (b *Body) Box() core.Box {
	return core.BoxAt(b.Pos.X, b.Pos.Y, b.HalfW*2, b.HalfH*2)
}

// Bottom returns the y of the feet.
func (b *Body) Bottom() float64 {
	return b.Pos.Y + b.HalfH
}

// Step integrates velocity and resolves overlaps with active platforms along
// the axis of least penetration.
func (b *Body) Step(dt time.Duration, platforms []*level.Platform, gravity, maxFall float64) {
	b.Grounded, b.BlockedLeft, b.BlockedRight = false, false, false
	if !b.MotionEnabled {
		return
	}

	secs := dt.Seconds()
	if b.GravityEnabled {
		b.Vel.Y = min(b.Vel.Y+gravity*secs, maxFall)
	}
	b.Pos = b.Pos.Add(b.Vel.Scale(secs))

	for _, p := range platforms {
		if !p.Active() {
			continue
		}
		pb := p.Box()
		if !b.Box().Overlaps(pb) {
			continue
		}
		b.resolve(pb)
	}
}

func (b *Body) resolve(pb core.Box) {
	box := b.Box()
	overlapX := math.Min(box.Right(), pb.Right()) - math.Max(box.Left(), pb.Left())
	overlapY := math.Min(box.Bottom(), pb.Bottom()) - math.Max(box.Top(), pb.Top())

	if overlapY <= overlapX {
		if b.Pos.Y < pb.Center.Y {
			b.Pos.Y -= overlapY
			if b.Vel.Y > 0 {
				b.Vel.Y = 0
			}
			b.Grounded = true
		} else {
			b.Pos.Y += overlapY
			if b.Vel.Y < 0 {
				b.Vel.Y = 0
			}
		}
		return
	}

	if b.Pos.X < pb.Center.X {
		b.Pos.X -= overlapX
		b.BlockedRight = true
		if b.Vel.X > 0 {
			b.Vel.X = 0
		}
	} else {
		b.Pos.X += overlapX
		b.BlockedLeft = true
		if b.Vel.X < 0 {
			b.Vel.X = 0
		}
	}
}

// Blocked reports whether the side facing dir is against a wall.
func (b *Body) Blocked(dir float64) bool {
	if dir < 0 {
		return b.BlockedLeft
	}
	return b.BlockedRight
}
