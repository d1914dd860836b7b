package physics

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/seal-run/internal/core"
	"github.com/vovakirdan/seal-run/internal/games/sealrun/level"
)

const frame = time.Second / 60

func floor(x, top, width float64) *level.Platform {
	return &level.Platform{X: x, Y: top + 16, Width: width, Height: 32, Kind: level.KindNormal}
}

func box(pos core.Vec) Body {
	return Body{Pos: pos, HalfW: 10, HalfH: 10, MotionEnabled: true, GravityEnabled: true}
}

func TestBodyLandsOnPlatform(t *testing.T) {
	b := box(core.V(100, 560))
	platforms := []*level.Platform{floor(100, 600, 400)}

	for i := 0; i < 60; i++ {
		b.Step(frame, platforms, 1200, 900)
	}

	if !b.Grounded {
		t.Fatal("body should rest on the platform")
	}
	if math.Abs(b.Bottom()-600) > 0.5 {
		t.Errorf("Bottom() = %.2f, want about 600", b.Bottom())
	}
	if b.Vel.Y != 0 {
		t.Errorf("landing should stop the fall, vy = %.2f", b.Vel.Y)
	}
}

func TestBodyFallsThroughBrokenPlatform(t *testing.T) {
	b := box(core.V(100, 560))
	ice := floor(100, 600, 400)
	ice.Broken = true

	for i := 0; i < 30; i++ {
		b.Step(frame, []*level.Platform{ice}, 1200, 900)
	}

	if b.Grounded || b.Bottom() <= 600 {
		t.Errorf("broken platform should not hold the body: bottom=%.2f grounded=%v", b.Bottom(), b.Grounded)
	}
}

func TestBodyStopsAtWall(t *testing.T) {
	b := box(core.V(100, 580))
	b.GravityEnabled = false
	b.Vel = core.V(300, 0)
	wall := &level.Platform{X: 200, Y: 560, Width: 40, Height: 200, Kind: level.KindNormal}

	blocked := false
	for i := 0; i < 30; i++ {
		b.Step(frame, []*level.Platform{wall}, 1200, 900)
		if b.Blocked(1) {
			blocked = true
			if b.Blocked(-1) {
				t.Error("only the right side should be blocked")
			}
			break
		}
	}

	if !blocked {
		t.Fatal("body never reported the wall")
	}
	if b.Pos.X+b.HalfW > wall.Left()+1e-6 {
		t.Errorf("body pushed into the wall at x=%.2f", b.Pos.X)
	}
	if b.Vel.X != 0 {
		t.Errorf("wall should stop horizontal motion, vx = %.2f", b.Vel.X)
	}
}

func TestFrozenBodyStaysPut(t *testing.T) {
	b := box(core.V(100, 560))
	b.MotionEnabled = false
	b.Vel = core.V(50, 50)
	b.Grounded = true

	b.Step(frame, []*level.Platform{floor(100, 600, 400)}, 1200, 900)

	if b.Pos != core.V(100, 560) {
		t.Errorf("frozen body moved to %v", b.Pos)
	}
	if b.Grounded {
		t.Error("contact flags should refresh even when frozen")
	}
}
