package level

import (
	"time"

	"github.com/vovakirdan/seal-run/internal/core"
)

// AdvanceMotion steps every moving platform.
func (l *Level) AdvanceMotion(dt time.Duration) {
	for _, p := range l.Platforms {
		if p.Motion != nil {
			p.Y = p.Motion.Advance(dt)
		}
	}
}

// CrackIce accumulates stand time on a cracking ice platform and breaks it
// once crackTime is reached. Only the platform passed in is touched. It
// reports whether the platform broke during this call.
func CrackIce(p *Platform, dt, crackTime time.Duration) bool {
	if p == nil || !p.CrackingIce || p.Broken {
		return false
	}
	p.CrackTimer += dt
	if p.CrackTimer >= crackTime {
		p.Broken = true
		return true
	}
	return false
}

// CrackProgress returns how far a cracking platform is toward breaking (0 to 1).
func CrackProgress(p *Platform, crackTime time.Duration) float64 {
	if p == nil || !p.CrackingIce || crackTime <= 0 {
		return 0
	}
	return min(float64(p.CrackTimer)/float64(crackTime), 1)
}

// SolidIn reports whether any active platform overlaps box.
func SolidIn(platforms []*Platform, box core.Box) bool {
	for _, p := range platforms {
		if p.Active() && p.Box().Overlaps(box) {
			return true
		}
	}
	return false
}

// LineBlocked reports whether the segment from a to b passes through any
// active platform.
func LineBlocked(platforms []*Platform, a, b core.Vec) bool {
	for _, p := range platforms {
		if p.Active() && core.SegmentIntersectsBox(a, b, p.Box()) {
			return true
		}
	}
	return false
}

// Find returns the platform with the given ID, or nil.
func (l *Level) Find(id int) *Platform {
	for _, p := range l.Platforms {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Visible returns the platforms that intersect the horizontal span [x0, x1].
func (l *Level) Visible(x0, x1 float64) []*Platform {
	var out []*Platform
	for _, p := range l.Platforms {
		if p.Active() && p.Right() >= x0 && p.Left() <= x1 {
			out = append(out, p)
		}
	}
	return out
}

// supportTolerance is how far the feet may sit from a surface and still
// count as standing on it.
const supportTolerance = 1.0

// Support returns the active platform whose top the box is standing on, or
// nil. When several qualify the one with the most horizontal overlap wins.
func Support(platforms []*Platform, feet core.Box) *Platform {
	var best *Platform
	bestOverlap := 0.0
	for _, p := range platforms {
		if !p.Active() {
			continue
		}
		if d := feet.Bottom() - p.Top(); d < -supportTolerance || d > supportTolerance {
			continue
		}
		overlap := min(feet.Right(), p.Right()) - max(feet.Left(), p.Left())
		if overlap > bestOverlap {
			best, bestOverlap = p, overlap
		}
	}
	return best
}
