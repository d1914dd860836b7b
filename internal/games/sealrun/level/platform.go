// Package level generates Seal Run levels: the platform layout, the
// reachability pass that bridges unjumpable gaps, and the placement of
// enemies and collectibles on the result.
package level

import (
	"math"
	"sort"
	"time"

	"github.com/vovakirdan/seal-run/internal/core"
)

// Kind tags why a platform exists.
type Kind int

const (
	KindNormal Kind = iota // Main generated sequence
	KindStart              // Fixed start platform
	KindGoal               // Fixed goal platform
	KindSafety             // Ground fallback inserted every SafetyEvery px
	KindBridge             // Inserted to make a gap traversable
	KindMoving             // Vertically oscillating platform
)

// String returns the kind name used in exports and logs.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindStart:
		return "start"
	case KindGoal:
		return "goal"
	case KindSafety:
		return "safety"
	case KindBridge:
		return "bridge"
	case KindMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// Platform is a solid rectangle positioned by its center.
type Platform struct {
	ID     int
	X, Y   float64 // Center
	Width  float64
	Height float64
	Kind   Kind

	IsIce       bool
	CrackingIce bool
	Broken      bool
	CrackTimer  time.Duration

	Motion *Motion // Non-nil for moving platforms
}

// Box returns the platform's collision box.
func (p *Platform) Box() core.Box {
	return core.BoxAt(p.X, p.Y, p.Width, p.Height)
}

// Left returns the x of the left edge.
func (p *Platform) Left() float64 { return p.X - p.Width/2 }

// Right returns the x of the right edge.
func (p *Platform) Right() float64 { return p.X + p.Width/2 }

// Top returns the y of the walkable surface.
func (p *Platform) Top() float64 { return p.Y - p.Height/2 }

// Tiles returns the platform width in whole tiles.
func (p *Platform) Tiles(tileSize float64) int {
	if tileSize <= 0 {
		return 0
	}
	return int(math.Round(p.Width / tileSize))
}

// Active reports whether the platform still takes part in collisions and sensing.
func (p *Platform) Active() bool {
	return p != nil && !p.Broken
}

// Motion oscillates a platform vertically with a sine ease, yoyo style:
// from BaseY up by Amplitude over Period, then back.
type Motion struct {
	BaseY     float64
	Amplitude float64
	Period    time.Duration
	Elapsed   time.Duration
}

// Offset returns the current upward displacement from BaseY.
func (m *Motion) Offset() float64 {
	if m.Period <= 0 {
		return 0
	}
	cycle := 2 * m.Period
	u := float64(m.Elapsed%cycle) / float64(m.Period)
	if u > 1 {
		u = 2 - u
	}
	eased := (1 - math.Cos(math.Pi*u)) / 2
	return m.Amplitude * eased
}

// Advance moves the oscillation forward and returns the new center Y.
func (m *Motion) Advance(dt time.Duration) float64 {
	m.Elapsed += dt
	return m.BaseY - m.Offset()
}

// SortByX orders platforms by center X, in place.
func SortByX(platforms []*Platform) {
	sort.SliceStable(platforms, func(i, j int) bool {
		return platforms[i].X < platforms[j].X
	})
}

// Static returns the platforms that do not move, preserving order.
func Static(platforms []*Platform) []*Platform {
	out := make([]*Platform, 0, len(platforms))
	for _, p := range platforms {
		if p.Motion == nil {
			out = append(out, p)
		}
	}
	return out
}

// HorizontalGap returns the distance from a's right edge to b's left edge.
// Negative values mean the platforms overlap horizontally.
func HorizontalGap(a, b *Platform) float64 {
	return b.Left() - a.Right()
}
