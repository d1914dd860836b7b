package enemy

import (
	"github.com/vovakirdan/seal-run/internal/core"
	"github.com/vovakirdan/seal-run/internal/games/sealrun/level"
	"github.com/vovakirdan/seal-run/internal/games/sealrun/physics"
)

// probeDepth is how far below the feet the ground probe reaches.
const probeDepth = 8

// Sense is what a behavior sees on one frame. Platforms are read-only.
type Sense struct {
	Self      physics.Body
	Player    core.Vec
	Platforms []*level.Platform
}

// PlatformAhead reports whether there is ground just past the leading edge
// in direction dir. Broken platforms are ignored.
func (s Sense) PlatformAhead(dir, lookAhead float64) bool {
	x := s.Self.Pos.X + dir*(s.Self.HalfW+lookAhead/2)
	probe := core.BoxAt(x, s.Self.Bottom()+probeDepth/2, lookAhead, probeDepth)
	return level.SolidIn(s.Platforms, probe)
}

// LineOfSight reports whether no active platform blocks the segment from the
// enemy's center to the player.
func (s Sense) LineOfSight() bool {
	return !level.LineBlocked(s.Platforms, s.Self.Pos, s.Player)
}

// PlayerDistance returns the Euclidean distance to the player.
func (s Sense) PlayerDistance() float64 {
	return core.Dist(s.Self.Pos, s.Player)
}

// PlayerSide returns -1 when the player is left of the enemy, otherwise +1.
func (s Sense) PlayerSide() float64 {
	if s.Player.X < s.Self.Pos.X {
		return -1
	}
	return 1
}
