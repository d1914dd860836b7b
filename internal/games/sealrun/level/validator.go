package level

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seal-run/internal/config"
)

// GapKind classifies the transition between two consecutive platforms.
type GapKind int

const (
	GapOK      GapKind = iota // Jumpable
	GapOverlap                // Horizontally overlapping, treated as safe
	GapTooWide                // Horizontal distance exceeds the jump limit
	GapTooHigh                // Next top is too far above
	GapTooLow                 // Next top is too far below
)

// String returns a short name for logs.
func (k GapKind) String() string {
	switch k {
	case GapOK:
		return "ok"
	case GapOverlap:
		return "overlap"
	case GapTooWide:
		return "too-wide"
	case GapTooHigh:
		return "too-high"
	case GapTooLow:
		return "too-low"
	default:
		return "unknown"
	}
}

// ValidationResult summarizes a validation pass.
type ValidationResult struct {
	Bridges int
	CapHit  bool // Bridge cap reached; some gaps may remain unjumpable
}

// Validator walks the static platforms left to right and inserts bridges
// until every consecutive pair is traversable or the bridge cap is reached.
type Validator struct {
	cfg    config.LevelConfig
	rng    *rand.Rand
	logger *log.Logger
	nextID int
}

// NewValidator creates a validator. Bridge IDs start at firstID.
func NewValidator(cfg config.LevelConfig, rng *rand.Rand, logger *log.Logger, firstID int) *Validator {
	return &Validator{cfg: cfg, rng: rng, logger: logger, nextID: firstID}
}

// Classify reports whether b can be reached from a. Vertical limits compare
// top edges and take precedence over the horizontal limit.
func (v *Validator) Classify(a, b *Platform) GapKind {
	gap := HorizontalGap(a, b)
	if gap < 0 {
		return GapOverlap
	}
	switch rise := a.Top() - b.Top(); {
	case rise > v.cfg.MaxJumpUp:
		return GapTooHigh
	case -rise > v.cfg.MaxJumpDown:
		return GapTooLow
	case gap > v.cfg.MaxJumpDistance:
		return GapTooWide
	}
	return GapOK
}

// Validate returns platforms with bridges added, sorted by X. Moving
// platforms are carried through unchanged and never validated.
func (v *Validator) Validate(platforms []*Platform) ([]*Platform, ValidationResult) {
	var res ValidationResult
	var moving []*Platform
	static := make([]*Platform, 0, len(platforms)+v.cfg.MaxBridges)
	for _, p := range platforms {
		if p.Motion != nil {
			moving = append(moving, p)
			continue
		}
		static = append(static, p)
	}
	SortByX(static)

	i := 0
	for i+1 < len(static) {
		a, b := static[i], static[i+1]
		kind := v.Classify(a, b)
		if kind == GapOK || kind == GapOverlap {
			i++
			continue
		}
		if res.Bridges >= v.cfg.MaxBridges {
			res.CapHit = true
			v.logger.Warn("bridge cap reached, level may contain unreachable gaps",
				"cap", v.cfg.MaxBridges, "at_x", a.Right(), "gap", kind.String())
			break
		}

		bridge := v.bridgeFor(a, b, kind)
		res.Bridges++
		v.logger.Debug("inserted bridge", "gap", kind.String(), "x", bridge.X, "y", bridge.Y)

		// The bridge center lies strictly between a and b, so inserting at
		// i+1 keeps the slice sorted; re-check a against the bridge next.
		static = append(static, nil)
		copy(static[i+2:], static[i+1:])
		static[i+1] = bridge
	}

	out := append(static, moving...)
	SortByX(out)
	return out, res
}

// bridgeFor builds the bridge for an unjumpable pair. Vertical gaps get a
// bridge stepping part of the vertical limit from a; horizontal gaps get one
// at the midpoint with a small vertical jitter.
func (v *Validator) bridgeFor(a, b *Platform, kind GapKind) *Platform {
	x := (a.Right() + b.Left()) / 2
	var y float64
	switch kind {
	case GapTooHigh:
		y = a.Y - v.cfg.VerticalBridge*v.cfg.MaxJumpUp
	case GapTooLow:
		y = a.Y + v.cfg.VerticalBridge*v.cfg.MaxJumpDown
	default:
		jitter := (v.rng.Float64()*2 - 1) * v.cfg.BridgeJitter
		y = min(max((a.Y+b.Y)/2+jitter, v.cfg.MinY), v.cfg.GroundY)
	}

	p := &Platform{
		ID:     v.nextID,
		X:      x,
		Y:      y,
		Width:  float64(v.cfg.BridgeWidthTiles) * v.cfg.TileSize,
		Height: v.cfg.PlatformHeight,
		Kind:   KindBridge,
		IsIce:  a.IsIce || b.IsIce,
	}
	v.nextID++
	return p
}
