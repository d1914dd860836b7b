package level

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/seal-run/internal/config"
)

// Generator lays out the raw platform set for one level: start, goal, the
// main left-to-right sequence, moving platforms, safety ground and the
// residual bridges that close the final gap to the goal.
type Generator struct {
	cfg    config.LevelConfig
	rng    *rand.Rand
	nextID int
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(cfg config.LevelConfig, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// GoalX returns the goal platform's center X.
func (g *Generator) GoalX() float64 {
	return g.cfg.Width - g.cfg.GoalOffset
}

// Generate produces the platforms for a level with the given target count of
// main-sequence platforms. The result is unordered; callers sort by X.
func (g *Generator) Generate(count int, theme config.ThemeConfig) []*Platform {
	g.nextID = 0
	tile := g.cfg.TileSize

	start := g.newPlatform(g.cfg.StartX, g.cfg.StartY, float64(g.cfg.StartWidthTiles)*tile, KindStart)
	goal := g.newPlatform(g.GoalX(), g.cfg.StartY, float64(g.cfg.GoalWidthTiles)*tile, KindGoal)
	platforms := []*Platform{start, goal}

	last := start
	limit := g.GoalX() - g.cfg.GoalBuffer
	for i := 0; i < count; i++ {
		gap := g.uniform(g.cfg.MinGap, g.cfg.MaxGap)
		width := float64(g.cfg.MinWidthTiles+g.rng.Intn(g.cfg.MaxWidthTiles-g.cfg.MinWidthTiles+1)) * tile
		left := last.Right() + gap
		if left+width > limit {
			break
		}

		dy := g.uniform(-g.cfg.MaxRise, g.cfg.MaxRise)
		if math.Abs(dy) > g.cfg.DampenAbove {
			dy *= g.cfg.DampenFactor
		}
		y := min(max(last.Y+dy, g.cfg.MinY), g.cfg.MaxY)

		p := g.newPlatform(left+width/2, y, width, KindNormal)
		platforms = append(platforms, p)

		if len(platforms) >= g.cfg.MovingMinAnchors && g.rng.Float64() < g.cfg.MovingChance {
			platforms = append(platforms, g.movingAbove(p))
		}
		last = p
	}

	platforms = append(platforms, g.bridgeToGoal(last, goal)...)
	platforms = append(platforms, g.safetyGround(limit)...)

	g.applyTheme(platforms, theme)
	return platforms
}

func (g *Generator) newPlatform(x, y, width float64, kind Kind) *Platform {
	p := &Platform{
		ID:     g.nextID,
		X:      x,
		Y:      y,
		Width:  width,
		Height: g.cfg.PlatformHeight,
		Kind:   kind,
	}
	g.nextID++
	return p
}

// movingAbove places an oscillating platform above its anchor.
func (g *Generator) movingAbove(anchor *Platform) *Platform {
	y := anchor.Y - g.cfg.MovingLift
	p := g.newPlatform(anchor.X, y, float64(g.cfg.MovingWidthTiles)*g.cfg.TileSize, KindMoving)
	p.Motion = &Motion{
		BaseY:     y,
		Amplitude: g.cfg.MovingAmplitude,
		Period:    g.cfg.MovingPeriod,
	}
	return p
}

// bridgeToGoal closes the residual gap between the last main platform and
// the goal with evenly spaced bridges whose Y interpolates between the two.
// No bridge is added when the gap is already within MaxGap.
func (g *Generator) bridgeToGoal(last, goal *Platform) []*Platform {
	gap := HorizontalGap(last, goal)
	if gap <= g.cfg.MaxGap {
		return nil
	}

	bw := float64(g.cfg.BridgeWidthTiles) * g.cfg.TileSize
	n := int(math.Ceil((gap - g.cfg.MaxGap) / (g.cfg.MaxGap + bw)))
	spacing := (gap - float64(n)*bw) / float64(n+1)

	bridges := make([]*Platform, 0, n)
	for k := 1; k <= n; k++ {
		left := last.Right() + float64(k)*spacing + float64(k-1)*bw
		t := float64(k) / float64(n+1)
		y := last.Y + (goal.Y-last.Y)*t
		bridges = append(bridges, g.newPlatform(left+bw/2, y, bw, KindBridge))
	}
	return bridges
}

// safetyGround drops ground-level segments at regular intervals so a missed
// jump does not always end the run.
func (g *Generator) safetyGround(limit float64) []*Platform {
	if g.cfg.SafetyEvery <= 0 {
		return nil
	}
	width := float64(g.cfg.SafetyWidthTiles) * g.cfg.TileSize
	var out []*Platform
	for x := g.cfg.SafetyEvery; x+width/2 <= limit; x += g.cfg.SafetyEvery {
		out = append(out, g.newPlatform(x, g.cfg.GroundY, width, KindSafety))
	}
	return out
}

// applyTheme marks ice platforms. Some main platforms crack under the player.
func (g *Generator) applyTheme(platforms []*Platform, theme config.ThemeConfig) {
	if !theme.Ice {
		return
	}
	for _, p := range platforms {
		if p.Kind == KindStart || p.Kind == KindGoal {
			continue
		}
		p.IsIce = true
		if p.Kind == KindNormal && g.rng.Float64() < g.cfg.CrackChance {
			p.CrackingIce = true
		}
	}
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// NextID returns the ID the next created platform would receive, so later
// passes can continue the numbering.
func (g *Generator) NextID() int {
	return g.nextID
}
