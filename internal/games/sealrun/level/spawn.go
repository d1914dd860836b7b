package level

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/seal-run/internal/config"
	"github.com/vovakirdan/seal-run/internal/core"
)

// Zone is a horizontal slice of a platform's walkable surface.
type Zone struct {
	MinX, MaxX float64
}

// Center returns the zone midpoint.
func (z Zone) Center() float64 { return (z.MinX + z.MaxX) / 2 }

// Occupied is a registered spawn position.
type Occupied struct {
	Pos  core.Vec
	Type EntityType
}

// SpawnContext tracks every position placed during one level build so that
// spawned entities keep their distance from each other. It is discarded once
// the level is populated.
type SpawnContext struct {
	cfg      config.SpawnConfig
	tile     float64
	rng      *rand.Rand
	occupied []Occupied
}

// NewSpawnContext creates an empty context.
func NewSpawnContext(cfg config.SpawnConfig, tileSize float64, rng *rand.Rand) *SpawnContext {
	return &SpawnContext{cfg: cfg, tile: tileSize, rng: rng}
}

// Occupied returns the registered positions in placement order.
func (s *SpawnContext) Occupied() []Occupied {
	return s.occupied
}

// Radius returns the minimum separation an entity type asks for.
func (s *SpawnContext) Radius(t EntityType) float64 {
	if t.Heavy() {
		return s.cfg.HeavyRadius
	}
	return s.cfg.DefaultRadius
}

// IsPositionValid reports whether pos keeps the required distance from
// every registered entity, using the larger of the two radii per pair.
func (s *SpawnContext) IsPositionValid(pos core.Vec, t EntityType) bool {
	r := s.Radius(t)
	for _, o := range s.occupied {
		if core.Dist(pos, o.Pos) < max(r, s.Radius(o.Type)) {
			return false
		}
	}
	return true
}

// Register records pos as taken.
func (s *SpawnContext) Register(pos core.Vec, t EntityType) {
	s.occupied = append(s.occupied, Occupied{Pos: pos, Type: t})
}

// ShouldSkipPlatform reports whether p is unsuitable for t. Heavy entities
// need wide, stable platforms.
func (s *SpawnContext) ShouldSkipPlatform(p *Platform, t EntityType) bool {
	if !p.Active() || p.Motion != nil {
		return true
	}
	if t.Heavy() {
		return p.Tiles(s.tile) < s.cfg.MinHeavyTiles || p.CrackingIce
	}
	return false
}

// Zones splits the usable width of p into 1 to 4 slices; wider platforms and
// heavy entities get more.
func (s *SpawnContext) Zones(p *Platform, t EntityType) []Zone {
	var n int
	switch tiles := p.Tiles(s.tile); {
	case tiles < 6:
		n = 1
	case tiles < 9:
		n = 2
	case tiles < 12:
		n = 3
	default:
		n = 4
	}
	if t.Heavy() {
		n = min(n+1, 4)
	}

	left := p.Left() + s.cfg.EdgeMargin
	right := p.Right() - s.cfg.EdgeMargin
	if right <= left {
		return []Zone{{MinX: p.X, MaxX: p.X}}
	}
	w := (right - left) / float64(n)
	zones := make([]Zone, n)
	for i := range zones {
		zones[i] = Zone{MinX: left + float64(i)*w, MaxX: left + float64(i+1)*w}
	}
	return zones
}

// FindValidSpawnPosition looks for a free spot on p, yOffset above its top.
// Zones are tried in random order with a jittered candidate each, then a
// bounded number of random positions across the platform. A found position is
// registered before it is returned.
func (s *SpawnContext) FindValidSpawnPosition(p *Platform, t EntityType, yOffset float64) (core.Vec, bool) {
	y := p.Top() - yOffset

	zones := s.Zones(p, t)
	s.rng.Shuffle(len(zones), func(i, j int) { zones[i], zones[j] = zones[j], zones[i] })
	for _, z := range zones {
		jitter := (s.rng.Float64()*2 - 1) * (z.MaxX - z.MinX) / 4
		pos := core.V(z.Center()+jitter, y)
		if s.IsPositionValid(pos, t) {
			s.Register(pos, t)
			return pos, true
		}
	}

	usable := max(p.Width-2*s.cfg.EdgeMargin, 0)
	for attempt := 0; attempt < s.cfg.MaxAttempts; attempt++ {
		pos := core.V(p.X+(s.rng.Float64()-0.5)*usable, y)
		if s.IsPositionValid(pos, t) {
			s.Register(pos, t)
			return pos, true
		}
	}
	return core.Vec{}, false
}

// spawnable returns the platforms entities may be placed on: everything but
// the first and last static platforms (start and goal) and moving ones.
func spawnable(sorted []*Platform) []*Platform {
	static := Static(sorted)
	if len(static) <= 2 {
		return nil
	}
	return static[1 : len(static)-1]
}

// nearestFirst returns candidates ordered by distance from x.
func nearestFirst(candidates []*Platform, x float64) []*Platform {
	out := append([]*Platform(nil), candidates...)
	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].X-x) < math.Abs(out[j].X-x)
	})
	return out
}

// targetX spreads count targets evenly across the span of candidates.
func targetX(candidates []*Platform, i, count int) float64 {
	first, last := candidates[0].X, candidates[len(candidates)-1].X
	return first + (last-first)*float64(i+1)/float64(count+1)
}

// SpawnCollectibles places up to count collectibles, weighted by kind.
func (s *SpawnContext) SpawnCollectibles(sorted []*Platform, count int) []*Collectible {
	candidates := spawnable(sorted)
	if len(candidates) == 0 || count <= 0 {
		return nil
	}
	kinds, weights, total := s.collectibleTable()
	if total == 0 {
		return nil
	}

	var out []*Collectible
	for i := 0; i < count; i++ {
		kind := kinds[pickWeighted(s.rng, weights, total)]
		for _, p := range nearestFirst(candidates, targetX(candidates, i, count)) {
			if s.ShouldSkipPlatform(p, kind) {
				continue
			}
			if pos, ok := s.FindValidSpawnPosition(p, kind, s.cfg.CollectibleLift); ok {
				out = append(out, &Collectible{ID: len(out), Kind: kind, Pos: pos})
			}
			break
		}
	}
	return out
}

// SpawnEnemies places up to count enemies drawn uniformly from roster. lift
// gives the height above the platform top for each type.
func (s *SpawnContext) SpawnEnemies(sorted []*Platform, count int, roster []EntityType, lift func(EntityType) float64) []EnemySpawn {
	candidates := spawnable(sorted)
	if len(candidates) == 0 || len(roster) == 0 || count <= 0 {
		return nil
	}

	var out []EnemySpawn
	for i := 0; i < count; i++ {
		kind := roster[s.rng.Intn(len(roster))]
		for _, p := range nearestFirst(candidates, targetX(candidates, i, count)) {
			if s.ShouldSkipPlatform(p, kind) {
				continue
			}
			if pos, ok := s.FindValidSpawnPosition(p, kind, lift(kind)); ok {
				out = append(out, EnemySpawn{Kind: kind, Pos: pos, PlatformID: p.ID, Seed: s.rng.Int63()})
			}
			break
		}
	}
	return out
}

// collectibleTable returns kinds in a stable order with their weights.
func (s *SpawnContext) collectibleTable() ([]EntityType, []int, int) {
	names := make([]string, 0, len(s.cfg.CollectibleKinds))
	for name, w := range s.cfg.CollectibleKinds {
		if w > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	kinds := make([]EntityType, len(names))
	weights := make([]int, len(names))
	total := 0
	for i, name := range names {
		kinds[i] = EntityType(name)
		weights[i] = s.cfg.CollectibleKinds[name]
		total += weights[i]
	}
	return kinds, weights, total
}

func pickWeighted(rng *rand.Rand, weights []int, total int) int {
	r := rng.Intn(total)
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}
