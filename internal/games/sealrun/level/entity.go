package level

import "github.com/vovakirdan/seal-run/internal/core"

// EntityType names anything the spawn engine places: enemy archetypes and
// collectible kinds.
type EntityType string

// Enemy archetypes.
const (
	Human     EntityType = "human"
	Hawk      EntityType = "hawk"
	Orca      EntityType = "orca"
	Crab      EntityType = "crab"
	PolarBear EntityType = "polarbear"
)

// Collectible kinds.
const (
	Fish   EntityType = "fish"
	Star   EntityType = "star"
	Speed  EntityType = "speed"
	Time   EntityType = "time"
	Life   EntityType = "life"
	Magnet EntityType = "magnet"
)

// Heavy reports whether the entity needs the larger separation radius and
// sturdy platforms.
func (t EntityType) Heavy() bool {
	return t == PolarBear
}

// Airborne reports whether the entity hovers above its platform.
func (t EntityType) Airborne() bool {
	return t == Hawk || t == Orca
}

// IsEnemy reports whether t is an enemy archetype.
func (t EntityType) IsEnemy() bool {
	switch t {
	case Human, Hawk, Orca, Crab, PolarBear:
		return true
	}
	return false
}

// ParseRoster converts theme roster names, dropping unknown entries.
func ParseRoster(names []string) []EntityType {
	out := make([]EntityType, 0, len(names))
	for _, n := range names {
		if t := EntityType(n); t.IsEnemy() {
			out = append(out, t)
		}
	}
	return out
}

// EnemySpawn is a placed enemy waiting for the host to instantiate it.
type EnemySpawn struct {
	Kind       EntityType
	Pos        core.Vec
	PlatformID int
	Seed       int64 // Seeds per-enemy randomness (crab hops)
}

// Collectible is a pickup on the level.
type Collectible struct {
	ID    int
	Kind  EntityType
	Pos   core.Vec
	Taken bool
}
