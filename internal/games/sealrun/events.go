package sealrun

import "github.com/vovakirdan/seal-run/internal/games/sealrun/level"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventEnemyDefeated EventKind = iota
	EventPlayerDamaged
	EventLifeLost
	EventCollected
	EventIceBroken
	EventLevelComplete
	EventGameOver
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventEnemyDefeated:
		return "enemy-defeated"
	case EventPlayerDamaged:
		return "player-damaged"
	case EventLifeLost:
		return "life-lost"
	case EventCollected:
		return "collected"
	case EventIceBroken:
		return "ice-broken"
	case EventLevelComplete:
		return "level-complete"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is emitted by Step for scoring and presentation layers.
type Event struct {
	Kind   EventKind
	Entity level.EntityType // Enemy or collectible involved, if any
	Level  int
}

// Scoring values.
const (
	ScoreStomp       = 100
	ScoreFish        = 10
	ScoreStar        = 50
	ScoreLevel       = 500
	ScorePerSecond   = 10 // Time bonus per second left at the goal
	defeatedLingerMs = 300
)
