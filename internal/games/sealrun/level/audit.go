package level

import (
	"fmt"

	"github.com/vovakirdan/seal-run/internal/core"
)

// IssueKind classifies a problem found by Audit.
type IssueKind int

const (
	IssueMissingEnd  IssueKind = iota // No start or no goal platform
	IssueGap                          // Consecutive static platforms not jumpable
	IssueCrowded                      // Two spawns closer than their radius
	IssueOnEndpoints                  // Enemy placed on the start or goal platform
)

func (k IssueKind) String() string {
	switch k {
	case IssueMissingEnd:
		return "missing-end"
	case IssueGap:
		return "gap"
	case IssueCrowded:
		return "crowded"
	case IssueOnEndpoints:
		return "on-endpoints"
	default:
		return "unknown"
	}
}

// Issue is one audit finding.
type Issue struct {
	Kind   IssueKind
	Detail string
}

func (i Issue) String() string {
	return i.Kind.String() + ": " + i.Detail
}

// Audit re-checks a built level against the builder's limits: both ends
// exist, every consecutive static pair is jumpable, spawns keep their
// separation, and no enemy sits on the start or goal platform. A level whose
// bridging hit the cap is expected to report gaps.
func (b *Builder) Audit(l *Level) []Issue {
	var issues []Issue

	var start, goal *Platform
	for _, p := range l.Platforms {
		switch p.Kind {
		case KindStart:
			start = p
		case KindGoal:
			goal = p
		}
	}
	if start == nil || goal == nil {
		issues = append(issues, Issue{IssueMissingEnd, fmt.Sprintf("start=%t goal=%t", start != nil, goal != nil)})
	}

	v := NewValidator(b.cfg.Level, nil, b.logger, 0)
	static := Static(l.Platforms)
	for i := 0; i+1 < len(static); i++ {
		a, c := static[i], static[i+1]
		if k := v.Classify(a, c); k != GapOK && k != GapOverlap {
			issues = append(issues, Issue{IssueGap, fmt.Sprintf("%d->%d %s at x=%.0f", a.ID, c.ID, k, a.Right())})
		}
	}

	sc := NewSpawnContext(b.cfg.Spawn, b.cfg.Level.TileSize, nil)
	var placed []Occupied
	for _, e := range l.Enemies {
		placed = append(placed, Occupied{Pos: e.Pos, Type: e.Kind})
		if (start != nil && e.PlatformID == start.ID) || (goal != nil && e.PlatformID == goal.ID) {
			issues = append(issues, Issue{IssueOnEndpoints, fmt.Sprintf("%s on platform %d", e.Kind, e.PlatformID)})
		}
	}
	for _, c := range l.Collectibles {
		placed = append(placed, Occupied{Pos: c.Pos, Type: c.Kind})
	}
	for i := range placed {
		for j := i + 1; j < len(placed); j++ {
			a, c := placed[i], placed[j]
			need := max(sc.Radius(a.Type), sc.Radius(c.Type))
			if d := core.Dist(a.Pos, c.Pos); d < need {
				issues = append(issues, Issue{IssueCrowded, fmt.Sprintf("%s and %s %.1f apart, need %.1f", a.Type, c.Type, d, need)})
			}
		}
	}
	return issues
}
