package level

import (
	"testing"

	"github.com/vovakirdan/seal-run/internal/config"
	"github.com/vovakirdan/seal-run/internal/core"
)

func TestAuditCleanLevels(t *testing.T) {
	b := NewBuilder(config.DefaultSealConfig(), quietLogger())

	for seed := int64(1); seed <= 15; seed++ {
		lvl := b.Build(int(seed%5)+1, seed)
		for _, issue := range b.Audit(lvl) {
			if issue.Kind == IssueGap && lvl.Report.CapHit {
				continue
			}
			t.Errorf("seed %d: %s", seed, issue)
		}
	}
}

func TestAuditFindsProblems(t *testing.T) {
	cfg := config.DefaultSealConfig()
	b := NewBuilder(cfg, quietLogger())

	start := &Platform{ID: 0, X: 300, Y: 600, Width: 300, Height: 20, Kind: KindStart}
	far := &Platform{ID: 1, X: 300 + cfg.Level.MaxJumpDistance*3, Y: 600, Width: 300, Height: 20, Kind: KindNormal}
	lvl := &Level{
		Platforms: []*Platform{start, far},
		Enemies: []EnemySpawn{
			{Kind: Human, Pos: core.V(300, 570), PlatformID: start.ID},
			{Kind: PolarBear, Pos: core.V(far.X, 560), PlatformID: far.ID},
		},
		Collectibles: []*Collectible{
			{Kind: Fish, Pos: core.V(far.X+1, 560)},
		},
	}

	got := map[IssueKind]int{}
	for _, issue := range b.Audit(lvl) {
		got[issue.Kind]++
	}
	want := map[IssueKind]int{
		IssueMissingEnd:  1,
		IssueGap:         1,
		IssueOnEndpoints: 1,
		IssueCrowded:     1,
	}
	for k, n := range want {
		if got[k] != n {
			t.Errorf("%s issues = %d, want %d (all: %v)", k, got[k], n, got)
		}
	}
}
