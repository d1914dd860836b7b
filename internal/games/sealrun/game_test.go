package sealrun

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/seal-run/internal/config"
	"github.com/vovakirdan/seal-run/internal/core"
	"github.com/vovakirdan/seal-run/internal/games/sealrun/enemy"
	"github.com/vovakirdan/seal-run/internal/games/sealrun/level"
	"github.com/vovakirdan/seal-run/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed, StartLevel: 1}, config.DefaultSealConfig())
	return g
}

// quiet removes enemies and collectibles and lets the seal settle on the
// start platform.
func quiet(t *testing.T, g *Game) {
	t.Helper()
	g.enemies = nil
	g.collectibles = nil
	idle(g, 10)
	if !g.seal.Body.Grounded {
		t.Fatal("seal did not land on the start platform")
	}
}

func idle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("registry.Create(%q) failed: %v", GameID, err)
	}
	if g.Title() != "Seal Run" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 5:
			inputs[i].Set(core.ActionRight)
		case i%40 == 0:
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() (core.GameState, core.Vec) {
		g := newTestGame(t, 12345)
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
		}
		return st, g.seal.Body.Pos
	}

	s1, p1 := run()
	s2, p2 := run()
	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if p1 != p2 {
		t.Errorf("seal positions differ: %+v vs %+v", p1, p2)
	}
}

func TestStartLevel(t *testing.T) {
	g := New()
	g.ResetWithConfig(core.RuntimeConfig{TickRate: 60, Seed: 1, StartLevel: 3}, config.DefaultSealConfig())
	if g.State().Level != 3 {
		t.Errorf("Level = %d, expected 3", g.State().Level)
	}

	g.ResetWithConfig(core.RuntimeConfig{TickRate: 60, Seed: 1, StartLevel: 0}, config.DefaultSealConfig())
	if g.State().Level != 1 {
		t.Errorf("invalid start level should fall back to 1, got %d", g.State().Level)
	}
}

func TestRunLatchesAndStops(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(t, g)

	x := g.seal.Body.Pos.X
	g.Step(input(core.ActionRight))
	idle(g, 5)
	if g.seal.Body.Pos.X <= x {
		t.Fatal("seal should keep running right after a single key press")
	}

	g.Step(input(core.ActionDuck))
	x = g.seal.Body.Pos.X
	idle(g, 5)
	if g.seal.Body.Pos.X != x {
		t.Errorf("seal should stop after duck, moved %.2f", g.seal.Body.Pos.X-x)
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(t, g)

	g.Step(input(core.ActionJump))
	if g.seal.Body.Vel.Y >= 0 {
		t.Fatal("jump should give upward velocity")
	}
	vy := g.seal.Body.Vel.Y
	g.Step(input(core.ActionJump))
	if g.seal.Body.Vel.Y < vy {
		t.Error("second jump in the air should not add velocity")
	}
}

func TestFallingOutLosesLife(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(t, g)
	lives := g.State().Lives

	g.seal.Body.Pos.Y = g.cfg.Level.Height + 100
	g.Step(core.NewInputFrame())

	if g.State().Lives != lives-1 {
		t.Errorf("Lives = %d, expected %d", g.State().Lives, lives-1)
	}
	if !hasEvent(g.Events(), EventLifeLost) {
		t.Error("expected a life-lost event")
	}
	if g.seal.Feet().X != g.level.Start.X {
		t.Errorf("seal respawned at x=%.1f, expected %.1f", g.seal.Feet().X, g.level.Start.X)
	}
	if !g.seal.Invulnerable {
		t.Error("seal should be invulnerable after respawn")
	}
}

func TestGameOverWhenLivesRunOut(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(t, g)

	for i := 0; i < g.cfg.Player.Lives; i++ {
		g.seal.Body.Pos.Y = g.cfg.Level.Height + 100
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}
	if !hasEvent(g.Events(), EventGameOver) {
		t.Error("expected a game-over event")
	}

	before := g.seal.Body.Pos
	g.Step(input(core.ActionRight))
	if g.seal.Body.Pos != before {
		t.Error("seal moved after game over")
	}
}

func TestTimeLimitCostsLife(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(t, g)
	lives := g.State().Lives

	g.timeLeft = g.dt
	g.Step(core.NewInputFrame())
	if g.State().Lives != lives-1 {
		t.Errorf("Lives = %d, expected %d after time ran out", g.State().Lives, lives-1)
	}
	if g.TimeLeft() != g.cfg.Player.TimeLimit {
		t.Errorf("TimeLeft = %v, expected a fresh %v", g.TimeLeft(), g.cfg.Player.TimeLimit)
	}
}

// offLevel is an x past the goal where no platform exists.
func offLevel(g *Game) float64 {
	return g.level.Width + 1000
}

func placeEnemy(t *testing.T, g *Game, kind level.EntityType, pos core.Vec) *enemy.Enemy {
	t.Helper()
	e, err := enemy.New(99, level.EnemySpawn{Kind: kind, Pos: pos}, g.cfg.Enemies)
	if err != nil {
		t.Fatal(err)
	}
	g.enemies = append(g.enemies, e)
	return e
}

func TestStompDefeatsEnemy(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(t, g)

	g.seal.Body.Pos = core.V(offLevel(g), 100)
	g.seal.Body.Vel = core.V(0, 300)
	e := placeEnemy(t, g, level.Human, core.V(offLevel(g), 130))

	g.Step(core.NewInputFrame())
	if e.Alive {
		t.Fatal("stomped enemy should be defeated")
	}
	if !hasEvent(g.Events(), EventEnemyDefeated) {
		t.Error("expected an enemy-defeated event")
	}
	if g.State().Score != ScoreStomp {
		t.Errorf("Score = %d, expected %d", g.State().Score, ScoreStomp)
	}
	if g.seal.Body.Vel.Y >= 0 {
		t.Error("seal should bounce after a stomp")
	}
	if len(g.Enemies()) != 1 {
		t.Fatal("defeated enemy should linger before removal")
	}

	idle(g, 20)
	if len(g.Enemies()) != 0 {
		t.Errorf("defeated enemy should be removed, %d left", len(g.Enemies()))
	}
}

func TestSideHitShrinksThenCostsLife(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(t, g)
	g.seal.Grow()
	grown := g.seal.Scale
	lives := g.State().Lives

	g.seal.Body.Pos = core.V(offLevel(g), 100)
	placeEnemy(t, g, level.Human, core.V(offLevel(g)+10, 100))

	g.Step(core.NewInputFrame())
	if !hasEvent(g.Events(), EventPlayerDamaged) {
		t.Fatal("expected a player-damaged event")
	}
	if g.seal.Scale >= grown {
		t.Errorf("seal should shrink, scale %.2f", g.seal.Scale)
	}
	if g.State().Lives != lives {
		t.Error("a shrink should not cost a life")
	}
	if !g.seal.Invulnerable {
		t.Fatal("seal should be invulnerable after a hit")
	}

	g.Step(core.NewInputFrame())
	if hasEvent(g.Events(), EventPlayerDamaged) {
		t.Error("invulnerable seal took damage")
	}

	// Small seal without invulnerability loses a life on contact.
	g.seal.Invulnerable = false
	g.seal.Body.Pos = core.V(offLevel(g), 100)
	g.enemies = nil
	placeEnemy(t, g, level.Human, core.V(offLevel(g)+10, 100))
	g.Step(core.NewInputFrame())
	if g.State().Lives != lives-1 {
		t.Errorf("Lives = %d, expected %d", g.State().Lives, lives-1)
	}
}

func TestInvulnerabilityExpires(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(t, g)

	g.grantInvulnerability(500 * time.Millisecond)
	idle(g, 29)
	if !g.seal.Invulnerable {
		t.Fatal("invulnerability ended early")
	}
	idle(g, 2)
	if g.seal.Invulnerable {
		t.Error("invulnerability should end after 500ms")
	}
}

func TestCollectibles(t *testing.T) {
	tests := []struct {
		kind  level.EntityType
		check func(t *testing.T, g *Game)
	}{
		{level.Fish, func(t *testing.T, g *Game) {
			if g.score != ScoreFish || g.seal.Scale <= g.cfg.Player.MinScale {
				t.Errorf("fish: score %d scale %.2f", g.score, g.seal.Scale)
			}
		}},
		{level.Star, func(t *testing.T, g *Game) {
			if !g.seal.Invulnerable || g.score != ScoreStar {
				t.Error("star should grant invulnerability and points")
			}
		}},
		{level.Speed, func(t *testing.T, g *Game) {
			if !g.seal.Boosted {
				t.Error("speed should boost")
			}
		}},
		{level.Magnet, func(t *testing.T, g *Game) {
			if !g.seal.Magnet {
				t.Error("magnet should activate")
			}
		}},
		{level.Life, func(t *testing.T, g *Game) {
			if g.lives != g.cfg.Player.Lives+1 {
				t.Errorf("lives = %d", g.lives)
			}
		}},
		{level.Time, func(t *testing.T, g *Game) {
			if g.timeLeft <= g.cfg.Player.TimeLimit {
				t.Errorf("time bonus not applied, %v left", g.timeLeft)
			}
		}},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			g := newTestGame(t, 1)
			quiet(t, g)
			c := &level.Collectible{Kind: tc.kind, Pos: g.seal.Body.Pos}
			g.collectibles = []*level.Collectible{c}

			g.Step(core.NewInputFrame())
			if !c.Taken {
				t.Fatal("collectible under the seal was not taken")
			}
			if !hasEvent(g.Events(), EventCollected) {
				t.Error("expected a collected event")
			}
			tc.check(t, g)
		})
	}
}

func TestPowerUpExpires(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(t, g)
	g.collectibles = []*level.Collectible{{Kind: level.Speed, Pos: g.seal.Body.Pos}}

	g.Step(core.NewInputFrame())
	if !g.seal.Boosted {
		t.Fatal("speed power-up not applied")
	}
	idle(g, int(g.cfg.Player.PowerUpDuration/g.dt)+2)
	if g.seal.Boosted {
		t.Error("speed boost should expire")
	}
}

func TestMagnetWidensReach(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(t, g)
	far := &level.Collectible{Kind: level.Fish, Pos: g.seal.Body.Pos.Add(core.V(100, 0))}
	g.collectibles = []*level.Collectible{far}

	g.Step(core.NewInputFrame())
	if far.Taken {
		t.Fatal("fish 100px away should be out of reach without a magnet")
	}
	g.seal.Magnet = true
	g.Step(core.NewInputFrame())
	if !far.Taken {
		t.Error("magnet should pull in a fish 100px away")
	}
}

func TestCrackingIceBreaks(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(t, g)

	start := level.Support(g.level.Platforms, g.seal.Body.Box())
	if start == nil {
		t.Fatal("seal is not standing on a platform")
	}
	start.CrackingIce = true

	broke := false
	for i := 0; i < 100 && !broke; i++ {
		g.Step(core.NewInputFrame())
		broke = hasEvent(g.Events(), EventIceBroken)
	}
	if !broke || !start.Broken {
		t.Fatal("cracking ice should break after 1500ms of standing")
	}
	idle(g, 3)
	if g.seal.Body.Grounded {
		t.Error("seal should fall through broken ice")
	}
}

func TestReachingGoalAdvancesLevel(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(t, g)

	g.seal.placeFeet(core.V(g.level.Goal.X, g.level.Goal.Top()))
	g.Step(core.NewInputFrame())

	if !hasEvent(g.Events(), EventLevelComplete) {
		t.Fatal("expected a level-complete event")
	}
	if g.State().Level != 2 {
		t.Errorf("Level = %d, expected 2", g.State().Level)
	}
	if g.State().Score < ScoreLevel {
		t.Errorf("Score = %d, expected at least the level bonus", g.State().Score)
	}
	if g.level.Theme.Name != "city" {
		t.Errorf("level 2 theme = %q, expected city", g.level.Theme.Name)
	}
}

func TestLevelChangeCancelsTimers(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(t, g)

	g.seal.Body.Pos = core.V(offLevel(g), 100)
	g.seal.Body.Vel = core.V(0, 300)
	placeEnemy(t, g, level.Human, core.V(offLevel(g), 130))
	g.Step(core.NewInputFrame())
	if g.clock.Pending() < 2 {
		t.Fatalf("expected removal and banner timers, %d pending", g.clock.Pending())
	}

	g.loadLevel(2)
	if g.clock.Pending() != 1 {
		t.Errorf("only the level banner should be pending after a level change, got %d", g.clock.Pending())
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(t, g)

	g.Step(input(core.ActionPause, core.ActionRight))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	x := g.seal.Body.Pos.X
	idle(g, 10)
	if g.seal.Body.Pos.X != x {
		t.Error("seal moved while paused")
	}
	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(t, g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score:") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), SealChar) {
		t.Error("seal not drawn")
	}
	if !strings.ContainsRune(screen.String(), PlatformChar) {
		t.Error("no platforms drawn")
	}
}

func TestUseThemeFixesEveryLevel(t *testing.T) {
	g := New()
	g.UseTheme("arctic")
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3, StartLevel: 2}, config.DefaultSealConfig())

	if g.level.Theme.Name != "arctic" {
		t.Errorf("theme = %q, want arctic", g.level.Theme.Name)
	}

	other := newTestGame(t, 3)
	if other.level.Theme.Name == "arctic" {
		t.Error("UseTheme leaked into another instance")
	}
}
