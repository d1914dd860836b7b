package sealrun

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/seal-run/internal/core"
	"github.com/vovakirdan/seal-run/internal/games/sealrun/enemy"
	"github.com/vovakirdan/seal-run/internal/games/sealrun/level"
)

// Visual characters for rendering
const (
	PlatformChar = '█'
	IceChar      = '▓'
	CrackChar    = '░'
	BridgeChar   = '▬'
	GoalChar     = '⚑'
	SealChar     = '●'
	SealFinChar  = '◖'
	SleepChar    = 'z'
	AlertChar    = '!'
)

// hudRows are reserved at the top of the screen.
const hudRows = 1

var enemyGlyph = map[level.EntityType]rune{
	level.Human:     'H',
	level.Hawk:      'V',
	level.Orca:      'W',
	level.Crab:      'X',
	level.PolarBear: 'B',
}

var itemGlyph = map[level.EntityType]rune{
	level.Fish:   '~',
	level.Star:   '*',
	level.Speed:  '»',
	level.Time:   '+',
	level.Life:   '♥',
	level.Magnet: 'U',
}

var themeColor = map[string]core.Color{
	"beach":  core.ColorYellow,
	"city":   core.ColorGray,
	"ocean":  core.ColorBlue,
	"harbor": core.ColorOrange,
	"arctic": core.ColorBrightCyan,
}

// camera maps world pixels to screen cells.
type camera struct {
	x0, cellW, cellH float64
	w, h             int
}

func (g *Game) camera(dst *core.Screen) camera {
	w, h := dst.Width(), dst.Height()
	rows := max(h-hudRows, 1)
	cam := camera{
		cellW: g.cfg.Level.TileSize / 2,
		cellH: g.cfg.Level.Height / float64(rows),
		w:     w,
		h:     h,
	}
	span := float64(w) * cam.cellW
	cam.x0 = core.ClampF(g.seal.Body.Pos.X-span/3, 0, max(g.level.Width-span, 0))
	return cam
}

func (c camera) col(x float64) int {
	return int(math.Floor((x - c.x0) / c.cellW))
}

func (c camera) row(y float64) int {
	return hudRows + int(math.Floor(y/c.cellH))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.level == nil {
		return
	}
	cam := g.camera(dst)

	for _, p := range g.level.Visible(cam.x0, cam.x0+float64(cam.w)*cam.cellW) {
		g.drawPlatform(dst, cam, p)
	}
	for _, c := range g.collectibles {
		if !c.Taken {
			dst.SetColored(cam.col(c.Pos.X), cam.row(c.Pos.Y), itemGlyph[c.Kind], core.ColorBrightYellow)
		}
	}
	for _, e := range g.enemies {
		g.drawEnemy(dst, cam, e)
	}
	g.drawSeal(dst, cam)
	g.drawHUD(dst)

	switch {
	case g.gameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.banner != "":
		g.drawCenteredMessage(dst, fmt.Sprintf("LEVEL %d", g.level.Number), g.banner)
	}
}

func (g *Game) drawPlatform(dst *core.Screen, cam camera, p *level.Platform) {
	x0, x1 := cam.col(p.Left()), cam.col(p.Right())
	y := cam.row(p.Top())

	ch, color := PlatformChar, themeColor[g.level.Theme.Name]
	switch {
	case p.CrackingIce && level.CrackProgress(p, g.cfg.Level.CrackTime) > 0:
		ch, color = CrackChar, core.ColorCyan
	case p.IsIce:
		ch, color = IceChar, core.ColorBrightCyan
	case p.Kind == level.KindBridge:
		ch, color = BridgeChar, core.ColorYellow
	case p.Kind == level.KindMoving:
		color = core.ColorMagenta
	case p.Kind == level.KindGoal:
		color = core.ColorGreen
	}
	dst.DrawHLine(x0, y, x1-x0+1, ch, color)

	if p.Kind == level.KindGoal {
		dst.SetColored((x0+x1)/2, y-1, GoalChar, core.ColorBrightRed)
	}
}

func (g *Game) drawEnemy(dst *core.Screen, cam camera, e *enemy.Enemy) {
	x, y := cam.col(e.Body.Pos.X), cam.row(e.Body.Pos.Y)
	color := core.ColorRed
	switch {
	case !e.Alive:
		color = core.ColorGray
	case e.Last.Tint != core.ColorDefault:
		color = e.Last.Tint
	}
	dst.SetColored(x, y, enemyGlyph[e.Kind], color)

	switch e.Last.Indicator {
	case enemy.IndicatorSleep:
		dst.SetColored(x+1, y-1, SleepChar, core.ColorWhite)
	case enemy.IndicatorAlert:
		dst.SetColored(x, y-1, AlertChar, core.ColorBrightYellow)
	}
}

func (g *Game) drawSeal(dst *core.Screen, cam camera) {
	s := g.seal
	x, y := cam.col(s.Body.Pos.X), cam.row(s.Body.Pos.Y)

	color := core.ColorBrightWhite
	if s.Invulnerable {
		color = core.ColorBrightYellow
	}
	fin := x - 1
	if s.Facing < 0 {
		fin = x + 1
	}
	dst.SetColored(fin, y, SealFinChar, color)
	dst.SetColored(x, y, SealChar, color)
	if s.Scale >= (g.cfg.Player.MinScale+g.cfg.Player.MaxScale)/2 {
		dst.SetColored(x, y-1, SealChar, color)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	secs := int(math.Max(g.timeLeft.Seconds(), 0))
	hud := fmt.Sprintf(" L%d %s  Score: %d  Lives: %s  Time: %d:%02d  Size: x%.1f ",
		g.level.Number, g.level.Theme.Name, g.score,
		strings.Repeat("♥", max(g.lives, 0)), secs/60, secs%60, g.seal.Scale)

	var powers []string
	if g.seal.Boosted {
		powers = append(powers, "SPEED")
	}
	if g.seal.Magnet {
		powers = append(powers, "MAGNET")
	}
	if g.seal.Invulnerable {
		powers = append(powers, "SAFE")
	}
	if len(powers) > 0 {
		hud += "[" + strings.Join(powers, " ") + "]"
	}
	dst.DrawText(0, 0, hud)

	// Progress toward the goal along the right edge of the HUD row.
	if g.level.Goal != nil && dst.Width() > 20 {
		const barW = 10
		done := int(core.ClampF(g.seal.Body.Pos.X/g.level.Goal.X, 0, 1) * barW)
		bar := strings.Repeat("=", done) + strings.Repeat("-", barW-done)
		dst.DrawTextColored(dst.Width()-barW-3, 0, "["+bar+"]", core.ColorGreen)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
