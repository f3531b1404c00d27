package runner

import (
	"fmt"

	"github.com/vovakirdan/lanes/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	LaneChar     = '┊'
)

// grassTile is repeated over the whole screen as the background.
var grassTile = [...]string{
	" ,   '  ",
	"    .   ",
	"'    ,  ",
	"  .     ",
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	view := core.Viewport{
		WorldW:  g.cfg.World.Width,
		WorldH:  g.cfg.World.Height,
		ScreenW: dst.Width(),
		ScreenH: dst.Height(),
	}

	drawGrass(dst)

	// Lane markings
	for _, x := range g.lanes.Edges(g.cfg.Player.Size) {
		dst.DrawVLine(view.ProjectX(x), 0, dst.Height(), LaneChar, core.ColorLane)
	}

	for _, o := range g.field.Obstacles() {
		dst.DrawRect(view.Project(o.Bounds()), ObstacleChar, core.ColorObstacle)
	}

	dst.DrawRect(view.Project(g.player.Bounds()), PlayerChar, core.ColorPlayer)

	// Draw HUD
	scoreText := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawText(2, 0, scoreText, core.ColorHUD)

	titleText := fmt.Sprintf(" %s ", g.title)
	dst.DrawText(dst.Width()-len(titleText)-2, 0, titleText, core.ColorHUD)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.phase == GameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

func drawGrass(dst *core.Screen) {
	for y := 0; y < dst.Height(); y++ {
		row := grassTile[y%len(grassTile)]
		for x := 0; x < dst.Width(); x++ {
			dst.SetColored(x, y, rune(row[x%len(row)]), core.ColorGrass)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorText)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title, core.ColorText)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle, core.ColorText)
}
