// Package gui is the windowed front end. It draws the game's world-space
// scene with Ebiten instead of the terminal cell buffer.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/lanes/internal/core"
	"github.com/vovakirdan/lanes/internal/registry"
	"github.com/vovakirdan/lanes/internal/storage"
)

// Window size in pixels.
const (
	WindowWidth  = 800
	WindowHeight = 600
)

const (
	fontSize        = 24
	debugGlyphWidth = 6 // ebitenutil debug font cell
	debugLineHeight = 16
)

var (
	grassColor    = color.RGBA{R: 46, G: 125, B: 50, A: 255}
	laneColor     = color.RGBA{R: 220, G: 220, B: 200, A: 160}
	playerColor   = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	obstacleColor = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	shadeColor    = color.RGBA{A: 160}
)

// ErrNoScene is returned for games that cannot describe themselves in world space.
var ErrNoScene = errors.New("gui: game does not provide a scene")

// Options configures the window front end.
type Options struct {
	Background string // Image path; empty means a plain fill
	Font       string // Font path; empty means the built-in debug font
	Store      *storage.Store
	Logger     *log.Logger
}

// App adapts a game to ebiten.Game.
type App struct {
	game       registry.Game
	scene      registry.SceneSource
	runtime    core.RuntimeConfig
	store      *storage.Store
	logger     *log.Logger
	background *ebiten.Image
	face       *text.GoTextFace
	input      core.InputFrame
	state      core.GameState
	saved      bool
}

// New resets the game and loads the window assets.
// A broken background is logged and replaced by a fill; a broken font is an error.
func New(game registry.Game, runtime core.RuntimeConfig, opts Options) (*App, error) {
	scene, ok := game.(registry.SceneSource)
	if !ok {
		return nil, ErrNoScene
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}

	a := &App{
		game:    game,
		scene:   scene,
		runtime: runtime,
		store:   opts.Store,
		logger:  logger,
		input:   core.NewInputFrame(),
	}

	if opts.Background != "" {
		bg, err := loadBackground(opts.Background)
		if err != nil {
			logger.Warn("using plain background", "error", err)
		} else {
			a.background = bg
		}
	}

	if opts.Font != "" {
		face, err := loadFont(opts.Font, fontSize)
		if err != nil {
			return nil, err
		}
		a.face = face
	}

	game.Reset(runtime)
	a.state = game.State()
	return a, nil
}

// Update runs one simulation frame at Ebiten's fixed tick rate.
func (a *App) Update() error {
	pollKeys(&a.input)
	defer a.input.Clear()

	if a.input.Has(core.ActionQuit) || a.input.Has(core.ActionBack) {
		return ebiten.Termination
	}

	a.input.Elapsed = time.Second / time.Duration(ebiten.TPS())
	result := a.game.Step(a.input)
	if result.Restarted {
		a.saved = false
	}
	a.state = result.State

	if a.state.GameOver && !a.saved {
		a.saveRun()
		a.saved = true
	}
	return nil
}

func (a *App) saveRun() {
	if a.store == nil || a.state.Score == 0 {
		return
	}

	run := storage.Run{
		Variant: a.game.ID(),
		Score:   a.state.Score,
		Seed:    a.runtime.Seed,
	}
	if fc, ok := a.game.(registry.FrameCounter); ok {
		run.Frames = fc.Frames()
	}
	if _, err := a.store.SaveRun(run); err != nil {
		a.logger.Warn("could not save score", "error", err)
	}
}

// Draw renders the scene scaled from world units to the window.
func (a *App) Draw(screen *ebiten.Image) {
	s := a.scene.Scene()
	sx := float32(WindowWidth / s.WorldW)
	sy := float32(WindowHeight / s.WorldH)

	a.drawBackground(screen)

	for _, x := range s.LaneEdges {
		vector.DrawFilledRect(screen, float32(x)*sx-1, 0, 2, WindowHeight, laneColor, false)
	}

	for _, o := range s.Obstacles {
		drawBox(screen, o, sx, sy, obstacleColor)
	}
	drawBox(screen, s.Player, sx, sy, playerColor)

	a.drawText(screen, fmt.Sprintf("Score: %d", s.State.Score), 10, 10)

	switch {
	case s.State.GameOver:
		a.drawMessage(screen, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.State.Score))
	case s.State.Paused:
		a.drawMessage(screen, "PAUSED", "Press P to resume")
	}
}

func (a *App) drawBackground(screen *ebiten.Image) {
	if a.background == nil {
		screen.Fill(grassColor)
		return
	}

	b := a.background.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(WindowWidth)/float64(b.Dx()), float64(WindowHeight)/float64(b.Dy()))
	screen.DrawImage(a.background, op)
}

func drawBox(screen *ebiten.Image, b core.Box, sx, sy float32, clr color.Color) {
	vector.DrawFilledRect(screen, float32(b.X)*sx, float32(b.Y)*sy, float32(b.W)*sx, float32(b.H)*sy, clr, false)
}

// drawMessage shades the window and centres two lines of text.
func (a *App) drawMessage(screen *ebiten.Image, title, subtitle string) {
	vector.DrawFilledRect(screen, 0, 0, WindowWidth, WindowHeight, shadeColor, false)

	tw, th := a.measure(title)
	a.drawText(screen, title, (WindowWidth-tw)/2, WindowHeight/2-th-8)

	sw, _ := a.measure(subtitle)
	a.drawText(screen, subtitle, (WindowWidth-sw)/2, WindowHeight/2+8)
}

func (a *App) drawText(screen *ebiten.Image, s string, x, y float64) {
	if a.face == nil {
		ebitenutil.DebugPrintAt(screen, s, int(x), int(y))
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, s, a.face, op)
}

func (a *App) measure(s string) (w, h float64) {
	if a.face == nil {
		return float64(len(s) * debugGlyphWidth), debugLineHeight
	}
	return text.Measure(s, a.face, a.face.Size)
}

// Layout fixes the logical screen to the window size.
func (a *App) Layout(_, _ int) (int, int) {
	return WindowWidth, WindowHeight
}

// State returns the state after the last frame.
func (a *App) State() core.GameState {
	return a.state
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game registry.Game, runtime core.RuntimeConfig, opts Options) error {
	app, err := New(game, runtime, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(app.runtime.TickRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
