// Package ebitenhost runs an easel scene in an Ebitengine window.
//
// Ebitengine's update callback is the engine thread: each Update reads
// mouse and keyboard state, dispatches it to the scene and runs one Tick.
// Draw uploads the raster surface to the window.
package ebitenhost

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/easel"
)

// ErrNoSnapshot is returned by Run when the scene's surface cannot be read
// back as an image.
var ErrNoSnapshot = errors.New("ebitenhost: surface does not implement easel.Snapshotter")

// Game adapts a Scene to ebiten.Game.
type Game struct {
	scene   *easel.Scene
	surface easel.Snapshotter
	input   inputState
	dt      float64
	quit    bool
	now     func() time.Time

	screen *ebiten.Image
}

// NewGame wraps scene for use with ebiten.RunGame.
func NewGame(scene *easel.Scene, cfg easel.RunConfig) (*Game, error) {
	snap, ok := scene.Surface().(easel.Snapshotter)
	if !ok {
		return nil, ErrNoSnapshot
	}
	g := &Game{
		scene:   scene,
		surface: snap,
		dt:      1 / float64(cfg.TPS()),
		quit:    cfg.TestScript != "",
		now:     time.Now,
	}
	g.input.clicks = easel.NewClickTracker()
	if cfg.DoubleClickInterval > 0 {
		g.input.clicks.Interval = cfg.DoubleClickInterval
	}
	return g, nil
}

// Update dispatches this frame's input and ticks the scene. When the scene
// was started from a test script, Update ends the game once the script is
// done.
func (g *Game) Update() error {
	g.input.apply(g.scene, readFrame(), g.now())
	if err := g.scene.Tick(g.dt); err != nil {
		easel.Logger().Warn("tick failed", "error", err)
	}
	if g.quit {
		if r := g.scene.TestRunner(); r != nil && r.Done() {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw copies the surface into the window.
func (g *Game) Draw(screen *ebiten.Image) {
	img := g.surface.Snapshot()
	b := img.Bounds()
	if g.screen == nil || g.screen.Bounds().Dx() != b.Dx() || g.screen.Bounds().Dy() != b.Dy() {
		if g.screen != nil {
			g.screen.Deallocate()
		}
		g.screen = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.screen.WritePixels(img.Pix)
	screen.DrawImage(g.screen, nil)
}

// Layout keeps the logical screen the size of the surface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Width(), g.scene.Height()
}

// Run opens a window for scene and blocks until it closes. It applies cfg
// to the scene, sizes the surface and sets the tick rate.
func Run(scene *easel.Scene, cfg easel.RunConfig) error {
	if err := cfg.Apply(scene); err != nil {
		return err
	}
	if scene.Width() != cfg.Width || scene.Height() != cfg.Height {
		scene.SetSize(cfg.Width, cfg.Height)
	}
	g, err := NewGame(scene, cfg)
	if err != nil {
		return err
	}
	defer scene.Close()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS())
	easel.Logger().Info("window opened", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "tps", cfg.TPS())

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
