package motion

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS overrides ebiten's ticks per second when positive.
	TPS int
	// ShowFPS prints FPS and TPS in the top-left corner.
	ShowFPS bool
	// Overlay, if set, draws on top of the scene every frame.
	Overlay func(screen *ebiten.Image)
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.Overlay != nil {
		g.cfg.Overlay(screen)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			0, 16)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the scene with ebiten's game loop until the
// window is closed. Tweens are started from other goroutines (see
// Scene.SetUpdateFunc for per-frame hooks).
func Run(scene *Scene, cfg RunConfig) error {
	if scene == nil {
		return ErrNilScene
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(&game{scene: scene, cfg: cfg})
}
