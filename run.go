package alder

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig controls the window created by [Run].
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// Draw, if set, is called every frame with the screen. Alder does no
	// rendering of its own.
	Draw func(screen *ebiten.Image)
}

// Run opens a window, connects an [EbitenSource] to the scene, and drives
// [Scene.Update] until the window is closed. Blocks until the game loop
// exits; returns the error that ended it, if any.
func Run(s *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title == "" {
		cfg.Title = "alder"
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	s.SetSize(float64(cfg.Width), float64(cfg.Height))
	s.Connect(NewEbitenSource())
	defer s.Disconnect()

	return ebiten.RunGame(&runGame{scene: s, cfg: cfg})
}

type runGame struct {
	scene *Scene
	cfg   RunConfig
}

func (g *runGame) Update() error {
	return g.scene.Update(1.0 / float64(ebiten.TPS()))
}

func (g *runGame) Draw(screen *ebiten.Image) {
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
}

func (g *runGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.SetSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
