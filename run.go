package glade

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the convenience game loop created by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	Debug   bool
}

// Run creates a window and drives the runtime with Ebitengine's game loop.
// The real mouse becomes the pointer source unless one was already set.
// Blocks until the window closes.
//
// For full control, implement ebiten.Game yourself and call Runtime.Update
// and Runtime.Draw directly.
func Run(rt *Runtime, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if rt.pointer == nil {
		rt.SetPointerSource(MousePointer{})
	}
	if cfg.ShowFPS {
		rt.AddPlane(NewFPSPlane())
	}
	rt.SetDebugMode(cfg.Debug)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(&game{rt: rt, w: cfg.Width, h: cfg.Height})
}

// game adapts a Runtime to ebiten.Game.
type game struct {
	rt   *Runtime
	w, h int
}

func (g *game) Update() error {
	g.rt.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.rt.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
