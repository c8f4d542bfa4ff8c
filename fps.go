package glade

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// NewFPSPlane creates a screen-oriented UI plane that displays the current
// FPS and TPS in the top-left corner. The readout refreshes about twice per
// second. Bind it to DefaultSceneID (the default) to show it over every
// scene.
func NewFPSPlane() *Plane {
	var (
		frames int
		text   = "FPS: --\nTPS: --"
	)
	p := NewPlane(func(rd Renderer, f *Formatting) {
		frames++
		if frames >= 30 {
			frames = 0
			text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
		rd.FillRect(0, 0, 72, 2*rd.LineHeight(f.Text.Base), Color{0, 0, 0, 0.5})
		rd.Text(text, 2, 0, f.Text.Base, f.TextColor, TextAlignLeft)
	})
	p.Format.Apply("orientation:mode!set|screen", "orientation:x!set|4", "orientation:y!set|4")
	return p
}
