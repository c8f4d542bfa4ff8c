package glade

import (
	"fmt"
	"os"
	"time"
)

// warnf prints a non-fatal runtime warning to stderr.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[glade] "+format+"\n", args...)
}

// debugLogFrame prints per-frame update stats to stderr. Only called in
// debug mode.
func (r *Runtime) debugLogFrame(elapsed time.Duration) {
	active := 0
	for _, e := range r.entities {
		if e.Active {
			active++
		}
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[glade] update: %v | scene: %q | entities: %d (%d active) | history: %d\n",
		elapsed, r.activeID, len(r.entities), active, len(r.history))
}

// debugLogRender prints per-frame render stats to stderr.
func (r *Runtime) debugLogRender(sc *Scene, elapsed time.Duration) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[glade] render: %v | scene: %q | members: %d | planes: %d\n",
		elapsed, sc.id, len(sc.entities), len(r.planes)+len(sc.planes))
}

// debugStroke is the hitbox overlay line width.
const debugStroke = 1.0

// renderDebug draws the translated/rotated hitbox outline and, when gravity
// is enabled, a vertical velocity indicator. Drawn regardless of Visible.
func (e *Entity) renderDebug(rd Renderer) {
	rd.Push()
	rd.Translate(e.X, e.Y)
	if rot := e.rotationRadians(); rot != 0 {
		rd.Rotate(rot)
	}
	outline := Color{0, 1, 0, 1}
	if e.Grounded {
		outline = Color{1, 1, 0, 1}
	}
	rd.StrokeRect(-e.Width/2, -e.Height/2, e.Width, e.Height, debugStroke, outline)
	rd.Pop()

	if e.Gravity {
		// Velocity indicator scaled so terminal velocity spans one height.
		scale := 1.0
		if e.rt.TerminalVelocity != 0 {
			scale = e.Height / e.rt.TerminalVelocity
		}
		rd.Line(e.X, e.Y, e.X, e.Y+e.FallVelocity*scale, debugStroke, Color{1, 0, 0, 1})
	}
}
