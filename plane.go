package glade

// Plane is a screen- or camera-relative overlay drawing surface independent
// of scene-entity physics. A plane binds to one or more scene ids; binding to
// DefaultSceneID makes it render over every scene. Plane lifetime is
// independent of scene destruction.
type Plane struct {
	// Draw is the owner-supplied callback, invoked with the renderer already
	// translated and scaled per the plane's formatting.
	Draw func(rd Renderer, f *Formatting)
	// Format is the plane's presentation state; mutate it through
	// Format.Apply or directly.
	Format Formatting

	scenes []string
}

// NewPlane creates a plane bound to the given scene ids. With none it binds
// to DefaultSceneID and renders everywhere.
func NewPlane(draw func(rd Renderer, f *Formatting), sceneIDs ...string) *Plane {
	if len(sceneIDs) == 0 {
		sceneIDs = []string{DefaultSceneID}
	}
	return &Plane{
		Draw:   draw,
		Format: DefaultFormatting(),
		scenes: append([]string(nil), sceneIDs...),
	}
}

// BoundTo reports whether the plane renders over the given scene: either an
// explicit binding or the visible-everywhere DefaultSceneID fallback.
func (p *Plane) BoundTo(sceneID string) bool {
	for _, id := range p.scenes {
		if id == sceneID || id == DefaultSceneID {
			return true
		}
	}
	return false
}

// render resolves the plane's orientation against the camera, applies the
// uniform scale, and invokes the draw callback inside a save-point.
func (p *Plane) render(rd Renderer, cam *Camera) {
	if p.Draw == nil {
		return
	}
	ox, oy := p.resolveOrigin(cam)
	rd.Push()
	rd.Translate(ox, oy)
	if p.Format.Scale != 1 && p.Format.Scale > 0 {
		rd.Scale(p.Format.Scale)
	}
	p.Draw(rd, &p.Format)
	rd.Pop()
}

// resolveOrigin maps the formatting offsets into screen coordinates. Without
// a camera every mode degrades to the identity transform.
func (p *Plane) resolveOrigin(cam *Camera) (float64, float64) {
	f := &p.Format
	switch f.Orientation {
	case OrientCamera:
		if cam != nil {
			return cam.Viewport.X + f.OffsetX, cam.Viewport.Y + f.OffsetY
		}
		return f.OffsetX, f.OffsetY
	case OrientWorld:
		if cam != nil {
			return cam.WorldToScreen(f.OffsetX, f.OffsetY)
		}
		return f.OffsetX, f.OffsetY
	default: // OrientScreen
		return f.OffsetX, f.OffsetY
	}
}
