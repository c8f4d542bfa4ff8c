package glade

import "testing"

func TestPlaneBoundTo(t *testing.T) {
	hud := NewPlane(nil, "game", "pause")
	if !hud.BoundTo("game") || !hud.BoundTo("pause") {
		t.Error("plane should bind to its explicit scene ids")
	}
	if hud.BoundTo("menu") {
		t.Error("plane must not bind to an unlisted scene")
	}

	everywhere := NewPlane(nil)
	if !everywhere.BoundTo("game") || !everywhere.BoundTo("menu") {
		t.Error("a default-bound plane renders over every scene")
	}
}

func TestPlaneRenderAppliesFormatting(t *testing.T) {
	var drawn bool
	p := NewPlane(func(rd Renderer, f *Formatting) {
		drawn = true
		rd.FillRect(0, 0, 10, 10, f.TextColor)
	})
	p.Format.Apply("orientation:x!set|15", "orientation:y!set|25", "scale!set|2")

	rd := newRecorder()
	p.render(rd, nil)
	if !drawn {
		t.Fatal("draw callback should run")
	}
	if op, ok := rd.first("translate"); !ok || op.x != 15 || op.y != 25 {
		t.Errorf("translate = %+v, want formatting offsets", op)
	}
	if op, ok := rd.first("scale"); !ok || op.scale != 2 {
		t.Errorf("scale = %+v, want formatting scale", op)
	}
	if rd.count("push") != 1 || rd.count("pop") != 1 {
		t.Error("draw callback must run inside a save-point")
	}
}

func TestPlaneRenderNilDraw(t *testing.T) {
	p := NewPlane(nil)
	rd := newRecorder()
	p.render(rd, nil)
	if len(rd.ops) != 0 {
		t.Error("plane without a draw callback must emit nothing")
	}
}

func TestPlaneResolveOrigin(t *testing.T) {
	cam := NewCamera(Rect{0, 0, 640, 480})
	cam.X, cam.Y = 100, 100
	cam.Zoom = 2

	p := NewPlane(nil)
	p.Format.OffsetX = 4
	p.Format.OffsetY = 8

	// Camera mode: viewport top-left plus offsets.
	p.Format.Orientation = OrientCamera
	if x, y := p.resolveOrigin(cam); x != 4 || y != 8 {
		t.Errorf("camera origin = (%v, %v), want (4, 8)", x, y)
	}

	// Screen mode: absolute offsets regardless of camera.
	p.Format.Orientation = OrientScreen
	if x, y := p.resolveOrigin(cam); x != 4 || y != 8 {
		t.Errorf("screen origin = (%v, %v), want (4, 8)", x, y)
	}

	// World mode: offsets projected through the camera.
	p.Format.Orientation = OrientWorld
	wx, wy := cam.WorldToScreen(4, 8)
	if x, y := p.resolveOrigin(cam); x != wx || y != wy {
		t.Errorf("world origin = (%v, %v), want (%v, %v)", x, y, wx, wy)
	}

	// Every mode degrades to the raw offsets without a camera.
	for _, mode := range []Orientation{OrientCamera, OrientScreen, OrientWorld} {
		p.Format.Orientation = mode
		if x, y := p.resolveOrigin(nil); x != 4 || y != 8 {
			t.Errorf("mode %v without camera: origin = (%v, %v), want (4, 8)", mode, x, y)
		}
	}
}
