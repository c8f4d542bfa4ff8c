package glade

import "time"

// defaultButtonCooldown is the minimum wall-clock interval between two
// accepted clicks.
const defaultButtonCooldown = 250 * time.Millisecond

// Button is an interactive entity specialization: a hover/press/click
// statechart layered on an Entity through the Extension seam. The entity
// renders the base shape in the state color; the button overlays a centered
// label afterward.
//
// Click detection is edge-triggered and latched exactly once per frame during
// the update pass; Clicked is a cached read for the remainder of the frame.
type Button struct {
	*Entity

	Label     string
	TextSize  float64
	TextColor Color

	// State colors, selected with priority disabled > pressed > hovered >
	// normal.
	Normal        Color
	Hover         Color
	PressedColor  Color
	DisabledColor Color

	// Disabled suppresses hover, press, and click regardless of the pointer.
	Disabled bool
	// HitPadding expands the pointer hit box on every side.
	HitPadding float64
	// Cooldown is the minimum interval between accepted clicks.
	Cooldown time.Duration

	// OnClick fires on the release edge of a press-while-hovering cycle,
	// outside the cooldown window.
	OnClick func(*Button)

	hovered     bool
	pressed     bool
	wasPressed  bool
	clicked     bool
	coolingDown bool
	lastClick   time.Time
}

// SpawnButton creates a button entity centered at (x, y) and registers it
// like any other entity. With no scene ids the button belongs to
// DefaultSceneID.
func (r *Runtime) SpawnButton(x, y, w, h float64, label string, sceneIDs ...string) *Button {
	e := r.Spawn(x, y, w, h, sceneIDs...)
	b := &Button{
		Entity:        e,
		Label:         label,
		TextSize:      16,
		TextColor:     ColorWhite,
		Normal:        Color{0.25, 0.25, 0.3, 1},
		Hover:         Color{0.35, 0.35, 0.45, 1},
		PressedColor:  Color{0.15, 0.15, 0.2, 1},
		DisabledColor: Color{0.2, 0.2, 0.2, 0.5},
		Cooldown:      defaultButtonCooldown,
	}
	e.SetExtension(b)
	return b
}

// Hovered reports whether the pointer was inside the (padded) hit box this
// frame and the button was enabled.
func (b *Button) Hovered() bool {
	return b.hovered
}

// Pressed reports whether the button was hovered with the pointer held down
// this frame.
func (b *Button) Pressed() bool {
	return b.pressed
}

// Clicked reports whether a full press-then-release-while-hovering cycle
// completed this frame. Cached from the update pass; reading it repeatedly
// within a frame is safe.
func (b *Button) Clicked() bool {
	return b.clicked
}

// CoolingDown reports whether the click cooldown window is active.
func (b *Button) CoolingDown() bool {
	return b.coolingDown
}

// LastClickTime returns the wall-clock timestamp of the last accepted click.
func (b *Button) LastClickTime() time.Time {
	return b.lastClick
}

// Update advances the statechart from this frame's pointer state. Runs once
// per frame from the entity update pass.
func (b *Button) Update(e *Entity) {
	p := e.rt.pointerWorld()
	pad := b.HitPadding
	box := Rect{
		X:      e.X - e.Width/2 - pad,
		Y:      e.Y - e.Height/2 - pad,
		Width:  e.Width + 2*pad,
		Height: e.Height + 2*pad,
	}
	inside := box.Contains(p.X, p.Y)

	b.hovered = inside && !b.Disabled
	b.clicked = b.wasPressed && !p.Down && b.hovered
	b.pressed = b.hovered && p.Down
	b.wasPressed = b.pressed

	now := e.rt.now()
	if b.coolingDown && now.Sub(b.lastClick) >= b.Cooldown {
		b.coolingDown = false
	}
	if b.clicked && b.OnClick != nil && !b.coolingDown {
		b.OnClick(b)
		b.lastClick = now
		if b.Cooldown > 0 {
			b.coolingDown = true
		}
	}

	e.Fill = b.stateColor()
}

// Render draws the centered label over the base shape.
func (b *Button) Render(e *Entity, rd Renderer) {
	if b.Label == "" {
		return
	}
	rd.Text(b.Label, e.X, e.Y-rd.LineHeight(b.TextSize)/2, b.TextSize, b.TextColor, TextAlignCenter)
}

func (b *Button) stateColor() Color {
	switch {
	case b.Disabled:
		return b.DisabledColor
	case b.pressed:
		return b.PressedColor
	case b.hovered:
		return b.Hover
	default:
		return b.Normal
	}
}
