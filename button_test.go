package glade

import (
	"testing"
	"time"
)

// buttonWorld builds a runtime with an active scene, a stub pointer, and a
// manual clock.
func buttonWorld(t *testing.T) (*Runtime, *StubPointer, *time.Time) {
	t.Helper()
	rt := NewRuntime()
	NewScene(rt, "ui")
	rt.SetActiveScene("ui")
	ptr := &StubPointer{}
	rt.SetPointerSource(ptr)
	now := time.Unix(1000, 0)
	rt.SetClock(func() time.Time { return now })
	return rt, ptr, &now
}

func TestButtonClickCycle(t *testing.T) {
	rt, ptr, _ := buttonWorld(t)
	b := rt.SpawnButton(100, 100, 80, 30, "ok", "ui")
	clicks := 0
	b.OnClick = func(*Button) { clicks++ }

	// Pointer away: idle.
	rt.Update()
	if b.Hovered() || b.Pressed() || b.Clicked() {
		t.Fatal("button should be idle with the pointer elsewhere")
	}
	if b.Entity.Fill != b.Normal {
		t.Error("idle fill should be the normal color")
	}

	// Move over: hovered, not pressed.
	ptr.State = PointerState{X: 100, Y: 100}
	rt.Update()
	if !b.Hovered() || b.Pressed() || b.Clicked() {
		t.Fatal("button should be hovered only")
	}
	if b.Entity.Fill != b.Hover {
		t.Error("hover fill should be the hover color")
	}

	// Press: pressed, no click yet.
	ptr.State = PointerState{X: 100, Y: 100, Down: true}
	rt.Update()
	if !b.Pressed() || b.Clicked() || clicks != 0 {
		t.Fatal("press alone must not click")
	}
	if b.Entity.Fill != b.PressedColor {
		t.Error("pressed fill should be the pressed color")
	}

	// Held: still no click.
	rt.Update()
	if b.Clicked() || clicks != 0 {
		t.Fatal("holding must not click")
	}

	// Release over the button: exactly one click, this frame only.
	ptr.State = PointerState{X: 100, Y: 100}
	rt.Update()
	if !b.Clicked() || clicks != 1 {
		t.Fatalf("release should click once, got clicked=%v clicks=%d", b.Clicked(), clicks)
	}
	if !b.Clicked() {
		t.Error("Clicked must stay true for repeated reads within the frame")
	}
	rt.Update()
	if b.Clicked() || clicks != 1 {
		t.Error("click must clear on the next frame")
	}
}

func TestButtonReleaseOffButtonCancels(t *testing.T) {
	rt, ptr, _ := buttonWorld(t)
	b := rt.SpawnButton(100, 100, 80, 30, "ok", "ui")
	clicks := 0
	b.OnClick = func(*Button) { clicks++ }

	ptr.State = PointerState{X: 100, Y: 100, Down: true}
	rt.Update()
	if !b.Pressed() {
		t.Fatal("button should be pressed")
	}
	// Drag off, then release.
	ptr.State = PointerState{X: 300, Y: 300, Down: true}
	rt.Update()
	ptr.State = PointerState{X: 300, Y: 300}
	rt.Update()
	if b.Clicked() || clicks != 0 {
		t.Error("releasing off the button must not click")
	}
}

func TestButtonDisabled(t *testing.T) {
	rt, ptr, _ := buttonWorld(t)
	b := rt.SpawnButton(100, 100, 80, 30, "ok", "ui")
	b.Disabled = true
	clicks := 0
	b.OnClick = func(*Button) { clicks++ }

	ptr.State = PointerState{X: 100, Y: 100, Down: true}
	rt.Update()
	ptr.State = PointerState{X: 100, Y: 100}
	rt.Update()
	if b.Hovered() || b.Pressed() || b.Clicked() || clicks != 0 {
		t.Error("disabled button must ignore the pointer")
	}
	if b.Entity.Fill != b.DisabledColor {
		t.Error("disabled fill should be the disabled color")
	}
}

func TestButtonHitPadding(t *testing.T) {
	rt, ptr, _ := buttonWorld(t)
	b := rt.SpawnButton(100, 100, 80, 30, "ok", "ui") // box x in [60,140]
	b.HitPadding = 10

	ptr.State = PointerState{X: 145, Y: 100}
	rt.Update()
	if !b.Hovered() {
		t.Error("pointer within the padded box should hover")
	}
	ptr.State = PointerState{X: 155, Y: 100}
	rt.Update()
	if b.Hovered() {
		t.Error("pointer outside the padded box should not hover")
	}
}

func TestButtonCooldown(t *testing.T) {
	rt, ptr, now := buttonWorld(t)
	b := rt.SpawnButton(100, 100, 80, 30, "ok", "ui")
	clicks := 0
	b.OnClick = func(*Button) { clicks++ }

	click := func() {
		ptr.State = PointerState{X: 100, Y: 100, Down: true}
		rt.Update()
		ptr.State = PointerState{X: 100, Y: 100}
		rt.Update()
	}

	click()
	if clicks != 1 || !b.CoolingDown() {
		t.Fatalf("first click: clicks=%d coolingDown=%v", clicks, b.CoolingDown())
	}

	// Second click inside the cooldown window is swallowed.
	*now = now.Add(100 * time.Millisecond)
	click()
	if clicks != 1 {
		t.Errorf("clicks = %d, want cooldown to swallow the second click", clicks)
	}

	// After the window the next click dispatches again.
	*now = now.Add(200 * time.Millisecond)
	click()
	if clicks != 2 || b.LastClickTime() != *now {
		t.Errorf("clicks = %d, lastClick = %v, want 2 at %v", clicks, b.LastClickTime(), *now)
	}
}

func TestButtonInjectedClick(t *testing.T) {
	rt, _, _ := buttonWorld(t)
	b := rt.SpawnButton(100, 100, 80, 30, "ok", "ui")
	clicks := 0
	b.OnClick = func(*Button) { clicks++ }

	rt.InjectClick(100, 100)
	rt.Update() // press
	rt.Update() // release
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1 from injected press/release", clicks)
	}
}

func TestButtonRenderLabel(t *testing.T) {
	rt, _, _ := buttonWorld(t)
	b := rt.SpawnButton(100, 100, 80, 30, "start", "ui")
	rt.Update()

	rd := newRecorder()
	b.Entity.render(rd)
	op, ok := rd.first("text")
	if !ok {
		t.Fatal("button render should draw its label")
	}
	if op.text != "start" || op.x != 100 || op.y != 100-rd.LineHeight(b.TextSize)/2 {
		t.Errorf("label op = %q at (%v, %v)", op.text, op.x, op.y)
	}
}
