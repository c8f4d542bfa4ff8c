package glade

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState is one frame's pointer snapshot in screen coordinates.
type PointerState struct {
	X, Y float64
	Down bool
}

// PointerSource is the input collaborator consumed by buttons. The runtime
// polls it once per frame; injected events take precedence over it.
type PointerSource interface {
	Pointer() PointerState
}

// MousePointer reads the host mouse through Ebitengine.
type MousePointer struct{}

// Pointer returns the cursor position and primary-button state.
func (MousePointer) Pointer() PointerState {
	x, y := ebiten.CursorPosition()
	return PointerState{
		X:    float64(x),
		Y:    float64(y),
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// StubPointer is a settable pointer source for tests and scripted control.
type StubPointer struct {
	State PointerState
}

// Pointer returns the stubbed state.
func (s *StubPointer) Pointer() PointerState {
	return s.State
}

// --- Keyed digital input ---

// InputMap binds action names to keyboard keys and answers pressed/held
// queries. Unknown action names are logged and read as released.
type InputMap struct {
	bindings map[string]ebiten.Key
}

// NewInputMap creates an empty input map.
func NewInputMap() *InputMap {
	return &InputMap{bindings: make(map[string]ebiten.Key)}
}

// Bind associates an action name with a key, replacing any prior binding.
func (m *InputMap) Bind(name string, key ebiten.Key) {
	m.bindings[name] = key
}

// Pressed reports whether the action's key is currently held.
func (m *InputMap) Pressed(name string) bool {
	key, ok := m.bindings[name]
	if !ok {
		warnf("input action %q is not bound", name)
		return false
	}
	return ebiten.IsKeyPressed(key)
}

// JustPressed reports whether the action's key went down this frame.
func (m *InputMap) JustPressed(name string) bool {
	key, ok := m.bindings[name]
	if !ok {
		warnf("input action %q is not bound", name)
		return false
	}
	return inpututil.IsKeyJustPressed(key)
}

// HeldFrames returns how many frames the action's key has been held, or 0.
func (m *InputMap) HeldFrames(name string) int {
	key, ok := m.bindings[name]
	if !ok {
		warnf("input action %q is not bound", name)
		return 0
	}
	return inpututil.KeyPressDuration(key)
}

// --- Gamepad snapshot ---

// GamepadSnapshot is a point-in-time copy of one controller's axes and
// buttons.
type GamepadSnapshot struct {
	ID      ebiten.GamepadID
	Axes    []float64
	Buttons []bool
}

// SnapshotGamepad captures the first connected gamepad, or ok=false when none
// is attached.
func SnapshotGamepad() (GamepadSnapshot, bool) {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return GamepadSnapshot{}, false
	}
	id := ids[0]
	snap := GamepadSnapshot{ID: id}
	for a := 0; a < ebiten.GamepadAxisCount(id); a++ {
		snap.Axes = append(snap.Axes, ebiten.GamepadAxisValue(id, ebiten.GamepadAxisType(a)))
	}
	for b := 0; b < ebiten.GamepadButtonCount(id); b++ {
		snap.Buttons = append(snap.Buttons, ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(b)))
	}
	return snap, true
}
