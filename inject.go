package glade

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates, converted to world coordinates by the same path as real mouse
// input.
type syntheticPointerEvent struct {
	x, y float64
	down bool
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next Update and overrides the real pointer source
// for that frame.
func (r *Runtime) InjectPress(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{x: x, y: y, down: true})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (r *Runtime) InjectMove(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{x: x, y: y, down: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (r *Runtime) InjectRelease(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{x: x, y: y, down: false})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (r *Runtime) InjectClick(x, y float64) {
	r.InjectPress(x, y)
	r.InjectRelease(x, y)
}

// consumeInjected pops one queued event and makes it this frame's pointer
// state. With an empty queue the real pointer source is used.
func (r *Runtime) consumeInjected() {
	if len(r.injectQueue) == 0 {
		r.injectCurrent = nil
		return
	}
	evt := r.injectQueue[0]
	copy(r.injectQueue, r.injectQueue[1:])
	r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]
	r.injectCurrent = &PointerState{X: evt.x, Y: evt.y, Down: evt.down}
}
