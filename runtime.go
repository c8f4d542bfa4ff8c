package glade

import (
	"time"

	"github.com/kamstrup/intmap"
)

const (
	// frameStep is the fixed logical time step. The runtime is driven by the
	// host loop at a nominal 60 ticks per second; transitions, cooldown-free
	// timers, and scene time accumulate in these increments.
	frameStep = 1.0 / 60.0

	defaultHistoryDepth = 10
	defaultEntityCap    = 256
)

// Runtime owns every registry in the system: entities, scenes, the global UI
// plane pool, the scene history stack, and the collaborator seams (pointer
// source, camera, clock). All state is confined to the host frame-loop
// goroutine; nothing here locks.
type Runtime struct {
	// Gravity is the per-step vertical acceleration applied to every
	// gravity-enabled entity, scaled by the entity's mass.
	Gravity float64
	// TerminalVelocity caps the falling speed. Rising speeds (from a bounce)
	// are not clamped.
	TerminalVelocity float64
	// HistoryLimit bounds the back-navigation stack. Oldest entries are
	// evicted first.
	HistoryLimit int

	entities []*Entity
	byID     *intmap.Map[uint64, *Entity]
	scratch  []*Entity
	nextID   uint64

	scenes    []*Scene
	sceneByID map[string]*Scene
	activeID  string
	active    *Scene
	history   []string

	planes []*Plane

	pointer       PointerSource
	camera        *Camera
	injectQueue   []syntheticPointerEvent
	injectCurrent *PointerState

	debug bool
	now   func() time.Time
}

// NewRuntime creates an empty runtime with default physics globals.
func NewRuntime() *Runtime {
	return &Runtime{
		Gravity:          0.5,
		TerminalVelocity: 20,
		HistoryLimit:     defaultHistoryDepth,
		byID:             intmap.New[uint64, *Entity](defaultEntityCap),
		sceneByID:        make(map[string]*Scene),
		activeID:         DefaultSceneID,
		now:              time.Now,
	}
}

// SetClock overrides the wall-clock source used for button cooldowns and
// scene activation timestamps. Pass nil to restore time.Now.
func (r *Runtime) SetClock(clock func() time.Time) {
	if clock == nil {
		clock = time.Now
	}
	r.now = clock
}

// SetPointerSource sets the pointer collaborator consumed by buttons.
// Without one (and with no injected events) the pointer reads as (0, 0, up).
func (r *Runtime) SetPointerSource(src PointerSource) {
	r.pointer = src
}

// SetCamera attaches an optional camera. When absent, world and screen
// coordinates coincide (identity transform).
func (r *Runtime) SetCamera(cam *Camera) {
	r.camera = cam
}

// Camera returns the attached camera, or nil.
func (r *Runtime) Camera() *Camera {
	return r.camera
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame stats
// are logged to stderr and entity debug overlays gain frame timing context.
func (r *Runtime) SetDebugMode(enabled bool) {
	r.debug = enabled
}

// Update advances the runtime by one fixed step: consumes one injected pointer
// event, advances the camera, resolves the single active scene (activation
// callbacks, deactivation cascade), steps that scene's scripts and transition,
// and runs the update pass over every registered entity.
//
// Rendering is separate; call Draw (or RenderTo) from the host's draw callback.
func (r *Runtime) Update() {
	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}

	r.consumeInjected()

	if r.camera != nil {
		r.camera.update(frameStep)
	}

	r.active = r.resolveActiveScene()
	if r.active != nil && !r.active.Paused {
		r.active.step()
	}

	// Snapshot so scripts may spawn or destroy entities mid-pass.
	r.scratch = append(r.scratch[:0], r.entities...)
	for _, e := range r.scratch {
		if !e.destroyed {
			e.update()
		}
	}

	if r.debug {
		r.debugLogFrame(time.Since(t0))
	}
}

// resolveActiveScene performs the per-frame full scan: every scene except the
// requested one is forced inactive (cascading to member entities), and the
// winner is activated. A missing requested id logs a warning and falls back
// to the default scene on the next frame.
func (r *Runtime) resolveActiveScene() *Scene {
	target := r.sceneByID[r.activeID]
	if target == nil {
		if r.activeID != DefaultSceneID {
			warnf("scene %q not found; falling back to %q", r.activeID, DefaultSceneID)
			r.activeID = DefaultSceneID
		}
		for _, sc := range r.scenes {
			sc.deactivate()
		}
		return nil
	}
	for _, sc := range r.scenes {
		if sc != target {
			sc.deactivate()
		}
	}
	target.activate(r.now())
	return target
}

// ActiveScene returns the scene that won the most recent Update resolution,
// or nil if the requested id was unresolved.
func (r *Runtime) ActiveScene() *Scene {
	return r.active
}

// ActiveSceneID returns the currently requested active scene id.
func (r *Runtime) ActiveSceneID() string {
	return r.activeID
}

// SwitchToScene requests a new active scene, pushing the previous id onto the
// bounded history stack. A missing target logs a warning and leaves the
// current scene active.
func (r *Runtime) SwitchToScene(id string) {
	if _, ok := r.sceneByID[id]; !ok {
		warnf("SwitchToScene: scene %q does not exist", id)
		return
	}
	if id == r.activeID {
		return
	}
	r.history = append(r.history, r.activeID)
	if len(r.history) > r.HistoryLimit {
		n := copy(r.history, r.history[len(r.history)-r.HistoryLimit:])
		r.history = r.history[:n]
	}
	r.activeID = id
}

// SetActiveScene requests a new active scene without touching history.
func (r *Runtime) SetActiveScene(id string) {
	if _, ok := r.sceneByID[id]; !ok {
		warnf("SetActiveScene: scene %q does not exist", id)
		return
	}
	r.activeID = id
}

// GoBack pops the most recent history entry and switches to it without
// re-pushing. Returns false when history is empty.
func (r *Runtime) GoBack() bool {
	if len(r.history) == 0 {
		return false
	}
	id := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	r.activeID = id
	return true
}

// History returns a copy of the back-navigation stack, oldest first.
func (r *Runtime) History() []string {
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

// Scenes returns the registered scenes in registration order.
// The returned slice MUST NOT be mutated.
func (r *Runtime) Scenes() []*Scene {
	return r.scenes
}

// SceneByID returns the scene with the given id, or nil.
func (r *Runtime) SceneByID(id string) *Scene {
	return r.sceneByID[id]
}

// ScenesTagged returns all scenes carrying the given tag, in registration order.
func (r *Runtime) ScenesTagged(tag string) []*Scene {
	var out []*Scene
	for _, sc := range r.scenes {
		if sc.HasTag(tag) {
			out = append(out, sc)
		}
	}
	return out
}

// --- Entity registry ---

// Spawn creates an entity centered at (x, y) with the given size and
// registers it. With no scene ids the entity belongs to DefaultSceneID.
// Registry order is insertion order; ids are never reused.
func (r *Runtime) Spawn(x, y, w, h float64, sceneIDs ...string) *Entity {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if len(sceneIDs) == 0 {
		sceneIDs = []string{DefaultSceneID}
	}
	r.nextID++
	e := &Entity{
		id:              r.nextID,
		rt:              r,
		X:               x,
		Y:               y,
		Width:           w,
		Height:          h,
		Visible:         true,
		Collidable:      true,
		GroundTolerance: defaultGroundTolerance,
		mass:            1,
		Fill:            ColorWhite,
		scenes:          append([]string(nil), sceneIDs...),
	}
	r.entities = append(r.entities, e)
	r.byID.Put(e.id, e)
	for _, id := range sceneIDs {
		if sc := r.sceneByID[id]; sc != nil {
			sc.entities = append(sc.entities, e)
		}
	}
	return e
}

// Destroy removes an entity from the registry, the id map, and every scene's
// member list. Destroying an already-destroyed entity is a no-op.
func (r *Runtime) Destroy(e *Entity) {
	if e == nil || e.destroyed {
		return
	}
	e.destroyed = true
	r.byID.Del(e.id)
	removeEntity(&r.entities, e)
	for _, sc := range r.scenes {
		removeEntity(&sc.entities, e)
	}
	e.parent = nil
	e.scripts = nil
	e.ext = nil
}

// EntityByID returns the entity with the given id, or nil.
func (r *Runtime) EntityByID(id uint64) *Entity {
	e, ok := r.byID.Get(id)
	if !ok {
		return nil
	}
	return e
}

// EntityAt returns the entity at the given registry index, or nil when out of
// range. Indices shift when an earlier entity is destroyed; prefer EntityByID
// for stable references.
func (r *Runtime) EntityAt(index int) *Entity {
	if index < 0 || index >= len(r.entities) {
		return nil
	}
	return r.entities[index]
}

// EntityCount returns the number of live entities.
func (r *Runtime) EntityCount() int {
	return len(r.entities)
}

// Entities returns the live entities in insertion order.
// The returned slice MUST NOT be mutated.
func (r *Runtime) Entities() []*Entity {
	return r.entities
}

// ActiveEntities returns the entities whose active flag is set, in insertion
// order.
func (r *Runtime) ActiveEntities() []*Entity {
	var out []*Entity
	for _, e := range r.entities {
		if e.Active {
			out = append(out, e)
		}
	}
	return out
}

// EntitiesInScene returns the entities belonging to the given scene id, in
// insertion order.
func (r *Runtime) EntitiesInScene(sceneID string) []*Entity {
	var out []*Entity
	for _, e := range r.entities {
		if e.InScene(sceneID) {
			out = append(out, e)
		}
	}
	return out
}

// --- Global UI plane pool ---

// AddPlane registers a plane in the global overlay pool. Pool planes render
// before scene-owned planes when their binding matches the active scene.
func (r *Runtime) AddPlane(p *Plane) {
	r.planes = append(r.planes, p)
}

// RemovePlane removes a plane from the global pool.
func (r *Runtime) RemovePlane(p *Plane) {
	for i, other := range r.planes {
		if other == p {
			copy(r.planes[i:], r.planes[i+1:])
			r.planes[len(r.planes)-1] = nil
			r.planes = r.planes[:len(r.planes)-1]
			return
		}
	}
}

// Pointer returns this frame's pointer state in world coordinates. Scripts
// use it for hit tests against entity positions.
func (r *Runtime) Pointer() PointerState {
	return r.pointerWorld()
}

// pointerState returns this frame's pointer, preferring an injected event
// over the real device.
func (r *Runtime) pointerState() PointerState {
	if r.injectCurrent != nil {
		return *r.injectCurrent
	}
	if r.pointer == nil {
		return PointerState{}
	}
	return r.pointer.Pointer()
}

// pointerWorld returns the pointer position in world coordinates, converted
// through the camera when one is attached.
func (r *Runtime) pointerWorld() PointerState {
	p := r.pointerState()
	if r.camera != nil {
		p.X, p.Y = r.camera.ScreenToWorld(p.X, p.Y)
	}
	return p
}

// removeEntity removes e from the slice, preserving order.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func removeEntity(s *[]*Entity, e *Entity) {
	list := *s
	for i, other := range list {
		if other == e {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			*s = list[:len(list)-1]
			return
		}
	}
}
