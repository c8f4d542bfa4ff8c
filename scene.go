package glade

import (
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionType selects the visual effect played while a scene renders.
type TransitionType uint8

const (
	TransitionFade  TransitionType = iota // black overlay fading out
	TransitionSlide                       // content sliding in from an offset
)

// Transition is a timed visual effect driven by a fixed 1/60 s step,
// independent of activation logic. It self-clears on completion.
type Transition struct {
	Type      TransitionType
	Duration  float32
	SlideFrom Vec2

	tween *gween.Tween
	value float32
	done  bool
}

// Progress returns the normalized progress in [0, 1].
func (t *Transition) Progress() float32 {
	return t.value
}

// advance moves progress forward by dt and reports completion.
func (t *Transition) advance(dt float32) bool {
	v, done := t.tween.Update(dt)
	t.value = v
	t.done = done
	return done
}

// Scene is a named, exclusively-activatable container of entities and overlay
// planes. At most one scene is active per frame; the runtime's scene manager
// resolves the winner with a full scan and cascades the active flag to member
// entities.
type Scene struct {
	id string
	rt *Runtime

	// Background is the fill cleared before the scene's content each frame.
	Background Color
	// Paused suppresses script, entity, and plane updates and the render
	// pass; the scene remains selectable as active.
	Paused bool

	entities []*Entity
	planes   []*Plane
	scripts  []func(*Scene)

	active      bool
	wasActive   bool
	activatedAt time.Time
	timeActive  float64

	transition *Transition
	tags       map[string]struct{}

	onActivate   []func(*Scene)
	onDeactivate []func(*Scene)
	onUpdate     []func(*Scene)
}

// NewScene registers a scene under a unique id. An empty or duplicate id is a
// programmer error and panics. Entities already declaring membership by this
// id become members in registry order.
func NewScene(rt *Runtime, id string) *Scene {
	if id == "" {
		panic("glade: scene id must not be empty")
	}
	if _, exists := rt.sceneByID[id]; exists {
		panic(fmt.Sprintf("glade: duplicate scene id %q", id))
	}
	s := &Scene{id: id, rt: rt, Background: ColorBlack}
	for _, e := range rt.entities {
		if e.InScene(id) {
			s.entities = append(s.entities, e)
		}
	}
	rt.scenes = append(rt.scenes, s)
	rt.sceneByID[id] = s
	return s
}

// ID returns the scene's unique identifier.
func (s *Scene) ID() string {
	return s.id
}

// IsActive reports whether this scene won the most recent frame resolution.
func (s *Scene) IsActive() bool {
	return s.active
}

// ActivatedAt returns the wall-clock timestamp of the last activation edge.
func (s *Scene) ActivatedAt() time.Time {
	return s.activatedAt
}

// TimeActive returns the cumulative time, in seconds, this scene has spent
// active.
func (s *Scene) TimeActive() float64 {
	return s.timeActive
}

// Members returns the scene's member entities in insertion order.
// The returned slice MUST NOT be mutated.
func (s *Scene) Members() []*Entity {
	return s.entities
}

// AddScript appends a per-frame scene script, run while the scene is active
// and not paused.
func (s *Scene) AddScript(fn func(*Scene)) {
	s.scripts = append(s.scripts, fn)
}

// OnActivate registers a callback fired exactly once per activation edge.
func (s *Scene) OnActivate(fn func(*Scene)) {
	s.onActivate = append(s.onActivate, fn)
}

// OnDeactivate registers a callback fired once per deactivation edge,
// including the forced-inactive cascade when another scene takes over.
func (s *Scene) OnDeactivate(fn func(*Scene)) {
	s.onDeactivate = append(s.onDeactivate, fn)
}

// OnUpdate registers a callback run every active, unpaused frame.
func (s *Scene) OnUpdate(fn func(*Scene)) {
	s.onUpdate = append(s.onUpdate, fn)
}

// AddPlane attaches a scene-owned overlay plane. Scene-owned planes render
// after matching planes from the runtime's global pool.
func (s *Scene) AddPlane(p *Plane) {
	s.planes = append(s.planes, p)
}

// --- Tags ---

// Tag adds a grouping tag. Tags are not exclusive.
func (s *Scene) Tag(tag string) {
	if s.tags == nil {
		s.tags = make(map[string]struct{})
	}
	s.tags[tag] = struct{}{}
}

// Untag removes a grouping tag.
func (s *Scene) Untag(tag string) {
	delete(s.tags, tag)
}

// HasTag reports whether the scene carries the given tag.
func (s *Scene) HasTag(tag string) bool {
	_, ok := s.tags[tag]
	return ok
}

// --- Transitions ---

// FadeIn starts a fade transition: a black overlay over the scene content
// whose alpha falls from 1 to 0 over duration seconds.
func (s *Scene) FadeIn(duration float32) {
	s.transition = &Transition{
		Type:     TransitionFade,
		Duration: duration,
		tween:    gween.New(0, 1, duration, ease.Linear),
	}
}

// SlideIn starts a slide transition: the scene content starts offset by
// (fromX, fromY) and eases to its resting position over duration seconds.
func (s *Scene) SlideIn(fromX, fromY float64, duration float32) {
	s.transition = &Transition{
		Type:      TransitionSlide,
		Duration:  duration,
		SlideFrom: Vec2{fromX, fromY},
		tween:     gween.New(0, 1, duration, ease.OutQuad),
	}
}

// Transition returns the in-progress transition, or nil.
func (s *Scene) Transition() *Transition {
	return s.transition
}

// --- Lifecycle ---

// activate marks the scene as this frame's winner, firing on-activate exactly
// once per edge and cascading the active flag to member entities.
func (s *Scene) activate(now time.Time) {
	s.active = true
	if !s.wasActive {
		s.activatedAt = now
		for _, fn := range s.onActivate {
			fn(s)
		}
	}
	s.wasActive = true
	s.timeActive += frameStep
	for _, e := range s.entities {
		e.Active = true
	}
}

// deactivate forces the scene inactive, firing on-deactivate once per edge
// and cascading to member entities.
func (s *Scene) deactivate() {
	if s.wasActive {
		for _, fn := range s.onDeactivate {
			fn(s)
		}
	}
	s.active = false
	s.wasActive = false
	for _, e := range s.entities {
		e.Active = false
		if e.parent == s {
			e.parent = nil
		}
	}
}

// step advances the transition and runs scene scripts and on-update
// callbacks. Member entity physics is driven by the registry pass.
func (s *Scene) step() {
	if s.transition != nil {
		if s.transition.advance(frameStep) {
			s.transition = nil
		}
	}
	scripts := append(([]func(*Scene))(nil), s.scripts...)
	for _, fn := range scripts {
		fn(s)
	}
	for _, fn := range s.onUpdate {
		fn(s)
	}
}

// Destroy unregisters the scene and clears its members' membership
// back-references. If this was the active scene, the runtime reverts to the
// default scene id. Member entities themselves stay alive.
func (s *Scene) Destroy() {
	rt := s.rt
	for i, sc := range rt.scenes {
		if sc == s {
			copy(rt.scenes[i:], rt.scenes[i+1:])
			rt.scenes[len(rt.scenes)-1] = nil
			rt.scenes = rt.scenes[:len(rt.scenes)-1]
			break
		}
	}
	delete(rt.sceneByID, s.id)
	for _, e := range s.entities {
		for i, id := range e.scenes {
			if id == s.id {
				e.scenes = append(e.scenes[:i], e.scenes[i+1:]...)
				break
			}
		}
		if e.parent == s {
			e.parent = nil
		}
	}
	s.entities = nil
	if rt.activeID == s.id {
		rt.activeID = DefaultSceneID
	}
	if rt.active == s {
		rt.active = nil
	}
}
