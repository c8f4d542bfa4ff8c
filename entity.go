package glade

import "math"

// Extension is implemented by entity specializations (Button). The base
// entity drives both phases: Update runs after physics integration, Render
// runs after the base shape has been drawn.
type Extension interface {
	Update(*Entity)
	Render(*Entity, Renderer)
}

// Entity is a positioned, updatable, renderable simulation object. Position
// is the rectangle's center. Entities are created through Runtime.Spawn and
// belong to one or more scenes by id; the scene manager drives their active
// flag.
type Entity struct {
	id uint64
	rt *Runtime

	// Transform
	X, Y          float64
	Width, Height float64
	Rotation      float64
	AngleMode     AngleMode

	// Kinematics. VelocityMode selects which pair is live.
	VelocityMode           VelocityMode
	Speed, Angle           float64
	VX, VY                 float64
	LinkVelocityToRotation bool

	// Gravity state
	Gravity         bool
	FallVelocity    float64
	Grounded        bool
	GroundTolerance float64
	Collidable      bool
	mass            float64
	bounce          float64
	friction        float64

	// Visibility. Active is membership-driven: the scene manager sets it
	// each frame, user code should not. Visible suppresses rendering only;
	// Debug draws the hitbox overlay regardless of Visible.
	Active  bool
	Visible bool
	Debug   bool

	// Visual
	Fill         Color
	Outline      Color
	OutlineWidth float64

	scenes  []string
	parent  *Scene
	scripts []func(*Entity)

	ext       Extension
	destroyed bool
}

const defaultGroundTolerance = 5.0

// ID returns the entity's registry id. Ids are unique for the life of the
// process and never reused.
func (e *Entity) ID() uint64 {
	return e.id
}

// IsDestroyed reports whether the entity has been removed from the registry.
func (e *Entity) IsDestroyed() bool {
	return e.destroyed
}

// Destroy removes the entity from its runtime's registry and every scene
// member list.
func (e *Entity) Destroy() {
	e.rt.Destroy(e)
}

// SetExtension attaches a specialization. Pass nil to detach.
func (e *Entity) SetExtension(ext Extension) {
	e.ext = ext
}

// Extension returns the attached specialization, or nil.
func (e *Entity) Extension() Extension {
	return e.ext
}

// --- Gravity parameter accessors (clamped invariants) ---

// SetMass sets the gravity mass multiplier. Values below 0.1 are clamped.
func (e *Entity) SetMass(m float64) {
	if m < 0.1 {
		m = 0.1
	}
	e.mass = m
}

// Mass returns the gravity mass multiplier.
func (e *Entity) Mass() float64 {
	return e.mass
}

// SetBounce sets the bounce coefficient, clamped to [0, 1].
func (e *Entity) SetBounce(b float64) {
	e.bounce = clamp01(b)
}

// Bounce returns the bounce coefficient.
func (e *Entity) Bounce() float64 {
	return e.bounce
}

// SetFriction sets the grounded horizontal friction coefficient, clamped to
// [0, 1].
func (e *Entity) SetFriction(f float64) {
	e.friction = clamp01(f)
}

// Friction returns the friction coefficient.
func (e *Entity) Friction() float64 {
	return e.friction
}

// --- Scene membership ---

// InScene reports whether the entity belongs to the given scene id.
func (e *Entity) InScene(sceneID string) bool {
	for _, id := range e.scenes {
		if id == sceneID {
			return true
		}
	}
	return false
}

// SceneIDs returns the entity's scene membership set in declaration order.
// The returned slice MUST NOT be mutated.
func (e *Entity) SceneIDs() []string {
	return e.scenes
}

// AddToScene adds the entity to a scene's membership. No-op if already a
// member. The scene need not exist yet; membership binds by id.
func (e *Entity) AddToScene(sceneID string) {
	if e.InScene(sceneID) {
		return
	}
	e.scenes = append(e.scenes, sceneID)
	if sc := e.rt.sceneByID[sceneID]; sc != nil {
		sc.entities = append(sc.entities, e)
	}
}

// RemoveFromScene removes the entity from a scene's membership.
func (e *Entity) RemoveFromScene(sceneID string) {
	for i, id := range e.scenes {
		if id == sceneID {
			e.scenes = append(e.scenes[:i], e.scenes[i+1:]...)
			break
		}
	}
	if sc := e.rt.sceneByID[sceneID]; sc != nil {
		removeEntity(&sc.entities, e)
	}
	if e.parent != nil && e.parent.id == sceneID {
		e.parent = nil
	}
}

// ParentScene returns the currently active scene this entity belongs to.
// Refreshed each update; nil when the entity is not a member of the active
// scene.
func (e *Entity) ParentScene() *Scene {
	return e.parent
}

// AddScript appends a per-frame behavior script. Scripts run during the
// render pass in registration order with the entity as argument.
func (e *Entity) AddScript(fn func(*Entity)) {
	e.scripts = append(e.scripts, fn)
}

// --- Per-frame pipeline ---

// update is the registry-driven update step: no-op when inactive, refreshes
// the parent-scene back-reference, runs the physics integrator, then the
// extension hook.
func (e *Entity) update() {
	if !e.Active {
		return
	}
	e.refreshParent()
	if e.parent != nil && e.parent.Paused {
		return
	}
	e.integrate()
	if e.ext != nil {
		e.ext.Update(e)
	}
}

func (e *Entity) refreshParent() {
	if e.rt.active != nil && e.InScene(e.rt.active.id) {
		e.parent = e.rt.active
	} else {
		e.parent = nil
	}
}

// render draws the entity: no-op when inactive; scripts run first, then the
// debug overlay (independent of Visible), then the base shape, then the
// extension's overlay phase.
func (e *Entity) render(rd Renderer) {
	if !e.Active {
		return
	}
	for _, fn := range e.scripts {
		fn(e)
	}
	if e.Debug {
		e.renderDebug(rd)
	}
	if !e.Visible {
		return
	}
	rd.Push()
	rd.Translate(e.X, e.Y)
	if rot := e.rotationRadians(); rot != 0 {
		rd.Rotate(rot)
	}
	rd.FillRect(-e.Width/2, -e.Height/2, e.Width, e.Height, e.Fill)
	if e.OutlineWidth > 0 {
		rd.StrokeRect(-e.Width/2, -e.Height/2, e.Width, e.Height, e.OutlineWidth, e.Outline)
	}
	rd.Pop()
	if e.ext != nil {
		e.ext.Render(e, rd)
	}
}

// rotationRadians returns the rotation in radians per the angle mode.
// NaN rotation is treated as zero.
func (e *Entity) rotationRadians() float64 {
	rot := e.Rotation
	if math.IsNaN(rot) {
		return 0
	}
	if e.AngleMode == Degrees {
		rot *= math.Pi / 180
	}
	return rot
}

// --- Geometry helpers ---

// DistanceTo returns the Euclidean distance from the entity's center to the
// given point.
func (e *Entity) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-e.X, y-e.Y)
}

// DistanceToEntity returns the center-to-center distance to another entity.
func (e *Entity) DistanceToEntity(o *Entity) float64 {
	return e.DistanceTo(o.X, o.Y)
}

// CollidesWith performs an axis-aligned overlap test treating X/Y as top-left
// corners and Width/Height as full extents. Callers must use the same corner
// convention on both sides.
func (e *Entity) CollidesWith(o *Entity) bool {
	return Rect{e.X, e.Y, e.Width, e.Height}.
		Intersects(Rect{o.X, o.Y, o.Width, o.Height})
}

// DirectionTo returns the direction from the entity to the target point in
// degrees: 0 is right, 90 is down, -90 is up, 180 is left. When the target is
// within err of the entity on both axes there is no direction and NaN is
// returned.
func (e *Entity) DirectionTo(x, y, err float64) float64 {
	dx := x - e.X
	dy := y - e.Y
	withinX := math.Abs(dx) <= err
	withinY := math.Abs(dy) <= err
	switch {
	case withinX && withinY:
		return math.NaN()
	case withinX:
		if dy > 0 {
			return 90
		}
		return -90
	case withinY:
		if dx > 0 {
			return 0
		}
		return 180
	}
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// SetVelocityToward sets a polar velocity aimed at the given point. When the
// direction is undefined (within err on both axes) speed and angle are
// zeroed instead.
func (e *Entity) SetVelocityToward(speed, x, y, err float64) {
	e.VelocityMode = VelocityPolar
	dir := e.DirectionTo(x, y, err)
	if math.IsNaN(dir) {
		e.Speed = 0
		e.Angle = 0
		return
	}
	e.Speed = speed
	if e.AngleMode == Radians {
		dir *= math.Pi / 180
	}
	e.Angle = dir
}

// OnScreen reports whether the entity's bounding box intersects the camera's
// visible area. Without a camera every entity is considered on screen.
func (e *Entity) OnScreen() bool {
	cam := e.rt.camera
	if cam == nil {
		return true
	}
	box := Rect{e.X - e.Width/2, e.Y - e.Height/2, e.Width, e.Height}
	return cam.VisibleBounds().Intersects(box)
}

// Clone registers a new entity with identical transform, kinematics, gravity,
// visual, membership, and script state but a distinct id and registry slot.
// The extension is not carried over.
func (e *Entity) Clone() *Entity {
	c := e.rt.Spawn(e.X, e.Y, e.Width, e.Height, e.scenes...)
	c.Rotation = e.Rotation
	c.AngleMode = e.AngleMode
	c.VelocityMode = e.VelocityMode
	c.Speed = e.Speed
	c.Angle = e.Angle
	c.VX = e.VX
	c.VY = e.VY
	c.LinkVelocityToRotation = e.LinkVelocityToRotation
	c.Gravity = e.Gravity
	c.FallVelocity = e.FallVelocity
	c.GroundTolerance = e.GroundTolerance
	c.Collidable = e.Collidable
	c.mass = e.mass
	c.bounce = e.bounce
	c.friction = e.friction
	c.Visible = e.Visible
	c.Debug = e.Debug
	c.Fill = e.Fill
	c.Outline = e.Outline
	c.OutlineWidth = e.OutlineWidth
	c.scripts = append(([]func(*Entity))(nil), e.scripts...)
	return c
}
