package glade

import "math"

const (
	// bounceFloor zeroes reflected velocities below this magnitude to stop
	// sub-pixel jitter on landing.
	bounceFloor = 0.1
	// frictionFloor zeroes grounded horizontal velocities below this magnitude.
	frictionFloor = 0.01
)

// integrate runs one physics step in fixed order: gravity accumulation and
// ground resolution first (when enabled), then velocity-to-position
// integration. A gravity-enabled entity fully cedes vertical motion to the
// gravity step; a grounded entity cedes horizontal motion to the friction
// step.
func (e *Entity) integrate() {
	if e.Gravity {
		e.fall()
	}
	e.advance()
}

// fall accumulates vertical velocity, clamps the falling side to the
// runtime's terminal velocity, tentatively advances y, and probes for ground.
func (e *Entity) fall() {
	e.FallVelocity += e.rt.Gravity * e.mass
	if e.FallVelocity > e.rt.TerminalVelocity {
		e.FallVelocity = e.rt.TerminalVelocity
	}
	e.Y += e.FallVelocity

	wasGrounded := e.Grounded
	e.Grounded = false
	if !e.Collidable || e.FallVelocity < 0 {
		return
	}
	ground := e.probeGround()
	if ground == nil {
		return
	}

	restY := ground.Y - ground.Height/2 - e.Height/2
	if !wasGrounded && e.bounce > 0 {
		v := -e.FallVelocity * e.bounce
		if math.Abs(v) < bounceFloor {
			v = 0
		}
		e.FallVelocity = v
		if v != 0 {
			// Reflected upward; still airborne this frame.
			return
		}
	}
	e.Grounded = true
	e.Y = restY
	e.FallVelocity = 0
	e.slide()
}

// probeGround scans the other active entities of the parent scene for a
// surface directly beneath this entity: the gap between this entity's bottom
// edge and the other's top edge must be within GroundTolerance and the
// horizontal extents must overlap. First match wins.
func (e *Entity) probeGround() *Entity {
	sc := e.parent
	if sc == nil {
		return nil
	}
	bottom := e.Y + e.Height/2
	for _, o := range sc.entities {
		if o == e || o.destroyed || !o.Active || !o.Collidable {
			continue
		}
		gap := (o.Y - o.Height/2) - bottom
		if math.Abs(gap) > e.GroundTolerance {
			continue
		}
		if math.Abs(e.X-o.X) >= (e.Width+o.Width)/2 {
			continue
		}
		return o
	}
	return nil
}

// slide applies grounded horizontal friction to the stored velocity and
// advances x by the result. The generic advance step skips horizontal motion
// while grounded so this runs exactly once per frame.
func (e *Entity) slide() {
	if e.friction > 0 {
		damp := 1 - e.friction
		switch e.VelocityMode {
		case VelocityCartesian:
			e.VX *= damp
			if math.Abs(e.VX) < frictionFloor {
				e.VX = 0
			}
		case VelocityPolar:
			e.Speed *= damp
			if math.Abs(e.Speed) < frictionFloor {
				e.Speed = 0
			}
		}
	}
	vx, _ := e.velocityVector()
	e.X += vx
}

// advance performs velocity-to-position integration. Vertical motion is owned
// by the gravity step when gravity is enabled; horizontal motion is owned by
// the friction step while grounded.
func (e *Entity) advance() {
	vx, vy := e.velocityVector()
	if !e.Grounded {
		e.X += vx
	}
	if !e.Gravity {
		e.Y += vy
	}
}

// velocityVector resolves the entity's velocity to cartesian components.
// NaN inputs are absorbed: the stored speed and angle reset to zero rather
// than propagating into the position.
func (e *Entity) velocityVector() (float64, float64) {
	if e.VelocityMode == VelocityCartesian {
		if math.IsNaN(e.VX) {
			e.VX = 0
		}
		if math.IsNaN(e.VY) {
			e.VY = 0
		}
		return e.VX, e.VY
	}
	angle := e.Angle
	if e.LinkVelocityToRotation {
		angle = e.Rotation
	}
	if math.IsNaN(angle) || math.IsNaN(e.Speed) {
		e.Speed = 0
		e.Angle = 0
		return 0, 0
	}
	if e.AngleMode == Degrees {
		angle *= math.Pi / 180
	}
	sin, cos := math.Sincos(angle)
	return cos * e.Speed, sin * e.Speed
}
