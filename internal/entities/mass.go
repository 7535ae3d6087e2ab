// Package entities provides the built-in entity catalog: interactive
// objects placed inside environments.
package entities

import (
	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/registry"
	"github.com/thinthought/spyke/internal/scene"
)

const minMass = 1e-4

func init() {
	// Mass is a building block for concrete entities, not something an
	// editor places directly.
	registry.Register(registry.Entry{
		Kind:     registry.KindEntity,
		Name:     "entities/mass",
		Abstract: true,
	})
}

// Mass provides force-accumulator physics for embedding in concrete
// entities. Forces and accelerations accumulate during a tick and are
// folded into the entity's state by Integrate, which clears the
// accumulator.
//
// Units are cells and seconds: positions in cells, velocities in cells/s,
// accelerations in cells/s².
type Mass struct {
	scene.BaseEntity

	// Kg is the entity's mass. Values below a small floor are clamped to
	// keep force division stable.
	Kg float64

	forces core.Vec2 // accumulated force for the current tick
}

// NewMass creates a mass building block, clamping tiny or non-positive
// masses.
func NewMass(kg float64) Mass {
	if kg < minMass {
		kg = minMass
	}
	return Mass{Kg: kg}
}

// ApplyForce accumulates a force for the current tick.
func (m *Mass) ApplyForce(f core.Vec2) {
	m.forces = m.forces.Add(f)
}

// ApplyAcceleration accumulates a mass-independent acceleration (gravity
// boosts, knockback) for the current tick.
func (m *Mass) ApplyAcceleration(a core.Vec2) {
	m.forces = m.forces.Add(a.Scale(m.Kg))
}

// Integrate advances velocity and position by dt seconds and clears the
// force accumulator. Non-positive dt only clears.
func (m *Mass) Integrate(st *scene.State, dt float64) {
	if dt <= 0 {
		m.forces = core.Vec2{}
		return
	}

	accel := m.forces.Scale(1 / m.Kg)
	st.Vel = st.Vel.Add(accel.Scale(dt))
	st.Pos = st.Pos.Add(st.Vel.Scale(dt))

	m.forces = core.Vec2{}
}

// ClampVelocityX limits horizontal speed to max cells/s in either
// direction.
func (m *Mass) ClampVelocityX(st *scene.State, max float64) {
	st.Vel.X = core.ClampF(st.Vel.X, -max, max)
}

// ApplyDampingX accumulates a linear friction force against horizontal
// motion: F = -m · rate · vx.
func (m *Mass) ApplyDampingX(st *scene.State, rate float64) {
	if rate <= 0 {
		return
	}
	m.ApplyForce(core.V(-m.Kg*rate*st.Vel.X, 0))
}
