package entities

import (
	"math"
	"testing"

	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/scene"
)

func TestMassClampsTinyValues(t *testing.T) {
	m := NewMass(0)
	if m.Kg <= 0 {
		t.Errorf("Expected clamped positive mass, got %v", m.Kg)
	}

	m = NewMass(-5)
	if m.Kg <= 0 {
		t.Errorf("Expected clamped positive mass for negative input, got %v", m.Kg)
	}
}

func TestMassIntegrate(t *testing.T) {
	m := NewMass(2)
	st := scene.State{}

	// F = 2 * a, so a force of (4, 0) on 2kg gives a = (2, 0)
	m.ApplyForce(core.V(4, 0))
	m.Integrate(&st, 1.0)

	if st.Vel.X != 2 {
		t.Errorf("Expected velocity 2, got %v", st.Vel.X)
	}
	if st.Pos.X != 2 {
		t.Errorf("Expected position 2, got %v", st.Pos.X)
	}

	// Forces are cleared after integration: coasting, no acceleration
	m.Integrate(&st, 1.0)
	if st.Vel.X != 2 {
		t.Errorf("Expected coasting velocity 2, got %v", st.Vel.X)
	}
	if st.Pos.X != 4 {
		t.Errorf("Expected position 4, got %v", st.Pos.X)
	}
}

func TestMassApplyAccelerationIgnoresMass(t *testing.T) {
	heavy := NewMass(100)
	light := NewMass(1)
	stHeavy := scene.State{}
	stLight := scene.State{}

	heavy.ApplyAcceleration(core.V(0, 10))
	light.ApplyAcceleration(core.V(0, 10))
	heavy.Integrate(&stHeavy, 1.0)
	light.Integrate(&stLight, 1.0)

	if math.Abs(stHeavy.Vel.Y-stLight.Vel.Y) > 1e-9 {
		t.Errorf("Acceleration should be mass-independent: %v vs %v",
			stHeavy.Vel.Y, stLight.Vel.Y)
	}
}

func TestClampVelocityX(t *testing.T) {
	m := NewMass(1)
	st := scene.State{Vel: core.V(50, 0)}

	m.ClampVelocityX(&st, 25)
	if st.Vel.X != 25 {
		t.Errorf("Expected clamped velocity 25, got %v", st.Vel.X)
	}

	st.Vel.X = -50
	m.ClampVelocityX(&st, 25)
	if st.Vel.X != -25 {
		t.Errorf("Expected clamped velocity -25, got %v", st.Vel.X)
	}
}

func TestApplyDampingXOpposesMotion(t *testing.T) {
	m := NewMass(1)
	st := scene.State{Vel: core.V(10, 0)}

	m.ApplyDampingX(&st, 4)
	m.Integrate(&st, 0.1)

	if st.Vel.X >= 10 {
		t.Errorf("Expected damping to slow motion, got %v", st.Vel.X)
	}
	if st.Vel.X < 0 {
		t.Errorf("Damping must not reverse motion at this dt, got %v", st.Vel.X)
	}
}
