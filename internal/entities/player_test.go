package entities

import (
	"testing"

	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/registry"
	"github.com/thinthought/spyke/internal/scene"
)

func newTestPlayer(t *testing.T) *Player {
	t.Helper()
	ent, err := registry.CreateEntity("entities/player", core.V(0, 0), nil)
	if err != nil {
		t.Fatalf("CreateEntity() failed: %v", err)
	}
	p, ok := ent.(*Player)
	if !ok {
		t.Fatalf("Expected *Player, got %T", ent)
	}
	return p
}

func playerContext(in core.InputFrame) *scene.Context {
	return &scene.Context{
		Input:    in,
		Viewport: core.NewRect(0, 0, 80, 24),
	}
}

func TestPlayerRunsRight(t *testing.T) {
	p := newTestPlayer(t)
	st := scene.State{Pos: core.V(10, 23)}

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	p.Update(playerContext(in), &st, 0.1)

	if st.Vel.X <= 0 {
		t.Errorf("Expected rightward velocity, got %v", st.Vel.X)
	}
	if st.Pos.X <= 10 {
		t.Errorf("Expected rightward movement, got %v", st.Pos.X)
	}
}

func TestPlayerSpeedClamped(t *testing.T) {
	p := newTestPlayer(t)
	st := scene.State{Pos: core.V(40, 23)}

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for i := 0; i < 100; i++ {
		p.Update(playerContext(in), &st, 0.1)
	}

	if st.Vel.X > p.MaxRunSpeed {
		t.Errorf("Velocity %v exceeds max run speed %v", st.Vel.X, p.MaxRunSpeed)
	}
}

func TestPlayerJumpsOnlyWhenGrounded(t *testing.T) {
	p := newTestPlayer(t)

	// On the viewport floor
	st := scene.State{Pos: core.V(10, 23)}
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	p.Update(playerContext(in), &st, 0.01)
	if st.Vel.Y >= 0 {
		t.Errorf("Expected upward velocity after grounded jump, got %v", st.Vel.Y)
	}

	// Mid-air: jump input is ignored
	st = scene.State{Pos: core.V(10, 5)}
	p.Update(playerContext(in), &st, 0.01)
	if st.Vel.Y < 0 {
		t.Errorf("Mid-air jump must not work, got velocity %v", st.Vel.Y)
	}
}

func TestPlayerStaysInsideViewport(t *testing.T) {
	p := newTestPlayer(t)

	st := scene.State{Pos: core.V(0, 23), Vel: core.V(-50, 0)}
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	for i := 0; i < 50; i++ {
		p.Update(playerContext(in), &st, 0.1)
	}

	if st.Pos.X < 0 {
		t.Errorf("Player escaped left wall: %v", st.Pos.X)
	}
	if st.Vel.X < 0 {
		t.Errorf("Expected wall to stop leftward velocity, got %v", st.Vel.X)
	}
}

func TestPlayerFloatsWithoutGravity(t *testing.T) {
	// The player itself has no gravity; without an environment pulling it
	// down it floats in place
	p := newTestPlayer(t)
	st := scene.State{Pos: core.V(10, 5)}

	p.Update(playerContext(core.NewInputFrame()), &st, 0.1)

	if st.Vel.Y != 0 {
		t.Errorf("Expected no vertical motion without gravity, got %v", st.Vel.Y)
	}
}
