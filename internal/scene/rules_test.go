package scene

import (
	"math"
	"testing"

	"github.com/thinthought/spyke/internal/core"
)

// accelEnv contributes a constant acceleration to its children.
func accelEnv(name string, ax, ay float64) *recordingEnv {
	return &recordingEnv{
		name: name,
		rules: []Rule{RuleFunc{
			RuleName: name,
			Fn: func(State) Effect {
				return Effect{Accel: core.V(ax, ay)}
			},
		}},
	}
}

// dampEnv contributes a constant damping rate to its children.
func dampEnv(name string, rate float64) *recordingEnv {
	return &recordingEnv{
		name: name,
		rules: []Rule{RuleFunc{
			RuleName: name,
			Fn: func(State) Effect {
				return Effect{Damping: rate}
			},
		}},
	}
}

func TestEffectSumsAcrossNesting(t *testing.T) {
	s := New()

	outer, _ := s.CreateEnvironment(Root, accelEnv("outer", 0, 10))
	anchor, _ := s.CreateEntity(outer, &recordingEnt{name: "anchor"}, State{})
	inner, _ := s.CreateEnvironment(anchor, accelEnv("inner", 2, 5))
	leaf, _ := s.CreateEntity(inner, &recordingEnt{name: "leaf"}, State{})

	// The leaf sees both its own environment and the outer one
	eff, err := s.EffectFor(leaf)
	if err != nil {
		t.Fatalf("EffectFor() failed: %v", err)
	}
	if eff.Accel.X != 2 || eff.Accel.Y != 15 {
		t.Errorf("Expected summed accel (2, 15), got (%v, %v)", eff.Accel.X, eff.Accel.Y)
	}

	// The anchor only sees the outer environment
	eff, err = s.EffectFor(anchor)
	if err != nil {
		t.Fatalf("EffectFor() failed: %v", err)
	}
	if eff.Accel.X != 0 || eff.Accel.Y != 10 {
		t.Errorf("Expected accel (0, 10), got (%v, %v)", eff.Accel.X, eff.Accel.Y)
	}
}

func TestVoidEnvironmentContributesNothing(t *testing.T) {
	s := New()

	// A rule-less environment between two accel environments must not
	// change the sum
	outer, _ := s.CreateEnvironment(Root, accelEnv("outer", 0, 10))
	anchor, _ := s.CreateEntity(outer, &recordingEnt{name: "anchor"}, State{})
	void, _ := s.CreateEnvironment(anchor, &recordingEnv{name: "void"})
	mid, _ := s.CreateEntity(void, &recordingEnt{name: "mid"}, State{})
	inner, _ := s.CreateEnvironment(mid, accelEnv("inner", 0, 5))
	leaf, _ := s.CreateEntity(inner, &recordingEnt{name: "leaf"}, State{})

	eff, err := s.EffectFor(leaf)
	if err != nil {
		t.Fatalf("EffectFor() failed: %v", err)
	}
	if eff.Accel.Y != 15 {
		t.Errorf("Expected accel Y 15 through void environment, got %v", eff.Accel.Y)
	}
}

func TestRuleOrderIrrelevant(t *testing.T) {
	// Build the same two-environment stack with swapped rule owners; the
	// aggregated effect must be identical because combination is a sum
	build := func(first, second Environment) (Effect, error) {
		s := New()
		outer, _ := s.CreateEnvironment(Root, first)
		anchor, _ := s.CreateEntity(outer, &recordingEnt{name: "anchor"}, State{})
		inner, _ := s.CreateEnvironment(anchor, second)
		leaf, _ := s.CreateEntity(inner, &recordingEnt{name: "leaf"}, State{})
		return s.EffectFor(leaf)
	}

	a, err := build(accelEnv("g", 0, 10), dampEnv("d", 0.5))
	if err != nil {
		t.Fatalf("EffectFor() failed: %v", err)
	}
	b, err := build(dampEnv("d", 0.5), accelEnv("g", 0, 10))
	if err != nil {
		t.Fatalf("EffectFor() failed: %v", err)
	}

	if a != b {
		t.Errorf("Effect depends on environment order: %+v vs %+v", a, b)
	}
	if a.Accel.Y != 10 || a.Damping != 0.5 {
		t.Errorf("Expected accel Y 10, damping 0.5, got %+v", a)
	}
}

func TestDampingAppliesOnlyInsideZone(t *testing.T) {
	s := New()

	plain, _ := s.CreateEnvironment(Root, &recordingEnv{name: "plain"})
	damped, _ := s.CreateEnvironment(Root, dampEnv("damped", 0.02))

	a, _ := s.CreateEntity(plain, &recordingEnt{name: "a"}, State{Vel: core.V(10, 0)})
	b, _ := s.CreateEntity(damped, &recordingEnt{name: "b"}, State{Vel: core.V(10, 0)})

	if err := s.Update(core.NewInputFrame(), 1.0); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	stA, _ := s.EntityState(a)
	stB, _ := s.EntityState(b)

	// Outside the zone nothing changes
	if stA.Vel.X != 10 {
		t.Errorf("Expected unaffected velocity 10, got %v", stA.Vel.X)
	}

	// Inside the zone velocity decays by the rate once per tick
	want := 10 * (1 - 0.02)
	if math.Abs(stB.Vel.X-want) > 1e-9 {
		t.Errorf("Expected damped velocity %v, got %v", want, stB.Vel.X)
	}
}

func TestApplyEffectFloorsAtStop(t *testing.T) {
	st := State{Vel: core.V(100, -3)}

	// Damping strong enough to overshoot must stop, not reverse
	applyEffect(&st, Effect{Damping: 5}, 1.0)

	if st.Vel.X != 0 || st.Vel.Y != 0 {
		t.Errorf("Expected full stop, got (%v, %v)", st.Vel.X, st.Vel.Y)
	}
}

func TestRulesForRootToLeafOrder(t *testing.T) {
	s := New()

	outer, _ := s.CreateEnvironment(Root, accelEnv("outer", 0, 1))
	anchor, _ := s.CreateEntity(outer, &recordingEnt{name: "anchor"}, State{})
	inner, _ := s.CreateEnvironment(anchor, accelEnv("inner", 0, 2))
	leaf, _ := s.CreateEntity(inner, &recordingEnt{name: "leaf"}, State{})

	rules, err := s.RulesFor(leaf)
	if err != nil {
		t.Fatalf("RulesFor() failed: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("Expected 2 rules, got %d", len(rules))
	}
	if rules[0].Name() != "outer" || rules[1].Name() != "inner" {
		t.Errorf("Expected root-to-leaf order [outer inner], got [%s %s]",
			rules[0].Name(), rules[1].Name())
	}
}
