package scene

import "github.com/thinthought/spyke/internal/core"

// Effect is the additive per-second contribution of one rule to an entity's
// state. Aggregation over ancestor environments is a plain component-wise
// sum, which makes rule combination commutative and associative: the order
// in which environments are visited cannot change the result.
type Effect struct {
	// Accel is added to the entity's velocity, scaled by dt.
	Accel core.Vec2

	// Damping is an exponential velocity decay rate in 1/s. Rates from
	// multiple environments sum before being applied once per tick.
	Damping float64
}

// Add returns the component-wise sum of two effects.
func (e Effect) Add(o Effect) Effect {
	return Effect{
		Accel:   e.Accel.Add(o.Accel),
		Damping: e.Damping + o.Damping,
	}
}

// IsZero reports whether the effect contributes nothing.
func (e Effect) IsZero() bool {
	return e.Accel == (core.Vec2{}) && e.Damping == 0
}

// Rule is a single environment effect declaration. Rules apply to the
// environment's direct child entities only, not transitively through
// nested environments.
type Rule interface {
	// Name identifies the rule for inspection and debug output.
	Name() string

	// Effect computes the rule's additive contribution for one entity.
	// The state is a read-only view; rules never mutate it directly.
	Effect(st State) Effect
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc struct {
	RuleName string
	Fn       func(st State) Effect
}

// Name implements Rule.
func (r RuleFunc) Name() string { return r.RuleName }

// Effect implements Rule.
func (r RuleFunc) Effect(st State) Effect { return r.Fn(st) }

// EffectFor computes the summed effect of every environment on the path
// from the entity's owning environment up to the root. The walk is
// recomputed on every call rather than cached, so structural changes
// between ticks are always reflected.
func (s *Scene) EffectFor(id EntityID) (Effect, error) {
	ent, ok := s.entities[id]
	if !ok {
		return Effect{}, ErrNotFound
	}

	var sum Effect
	st := ent.state
	envID := ent.parent
	for envID != RootEnvironment {
		env := s.environments[envID]
		for _, r := range env.behavior.Rules() {
			sum = sum.Add(r.Effect(st))
		}
		if env.parent == Root {
			break
		}
		owner := s.entities[env.parent]
		envID = owner.parent
	}
	return sum, nil
}

// RulesFor returns the rules of every ancestor environment of the entity in
// root-to-leaf order. Intended for inspection and tests; Update uses
// EffectFor directly.
func (s *Scene) RulesFor(id EntityID) ([]Rule, error) {
	ent, ok := s.entities[id]
	if !ok {
		return nil, ErrNotFound
	}

	// Collect leaf-to-root, then reverse.
	var chain []EnvironmentID
	envID := ent.parent
	for envID != RootEnvironment {
		chain = append(chain, envID)
		env := s.environments[envID]
		if env.parent == Root {
			break
		}
		envID = s.entities[env.parent].parent
	}

	var rules []Rule
	for i := len(chain) - 1; i >= 0; i-- {
		rules = append(rules, s.environments[chain[i]].behavior.Rules()...)
	}
	return rules, nil
}

// applyEffect folds a summed effect into an entity's state for one tick.
// Acceleration integrates into velocity; the summed damping rate decays
// velocity multiplicatively, floored at a full stop.
func applyEffect(st *State, eff Effect, dt float64) {
	st.Vel = st.Vel.Add(eff.Accel.Scale(dt))
	if eff.Damping > 0 {
		decay := 1 - eff.Damping*dt
		if decay < 0 {
			decay = 0
		}
		st.Vel = st.Vel.Scale(decay)
	}
}
