package scene

import "github.com/thinthought/spyke/internal/core"

// Update advances the tree by one discrete time step of dt seconds.
//
// Each environment subtree is walked in two phases: first the summed rule
// effect of all ancestor environments is applied to each direct child
// entity's state, then the entity runs its own behavior and the walk
// recurses into any environments the entity owns. Sibling order is
// insertion order, which is stable and documented; effects are additive,
// so sibling order does not change results.
//
// Structural changes queued on the command buffer during the pass are
// flushed afterwards; the returned error joins any flush failures.
func (s *Scene) Update(in core.InputFrame, dt float64) error {
	ctx := &Context{
		Scene:    s,
		Input:    in,
		Commands: s.commands,
		Viewport: s.viewport,
	}

	s.inPass = true
	for _, envID := range s.rootEnvs {
		s.updateEnvironment(envID, ctx, dt)
	}
	s.inPass = false

	return s.commands.flush(s)
}

func (s *Scene) updateEnvironment(id EnvironmentID, ctx *Context, dt float64) {
	env := s.environments[id]
	env.behavior.Update(ctx, dt)

	for _, eid := range env.children {
		ent := s.entities[eid]

		// Phase 1: aggregated ancestor rules act on the entity's state.
		// Recomputed every tick so structural changes between passes are
		// always reflected.
		eff, err := s.EffectFor(eid)
		if err == nil && !eff.IsZero() {
			applyEffect(&ent.state, eff, dt)
		}

		// Phase 2: the entity's own behavior, then nested environments.
		ent.behavior.Update(ctx, &ent.state, dt)
		for _, owned := range ent.owned {
			s.updateEnvironment(owned, ctx, dt)
		}
	}
}

// Render draws the tree into the destination buffer using the same
// traversal shape as Update: each environment draws before its children,
// so nearer (deeper) nodes paint over farther ones.
func (s *Scene) Render(dst *core.Screen) {
	s.inPass = true
	for _, envID := range s.rootEnvs {
		s.renderEnvironment(envID, dst)
	}
	s.inPass = false
}

func (s *Scene) renderEnvironment(id EnvironmentID, dst *core.Screen) {
	env := s.environments[id]
	env.behavior.Render(dst)

	for _, eid := range env.children {
		ent := s.entities[eid]
		ent.behavior.Render(ent.state, dst)
		for _, owned := range ent.owned {
			s.renderEnvironment(owned, dst)
		}
	}
}
