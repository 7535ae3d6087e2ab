package environments

import (
	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/registry"
	"github.com/thinthought/spyke/internal/scene"
)

func init() {
	registry.Register(registry.Entry{
		Kind: registry.KindEnvironment,
		Name: "environments/damping",
		NewEnvironment: func(pos core.Vec2, attrs registry.Attrs) (scene.Environment, error) {
			return NewDamping(pos, attrs.Float("rate", 2.0)), nil
		},
	})
}

// Damping decays the velocity of its direct child entities at a fixed rate
// in 1/s. Rates from multiple ancestor environments are summed before being
// applied, so overlapping damping zones thicken rather than override.
type Damping struct {
	scene.BaseEnvironment

	Pos  core.Vec2
	Rate float64

	rules []scene.Rule
}

// NewDamping creates a damping environment with the given decay rate.
func NewDamping(pos core.Vec2, rate float64) *Damping {
	env := &Damping{Pos: pos, Rate: rate}
	env.rules = []scene.Rule{
		scene.RuleFunc{
			RuleName: "damping",
			Fn: func(scene.State) scene.Effect {
				return scene.Effect{Damping: env.Rate}
			},
		},
	}
	return env
}

// TypeName implements scene.Typed.
func (d *Damping) TypeName() string { return "environments/damping" }

// Position implements scene.Positioned.
func (d *Damping) Position() core.Vec2 { return d.Pos }

// ExportAttrs implements scene.AttrExporter.
func (d *Damping) ExportAttrs() map[string]any {
	return map[string]any{"rate": d.Rate}
}

// Rules implements scene.Environment.
func (d *Damping) Rules() []scene.Rule { return d.rules }
