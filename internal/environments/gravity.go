package environments

import (
	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/registry"
	"github.com/thinthought/spyke/internal/scene"
)

// DefaultGravity is the downward acceleration in cells/s² used when a
// composition does not override it.
const DefaultGravity = 30.0

func init() {
	registry.Register(registry.Entry{
		Kind: registry.KindEnvironment,
		Name: "environments/gravity",
		NewEnvironment: func(pos core.Vec2, attrs registry.Attrs) (scene.Environment, error) {
			return NewGravity(pos, attrs.Float("g", DefaultGravity)), nil
		},
	})
}

// Gravity applies a constant downward acceleration to its direct child
// entities. Nested gravity environments sum, so stacking two doubles the
// pull on anything inside both.
type Gravity struct {
	scene.BaseEnvironment

	Pos core.Vec2
	G   float64

	rules []scene.Rule
}

// NewGravity creates a gravity environment with the given strength.
func NewGravity(pos core.Vec2, g float64) *Gravity {
	env := &Gravity{Pos: pos, G: g}
	env.rules = []scene.Rule{
		scene.RuleFunc{
			RuleName: "gravity",
			Fn: func(scene.State) scene.Effect {
				return scene.Effect{Accel: core.V(0, env.G)}
			},
		},
	}
	return env
}

// TypeName implements scene.Typed.
func (g *Gravity) TypeName() string { return "environments/gravity" }

// Position implements scene.Positioned.
func (g *Gravity) Position() core.Vec2 { return g.Pos }

// ExportAttrs implements scene.AttrExporter.
func (g *Gravity) ExportAttrs() map[string]any {
	return map[string]any{"g": g.G}
}

// Rules implements scene.Environment.
func (g *Gravity) Rules() []scene.Rule { return g.rules }
