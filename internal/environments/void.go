// Package environments provides the built-in environment catalog: spatial
// rule zones that can be placed at the scene root or nested inside entities.
package environments

import (
	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/registry"
	"github.com/thinthought/spyke/internal/scene"
)

func init() {
	registry.Register(registry.Entry{
		Kind: registry.KindEnvironment,
		Name: "environments/void",
		NewEnvironment: func(pos core.Vec2, attrs registry.Attrs) (scene.Environment, error) {
			return &Void{
				Pos:     pos,
				Visible: attrs.Bool("visible", false),
				Radius:  attrs.Float("radius", 3),
			}, nil
		},
	})
}

// Void is a neutral container environment with an empty rule set. It anchors
// subtrees without affecting child entities and can optionally render a
// crosshair marker for debugging positions.
type Void struct {
	scene.BaseEnvironment

	Pos     core.Vec2
	Visible bool
	Radius  float64
}

// TypeName implements scene.Typed.
func (v *Void) TypeName() string { return "environments/void" }

// Position implements scene.Positioned.
func (v *Void) Position() core.Vec2 { return v.Pos }

// ExportAttrs implements scene.AttrExporter.
func (v *Void) ExportAttrs() map[string]any {
	return map[string]any{"visible": v.Visible, "radius": v.Radius}
}

// Render draws the debug marker when visible.
func (v *Void) Render(dst *core.Screen) {
	if !v.Visible {
		return
	}

	cx, cy := int(v.Pos.X), int(v.Pos.Y)
	arm := core.Max(1, int(v.Radius))
	dst.DrawHLine(cx-arm, cy, arm*2+1, '─', core.ColorGray)
	dst.DrawVLine(cx, cy-arm, arm*2+1, '│', core.ColorGray)
	dst.SetCell(cx, cy, core.Cell{Rune: '┼', Color: core.ColorGray})
}
