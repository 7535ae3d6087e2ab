package entities

import (
	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/registry"
	"github.com/thinthought/spyke/internal/scene"
)

func init() {
	registry.Register(registry.Entry{
		Kind: registry.KindEntity,
		Name: "entities/platform",
		NewEntity: func(pos core.Vec2, attrs registry.Attrs) (scene.Entity, error) {
			return &Platform{
				Width: attrs.Float("width", 10),
			}, nil
		},
	})
}

// Platform is a static horizontal ledge centered on its position. It has
// no behavior of its own; it marks out level geometry for the renderer.
type Platform struct {
	scene.BaseEntity

	Width float64
}

// TypeName implements scene.Typed.
func (p *Platform) TypeName() string { return "entities/platform" }

// ExportAttrs implements scene.AttrExporter.
func (p *Platform) ExportAttrs() map[string]any {
	return map[string]any{"width": p.Width}
}

// Render draws the ledge.
func (p *Platform) Render(st scene.State, dst *core.Screen) {
	w := core.Max(1, int(p.Width))
	x := int(st.Pos.X) - w/2
	dst.DrawHLine(x, int(st.Pos.Y), w, '═', core.ColorGreen)
}
