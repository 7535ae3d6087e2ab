package environments

import (
	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/registry"
	"github.com/thinthought/spyke/internal/scene"
)

func init() {
	registry.Register(registry.Entry{
		Kind: registry.KindEnvironment,
		Name: "environments/blackzone",
		NewEnvironment: func(pos core.Vec2, attrs registry.Attrs) (scene.Environment, error) {
			return &BlackZone{
				Pos: pos,
				Dims: core.V(
					attrs.Float("width", 20),
					attrs.Float("height", 8),
				),
			}, nil
		},
	})
}

// BlackZone is a rendered dark region centered on its position. It declares
// no rules; it exists to mark out space.
type BlackZone struct {
	scene.BaseEnvironment

	Pos  core.Vec2
	Dims core.Vec2
}

// TypeName implements scene.Typed.
func (z *BlackZone) TypeName() string { return "environments/blackzone" }

// Position implements scene.Positioned.
func (z *BlackZone) Position() core.Vec2 { return z.Pos }

// ExportAttrs implements scene.AttrExporter.
func (z *BlackZone) ExportAttrs() map[string]any {
	return map[string]any{"width": z.Dims.X, "height": z.Dims.Y}
}

// Render fills the zone's rectangle.
func (z *BlackZone) Render(dst *core.Screen) {
	r := core.NewRect(
		z.Pos.X-z.Dims.X/2,
		z.Pos.Y-z.Dims.Y/2,
		z.Dims.X,
		z.Dims.Y,
	)
	dst.DrawRect(r, '░', core.ColorDarkGray)
}
