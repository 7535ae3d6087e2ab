package entities

import (
	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/registry"
	"github.com/thinthought/spyke/internal/scene"
)

func init() {
	registry.Register(registry.Entry{
		Kind: registry.KindEntity,
		Name: "entities/void",
		NewEntity: func(pos core.Vec2, attrs registry.Attrs) (scene.Entity, error) {
			return &Void{Visible: attrs.Bool("visible", false)}, nil
		},
	})
}

// Void is a utility entity with no behavior that anchors nested
// environments. It lets the tree interleave entity and environment nodes
// without creating visible objects, and can optionally render a marker to
// debug positions.
type Void struct {
	scene.BaseEntity

	Visible bool
}

// TypeName implements scene.Typed.
func (v *Void) TypeName() string { return "entities/void" }

// ExportAttrs implements scene.AttrExporter.
func (v *Void) ExportAttrs() map[string]any {
	return map[string]any{"visible": v.Visible}
}

// Render draws the debug marker when visible.
func (v *Void) Render(st scene.State, dst *core.Screen) {
	if !v.Visible {
		return
	}
	dst.SetCell(int(st.Pos.X), int(st.Pos.Y), core.Cell{Rune: 'o', Color: core.ColorGray})
}
