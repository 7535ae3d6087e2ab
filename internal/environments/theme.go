package environments

import (
	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/registry"
	"github.com/thinthought/spyke/internal/scene"
)

func init() {
	registry.Register(registry.Entry{
		Kind: registry.KindEnvironment,
		Name: "environments/theme",
		NewEnvironment: func(pos core.Vec2, attrs registry.Attrs) (scene.Environment, error) {
			return &Theme{
				Pos:   pos,
				Fill:  firstRune(attrs.String("fill", "·")),
				Color: colorByName(attrs.String("color", "gray")),
			}, nil
		},
	})
}

// Theme fills the whole screen with a background texture before anything
// else in its subtree draws. Place it first at the scene root so every
// later node paints over it.
type Theme struct {
	scene.BaseEnvironment

	Pos   core.Vec2
	Fill  rune
	Color core.Color
}

// TypeName implements scene.Typed.
func (t *Theme) TypeName() string { return "environments/theme" }

// Position implements scene.Positioned.
func (t *Theme) Position() core.Vec2 { return t.Pos }

// ExportAttrs implements scene.AttrExporter.
func (t *Theme) ExportAttrs() map[string]any {
	return map[string]any{"fill": string(t.Fill), "color": colorName(t.Color)}
}

// Render fills the buffer with the theme texture.
func (t *Theme) Render(dst *core.Screen) {
	dst.Fill(t.Fill, t.Color)
}

// firstRune returns the first rune of s, or a space for empty strings.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// colorName is the inverse of colorByName for export.
func colorName(c core.Color) string {
	switch c {
	case core.ColorRed:
		return "red"
	case core.ColorGreen:
		return "green"
	case core.ColorYellow:
		return "yellow"
	case core.ColorBlue:
		return "blue"
	case core.ColorMagenta:
		return "magenta"
	case core.ColorCyan:
		return "cyan"
	case core.ColorWhite:
		return "white"
	case core.ColorOrange:
		return "orange"
	case core.ColorDarkGray:
		return "darkgray"
	default:
		return "gray"
	}
}

// colorByName maps composition color names to screen colors.
func colorByName(name string) core.Color {
	switch name {
	case "red":
		return core.ColorRed
	case "green":
		return core.ColorGreen
	case "yellow":
		return core.ColorYellow
	case "blue":
		return core.ColorBlue
	case "magenta":
		return core.ColorMagenta
	case "cyan":
		return core.ColorCyan
	case "white":
		return core.ColorWhite
	case "orange":
		return core.ColorOrange
	case "darkgray":
		return core.ColorDarkGray
	default:
		return core.ColorGray
	}
}
