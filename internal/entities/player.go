package entities

import (
	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/registry"
	"github.com/thinthought/spyke/internal/scene"
)

// Default player tuning, overridable per composition node.
const (
	defaultRunAccel    = 60.0 // cells/s²
	defaultMaxRunSpeed = 25.0 // cells/s
	defaultJumpSpeed   = 18.0 // cells/s, upward
	defaultRunDamping  = 4.0  // 1/s, horizontal friction
)

func init() {
	registry.Register(registry.Entry{
		Kind: registry.KindEntity,
		Name: "entities/player",
		NewEntity: func(pos core.Vec2, attrs registry.Attrs) (scene.Entity, error) {
			return &Player{
				Mass:        NewMass(attrs.Float("mass", 1)),
				RunAccel:    attrs.Float("run_accel", defaultRunAccel),
				MaxRunSpeed: attrs.Float("max_run_speed", defaultMaxRunSpeed),
				JumpSpeed:   attrs.Float("jump_speed", defaultJumpSpeed),
				Glyph:       firstRune(attrs.String("glyph", "@")),
			}, nil
		},
	})
}

// Player is the input-driven mass entity: run left/right, jump when
// grounded. Gravity comes from the surrounding environments, not from the
// player itself, so a player outside any gravity environment floats.
type Player struct {
	Mass

	RunAccel    float64
	MaxRunSpeed float64
	JumpSpeed   float64
	Glyph       rune
}

// TypeName implements scene.Typed.
func (p *Player) TypeName() string { return "entities/player" }

// ExportAttrs implements scene.AttrExporter.
func (p *Player) ExportAttrs() map[string]any {
	return map[string]any{
		"mass":          p.Kg,
		"run_accel":     p.RunAccel,
		"max_run_speed": p.MaxRunSpeed,
		"jump_speed":    p.JumpSpeed,
		"glyph":         string(p.Glyph),
	}
}

// Update implements scene.Entity.
func (p *Player) Update(ctx *scene.Context, st *scene.State, dt float64) {
	switch {
	case ctx.Input.Has(core.ActionLeft):
		p.ApplyAcceleration(core.V(-p.RunAccel, 0))
	case ctx.Input.Has(core.ActionRight):
		p.ApplyAcceleration(core.V(p.RunAccel, 0))
	default:
		p.ApplyDampingX(st, defaultRunDamping)
	}

	grounded := p.onGround(st, ctx.Viewport)
	if grounded && ctx.Input.Has(core.ActionJump) {
		st.Vel.Y = -p.JumpSpeed
	}

	p.Integrate(st, dt)
	p.ClampVelocityX(st, p.MaxRunSpeed)
	p.collideViewport(st, ctx.Viewport)
}

// Render implements scene.Entity.
func (p *Player) Render(st scene.State, dst *core.Screen) {
	dst.SetCell(int(st.Pos.X), int(st.Pos.Y), core.Cell{Rune: p.Glyph, Color: core.ColorBrightYellow})
}

// onGround reports whether the player is resting on the viewport floor.
func (p *Player) onGround(st *scene.State, vp core.Rect) bool {
	if vp.H <= 0 {
		return false
	}
	return st.Pos.Y >= vp.Bottom()-1
}

// collideViewport keeps the player inside the viewport, treating the
// bottom edge as solid ground and the sides as walls.
func (p *Player) collideViewport(st *scene.State, vp core.Rect) {
	if vp.W <= 0 || vp.H <= 0 {
		return
	}

	floor := vp.Bottom() - 1
	if st.Pos.Y > floor {
		st.Pos.Y = floor
		if st.Vel.Y > 0 {
			st.Vel.Y = 0
		}
	}
	if st.Pos.Y < vp.Y {
		st.Pos.Y = vp.Y
		if st.Vel.Y < 0 {
			st.Vel.Y = 0
		}
	}

	if st.Pos.X < vp.X {
		st.Pos.X = vp.X
		st.Vel.X = 0
	}
	if st.Pos.X > vp.Right()-1 {
		st.Pos.X = vp.Right() - 1
		st.Vel.X = 0
	}
}

// firstRune returns the first rune of s, or a space for empty strings.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
