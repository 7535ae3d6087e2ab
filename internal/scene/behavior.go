package scene

import "github.com/thinthought/spyke/internal/core"

// Context carries the per-tick collaborators handed to behaviors during a
// pass. Behaviors never reach for ambient globals: the active scene, input
// and the deferred command buffer are all explicit.
type Context struct {
	// Scene gives read access to the tree (lookups, rule inspection).
	// Structural methods return ErrTraversalActive during a pass; use
	// Commands instead.
	Scene *Scene

	// Input is the input frame for the current tick.
	Input core.InputFrame

	// Commands queues structural changes to be applied between passes.
	Commands *Commands

	// Viewport is the visible scene area in cells.
	Viewport core.Rect
}

// Entity is the behavior contract for interactive objects placed in an
// environment. The scene owns the entity's State; the behavior reads and
// mutates it during Update and draws from it during Render.
type Entity interface {
	// Spawn is called once when the entity enters the tree.
	Spawn(ctx *Context, st *State)

	// Despawn is called once when the entity leaves the tree.
	Despawn(ctx *Context)

	// Update advances the entity's own behavior by dt seconds. Aggregated
	// environment rules have already been applied to st for this tick.
	Update(ctx *Context, st *State, dt float64)

	// Render draws the entity into the screen buffer.
	Render(st State, dst *core.Screen)
}

// Environment is the behavior contract for spatial rule zones. Environments
// own zero or more child entities and contribute rules that apply to direct
// children only.
type Environment interface {
	// Rules returns the environment's rule set. The slice must be stable
	// for the lifetime of the environment; declaration order is the
	// documented aggregation order.
	Rules() []Rule

	// Spawn is called once when the environment enters the tree.
	Spawn(ctx *Context)

	// Despawn is called once when the environment leaves the tree.
	Despawn(ctx *Context)

	// Update advances the environment's own behavior by dt seconds.
	Update(ctx *Context, dt float64)

	// Render draws the environment (backgrounds, zones) into the buffer.
	// Environments render before their child entities.
	Render(dst *core.Screen)
}

// Typed is implemented by catalog behaviors that know their registered type
// name. Composition save uses it to serialize nodes back to documents.
type Typed interface {
	TypeName() string
}

// Positioned is implemented by environment behaviors whose position lives
// in the behavior itself (entities keep theirs in State).
type Positioned interface {
	Position() core.Vec2
}

// AttrExporter is implemented by behaviors that contribute a state block to
// composition export beyond what the scene tracks for them.
type AttrExporter interface {
	ExportAttrs() map[string]any
}

// BaseEntity is a no-op Entity implementation for embedding. Concrete
// entities override only the methods they need, mirroring how the catalog
// base classes work.
type BaseEntity struct{}

// Spawn implements Entity.
func (BaseEntity) Spawn(*Context, *State) {}

// Despawn implements Entity.
func (BaseEntity) Despawn(*Context) {}

// Update implements Entity.
func (BaseEntity) Update(*Context, *State, float64) {}

// Render implements Entity.
func (BaseEntity) Render(State, *core.Screen) {}

// BaseEnvironment is a no-op Environment implementation for embedding.
// Its rule set is empty, so an unmodified BaseEnvironment behaves like a
// void environment.
type BaseEnvironment struct{}

// Rules implements Environment.
func (BaseEnvironment) Rules() []Rule { return nil }

// Spawn implements Environment.
func (BaseEnvironment) Spawn(*Context) {}

// Despawn implements Environment.
func (BaseEnvironment) Despawn(*Context) {}

// Update implements Environment.
func (BaseEnvironment) Update(*Context, float64) {}

// Render implements Environment.
func (BaseEnvironment) Render(*core.Screen) {}
