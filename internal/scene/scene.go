// Package scene implements the Entity-Environment-Interaction Model (EEIM):
// an ownership tree with two node kinds. Environments are spatial containers
// that hold entities and declare rules; entities are interactive objects
// that may own nested environments, enabling recursive composition.
//
// The tree is single-threaded and frame-stepped: one Update pass followed by
// one Render pass per tick. Structural changes requested during a pass are
// queued on a Commands buffer and applied between passes.
package scene

import (
	"github.com/thinthought/spyke/internal/core"
)

// Scene is the ownership tree of entities and environments. The zero value
// is not usable; create scenes with New.
type Scene struct {
	entities     map[EntityID]*entityNode
	environments map[EnvironmentID]*environmentNode
	rootEnvs     []EnvironmentID // root-level environments, insertion order

	nextEntity EntityID
	nextEnv    EnvironmentID

	viewport core.Rect
	commands *Commands
	inPass   bool
}

// New creates an empty scene. The implicit root exists from the start and
// accepts root-level environments via the Root parent marker.
func New() *Scene {
	return &Scene{
		entities:     make(map[EntityID]*entityNode),
		environments: make(map[EnvironmentID]*environmentNode),
		nextEntity:   1,
		nextEnv:      1,
		commands:     &Commands{},
	}
}

// SetViewport sets the visible scene area handed to behaviors through the
// update context.
func (s *Scene) SetViewport(r core.Rect) {
	s.viewport = r
}

// Viewport returns the current visible scene area.
func (s *Scene) Viewport() core.Rect {
	return s.viewport
}

// hookContext builds the context used for lifecycle hooks triggered outside
// a traversal pass (direct creates/destroys and command flushes).
func (s *Scene) hookContext() *Context {
	return &Context{
		Scene:    s,
		Commands: s.commands,
		Viewport: s.viewport,
	}
}

// CreateEnvironment registers env as a child of parent, which must be an
// existing entity or the Root marker. Returns the fresh environment id.
func (s *Scene) CreateEnvironment(parent EntityID, env Environment) (EnvironmentID, error) {
	if s.inPass {
		return 0, ErrTraversalActive
	}
	var owner *entityNode
	if parent != Root {
		var ok bool
		owner, ok = s.entities[parent]
		if !ok {
			return 0, ErrInvalidParent
		}
	}

	id := s.nextEnv
	s.nextEnv++
	node := &environmentNode{
		id:       id,
		parent:   parent,
		behavior: env,
	}
	s.environments[id] = node
	if owner != nil {
		owner.owned = append(owner.owned, id)
	} else {
		s.rootEnvs = append(s.rootEnvs, id)
	}

	env.Spawn(s.hookContext())
	return id, nil
}

// CreateEntity registers ent under the given environment with the given
// initial state. Returns the fresh entity id, or ErrInvalidParent if the
// environment does not exist.
func (s *Scene) CreateEntity(parent EnvironmentID, ent Entity, st State) (EntityID, error) {
	if s.inPass {
		return 0, ErrTraversalActive
	}
	env, ok := s.environments[parent]
	if !ok {
		return 0, ErrInvalidParent
	}

	id := s.nextEntity
	s.nextEntity++
	node := &entityNode{
		id:       id,
		parent:   parent,
		behavior: ent,
		state:    st.clone(),
	}
	s.entities[id] = node
	env.children = append(env.children, id)

	ent.Spawn(s.hookContext(), &node.state)
	return id, nil
}

// DestroyEntity removes the entity and everything it owns. Teardown is
// post-order (children before parents) so no dangling reference is ever
// observable: owned environments cascade first, then the entity despawns
// and is unlinked from its owning environment.
func (s *Scene) DestroyEntity(id EntityID) error {
	if s.inPass {
		return ErrTraversalActive
	}
	if id == Root {
		return ErrRootDestruction
	}
	if _, ok := s.entities[id]; !ok {
		return ErrNotFound
	}
	s.destroyEntity(id)
	return nil
}

func (s *Scene) destroyEntity(id EntityID) {
	node := s.entities[id]

	owned := make([]EnvironmentID, len(node.owned))
	copy(owned, node.owned)
	for _, envID := range owned {
		s.destroyEnvironment(envID)
	}

	node.behavior.Despawn(s.hookContext())

	parent := s.environments[node.parent]
	parent.children = removeID(parent.children, id)
	delete(s.entities, id)
}

// DestroyEnvironment removes the environment and cascades to its child
// entities first. Destroying the implicit root is rejected with
// ErrRootDestruction.
func (s *Scene) DestroyEnvironment(id EnvironmentID) error {
	if s.inPass {
		return ErrTraversalActive
	}
	if id == RootEnvironment {
		return ErrRootDestruction
	}
	if _, ok := s.environments[id]; !ok {
		return ErrNotFound
	}
	s.destroyEnvironment(id)
	return nil
}

func (s *Scene) destroyEnvironment(id EnvironmentID) {
	node := s.environments[id]

	children := make([]EntityID, len(node.children))
	copy(children, node.children)
	for _, eid := range children {
		s.destroyEntity(eid)
	}

	node.behavior.Despawn(s.hookContext())

	if node.parent == Root {
		s.rootEnvs = removeID(s.rootEnvs, id)
	} else if owner, ok := s.entities[node.parent]; ok {
		owner.owned = removeID(owner.owned, id)
	}
	delete(s.environments, id)
}

// AttachEnvironment re-homes an environment subtree under a new parent
// entity (or the Root marker). This is the editor's reattach operation:
// logically the environment is recreated as a new child of the parent.
// Attaching fails fast with ErrCycle if the new parent is a descendant of
// the environment; on any failure the tree is unchanged.
func (s *Scene) AttachEnvironment(id EnvironmentID, parent EntityID) error {
	if s.inPass {
		return ErrTraversalActive
	}
	if id == RootEnvironment {
		return ErrRootDestruction
	}
	node, ok := s.environments[id]
	if !ok {
		return ErrNotFound
	}

	var newOwner *entityNode
	if parent != Root {
		newOwner, ok = s.entities[parent]
		if !ok {
			return ErrInvalidParent
		}
		// Walk from the new parent up to the root. Passing through the
		// environment being attached means the parent lives inside it.
		entID := parent
		for entID != Root {
			envID := s.entities[entID].parent
			if envID == id {
				return ErrCycle
			}
			entID = s.environments[envID].parent
		}
	}

	// Unlink from the old parent.
	if node.parent == Root {
		s.rootEnvs = removeID(s.rootEnvs, id)
	} else {
		oldOwner := s.entities[node.parent]
		oldOwner.owned = removeID(oldOwner.owned, id)
	}

	// Link to the new one.
	node.parent = parent
	if newOwner != nil {
		newOwner.owned = append(newOwner.owned, id)
	} else {
		s.rootEnvs = append(s.rootEnvs, id)
	}
	return nil
}

// Entity returns the behavior of a live entity.
func (s *Scene) Entity(id EntityID) (Entity, error) {
	node, ok := s.entities[id]
	if !ok {
		return nil, ErrNotFound
	}
	return node.behavior, nil
}

// Environment returns the behavior of a live environment.
func (s *Scene) Environment(id EnvironmentID) (Environment, error) {
	node, ok := s.environments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return node.behavior, nil
}

// EntityState returns a copy of the entity's current state.
func (s *Scene) EntityState(id EntityID) (State, error) {
	node, ok := s.entities[id]
	if !ok {
		return State{}, ErrNotFound
	}
	return node.state.clone(), nil
}

// SetEntityState replaces the entity's state. Used by the composition
// loader and tests; behaviors mutate state through Update instead.
func (s *Scene) SetEntityState(id EntityID, st State) error {
	node, ok := s.entities[id]
	if !ok {
		return ErrNotFound
	}
	node.state = st.clone()
	return nil
}

// OwnerOf returns the id of the entity's owning environment.
func (s *Scene) OwnerOf(id EntityID) (EnvironmentID, error) {
	node, ok := s.entities[id]
	if !ok {
		return 0, ErrNotFound
	}
	return node.parent, nil
}

// ParentOf returns the owning entity of an environment, or Root for
// root-level environments.
func (s *Scene) ParentOf(id EnvironmentID) (EntityID, error) {
	node, ok := s.environments[id]
	if !ok {
		return 0, ErrNotFound
	}
	return node.parent, nil
}

// ChildrenOf returns the environment's direct child entities in insertion
// order.
func (s *Scene) ChildrenOf(id EnvironmentID) ([]EntityID, error) {
	node, ok := s.environments[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]EntityID, len(node.children))
	copy(out, node.children)
	return out, nil
}

// OwnedBy returns the environments owned by an entity in insertion order.
func (s *Scene) OwnedBy(id EntityID) ([]EnvironmentID, error) {
	node, ok := s.entities[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]EnvironmentID, len(node.owned))
	copy(out, node.owned)
	return out, nil
}

// RootEnvironments returns the root-level environments in insertion order.
func (s *Scene) RootEnvironments() []EnvironmentID {
	out := make([]EnvironmentID, len(s.rootEnvs))
	copy(out, s.rootEnvs)
	return out
}

// NumEntities returns the number of live entities.
func (s *Scene) NumEntities() int {
	return len(s.entities)
}

// NumEnvironments returns the number of live environments, excluding the
// implicit root.
func (s *Scene) NumEnvironments() int {
	return len(s.environments)
}

// removeID drops the first occurrence of id from ids, preserving order.
func removeID[T comparable](ids []T, id T) []T {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
