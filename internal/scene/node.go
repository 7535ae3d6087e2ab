package scene

import "github.com/thinthought/spyke/internal/core"

// EntityID identifies an entity node. IDs are unique for the lifetime of a
// Scene and are never reused.
type EntityID uint64

// EnvironmentID identifies an environment node.
type EnvironmentID uint64

// Root is the parent marker for root-level environments. It is not a real
// entity: it only anchors the top of the ownership tree.
const Root EntityID = 0

// RootEnvironment is the id of the implicit scene root. It cannot be
// destroyed and resolves to no environment behavior.
const RootEnvironment EnvironmentID = 0

// State is the mutable per-entity data that environment rules act on.
// Attrs carries arbitrary per-type values that are opaque to the scene model
// itself; behaviors and composition files interpret them.
type State struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Attrs map[string]float64
}

// Attr returns a named attribute, or def when it is absent.
func (s State) Attr(name string, def float64) float64 {
	if v, ok := s.Attrs[name]; ok {
		return v
	}
	return def
}

// SetAttr stores a named attribute, allocating the map on first use.
func (s *State) SetAttr(name string, v float64) {
	if s.Attrs == nil {
		s.Attrs = make(map[string]float64)
	}
	s.Attrs[name] = v
}

// clone deep-copies the state so scene-held state never aliases caller maps.
func (s State) clone() State {
	out := s
	if s.Attrs != nil {
		out.Attrs = make(map[string]float64, len(s.Attrs))
		for k, v := range s.Attrs {
			out.Attrs[k] = v
		}
	}
	return out
}

// entityNode is the bookkeeping record for one entity. The owning
// environment is set at birth and never changes; reparenting means
// destroying and recreating the entity.
type entityNode struct {
	id       EntityID
	parent   EnvironmentID
	owned    []EnvironmentID // environments owned by this entity, insertion order
	behavior Entity
	state    State
}

// environmentNode is the bookkeeping record for one environment.
// parent is Root for root-level environments.
type environmentNode struct {
	id       EnvironmentID
	parent   EntityID
	children []EntityID // direct child entities, insertion order
	behavior Environment
}
