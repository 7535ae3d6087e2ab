package composition

import (
	"fmt"

	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/registry"
	"github.com/thinthought/spyke/internal/scene"
)

// Validate checks a document's structure without instantiating anything:
// unique ids, known kinds, resolvable concrete types, and parent relations
// that satisfy the entity-environment model (entities live in environments;
// environments hang from the root or from entities; nothing is orphaned or
// cyclic).
func Validate(doc Document) error {
	byID := make(map[string]Node, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if n.ID == "" {
			return fmt.Errorf("composition: node of type %q has empty id", n.Type)
		}
		if _, dup := byID[n.ID]; dup {
			return fmt.Errorf("composition: duplicate node id %q", n.ID)
		}
		if n.Kind != KindEntity && n.Kind != KindEnvironment {
			return fmt.Errorf("composition: node %q has unknown kind %q", n.ID, n.Kind)
		}
		byID[n.ID] = n
	}

	for _, n := range doc.Nodes {
		entry, ok := registry.Lookup(n.Type)
		if !ok {
			return fmt.Errorf("composition: node %q references unknown type %q", n.ID, n.Type)
		}
		if entry.Abstract {
			return fmt.Errorf("composition: node %q references abstract type %q", n.ID, n.Type)
		}
		if string(entry.Kind) != n.Kind {
			return fmt.Errorf("composition: node %q is kind %q but type %q is %q",
				n.ID, n.Kind, n.Type, entry.Kind)
		}

		if err := validateParent(n, byID); err != nil {
			return err
		}
	}

	// Every node must reach the root in finitely many steps.
	for _, n := range doc.Nodes {
		seen := map[string]bool{}
		cur := n
		for cur.Parent != RootParent {
			if seen[cur.ID] {
				return fmt.Errorf("composition: node %q is part of a parent cycle: %w",
					n.ID, scene.ErrCycle)
			}
			seen[cur.ID] = true
			cur = byID[cur.Parent]
		}
	}

	return nil
}

func validateParent(n Node, byID map[string]Node) error {
	if n.Parent == RootParent {
		if n.Kind != KindEnvironment {
			return fmt.Errorf("composition: entity %q cannot live at the root: %w",
				n.ID, scene.ErrInvalidParent)
		}
		return nil
	}

	parent, ok := byID[n.Parent]
	if !ok {
		return fmt.Errorf("composition: node %q references missing parent %q: %w",
			n.ID, n.Parent, scene.ErrInvalidParent)
	}

	// Entities live inside environments; environments hang from entities
	// (root-level ones are handled above).
	switch n.Kind {
	case KindEntity:
		if parent.Kind != KindEnvironment {
			return fmt.Errorf("composition: entity %q has non-environment parent %q: %w",
				n.ID, n.Parent, scene.ErrInvalidParent)
		}
	case KindEnvironment:
		if parent.Kind != KindEntity {
			return fmt.Errorf("composition: environment %q has non-entity parent %q: %w",
				n.ID, n.Parent, scene.ErrInvalidParent)
		}
	}
	return nil
}

// Build validates the document and instantiates it into a fresh scene.
// Sibling nodes are inserted in document order, which fixes traversal
// order for the loaded scene.
func Build(doc Document) (*scene.Scene, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	children := make(map[string][]Node)
	for _, n := range doc.Nodes {
		children[n.Parent] = append(children[n.Parent], n)
	}

	s := scene.New()
	for _, n := range children[RootParent] {
		if err := buildEnvironment(s, n, scene.Root, children); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func buildEnvironment(s *scene.Scene, n Node, parent scene.EntityID, children map[string][]Node) error {
	pos := core.V(n.Transform.Position[0], n.Transform.Position[1])
	env, err := registry.CreateEnvironment(n.Type, pos, registry.Attrs(n.State))
	if err != nil {
		return fmt.Errorf("composition: node %q: %w", n.ID, err)
	}

	id, err := s.CreateEnvironment(parent, env)
	if err != nil {
		return fmt.Errorf("composition: node %q: %w", n.ID, err)
	}

	for _, child := range children[n.ID] {
		if err := buildEntity(s, child, id, children); err != nil {
			return err
		}
	}
	return nil
}

func buildEntity(s *scene.Scene, n Node, parent scene.EnvironmentID, children map[string][]Node) error {
	pos := core.V(n.Transform.Position[0], n.Transform.Position[1])
	ent, err := registry.CreateEntity(n.Type, pos, registry.Attrs(n.State))
	if err != nil {
		return fmt.Errorf("composition: node %q: %w", n.ID, err)
	}

	st := scene.State{Pos: pos}
	for k, v := range n.State {
		if f, ok := v.(float64); ok {
			st.SetAttr(k, f)
		}
	}

	id, err := s.CreateEntity(parent, ent, st)
	if err != nil {
		return fmt.Errorf("composition: node %q: %w", n.ID, err)
	}

	for _, child := range children[n.ID] {
		if err := buildEnvironment(s, child, id, children); err != nil {
			return err
		}
	}
	return nil
}
