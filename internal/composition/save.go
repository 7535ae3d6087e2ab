package composition

import (
	"fmt"

	"github.com/thinthought/spyke/internal/scene"
)

// Save walks a scene and serializes it back to a document. Node ids are
// assigned in traversal order ("env-001", "ent-001", ...), so saving the
// same tree twice yields identical documents.
//
// Behaviors must implement scene.Typed to be exportable; positions come
// from entity state, or from scene.Positioned for environments.
func Save(s *scene.Scene, name string) (Document, error) {
	w := &saveWalk{scene: s}
	doc := Document{Name: name}

	for _, envID := range s.RootEnvironments() {
		if err := w.environment(envID, RootParent, &doc); err != nil {
			return Document{}, err
		}
	}
	return doc, nil
}

type saveWalk struct {
	scene   *scene.Scene
	numEnts int
	numEnvs int
}

func (w *saveWalk) environment(id scene.EnvironmentID, parent string, doc *Document) error {
	env, err := w.scene.Environment(id)
	if err != nil {
		return fmt.Errorf("composition: cannot save environment %d: %w", id, err)
	}

	typed, ok := env.(scene.Typed)
	if !ok {
		return fmt.Errorf("composition: environment %d has no type name, cannot export", id)
	}

	w.numEnvs++
	node := Node{
		ID:     fmt.Sprintf("env-%03d", w.numEnvs),
		Kind:   KindEnvironment,
		Type:   typed.TypeName(),
		Parent: parent,
	}
	if p, ok := env.(scene.Positioned); ok {
		pos := p.Position()
		node.Transform.Position = [2]float64{pos.X, pos.Y}
	}
	if ex, ok := env.(scene.AttrExporter); ok {
		node.State = ex.ExportAttrs()
	}
	doc.Nodes = append(doc.Nodes, node)

	children, err := w.scene.ChildrenOf(id)
	if err != nil {
		return err
	}
	for _, entID := range children {
		if err := w.entity(entID, node.ID, doc); err != nil {
			return err
		}
	}
	return nil
}

func (w *saveWalk) entity(id scene.EntityID, parent string, doc *Document) error {
	ent, err := w.scene.Entity(id)
	if err != nil {
		return fmt.Errorf("composition: cannot save entity %d: %w", id, err)
	}

	typed, ok := ent.(scene.Typed)
	if !ok {
		return fmt.Errorf("composition: entity %d has no type name, cannot export", id)
	}

	st, err := w.scene.EntityState(id)
	if err != nil {
		return err
	}

	w.numEnts++
	node := Node{
		ID:     fmt.Sprintf("ent-%03d", w.numEnts),
		Kind:   KindEntity,
		Type:   typed.TypeName(),
		Parent: parent,
	}
	node.Transform.Position = [2]float64{st.Pos.X, st.Pos.Y}

	state := make(map[string]any)
	if ex, ok := ent.(scene.AttrExporter); ok {
		for k, v := range ex.ExportAttrs() {
			state[k] = v
		}
	}
	for k, v := range st.Attrs {
		state[k] = v
	}
	if len(state) > 0 {
		node.State = state
	}
	doc.Nodes = append(doc.Nodes, node)

	owned, err := w.scene.OwnedBy(id)
	if err != nil {
		return err
	}
	for _, envID := range owned {
		if err := w.environment(envID, node.ID, doc); err != nil {
			return err
		}
	}
	return nil
}
