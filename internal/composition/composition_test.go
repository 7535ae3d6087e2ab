package composition

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/thinthought/spyke/internal/scene"

	// Register the catalog types used by test documents
	_ "github.com/thinthought/spyke/internal/entities"
	_ "github.com/thinthought/spyke/internal/environments"
)

func TestDemoLoadsAndBuilds(t *testing.T) {
	doc := Demo()

	if err := Validate(doc); err != nil {
		t.Fatalf("Validate(demo) failed: %v", err)
	}

	s, err := Build(doc)
	if err != nil {
		t.Fatalf("Build(demo) failed: %v", err)
	}

	if s.NumEnvironments() != 4 {
		t.Errorf("Expected 4 environments, got %d", s.NumEnvironments())
	}
	if s.NumEntities() != 4 {
		t.Errorf("Expected 4 entities, got %d", s.NumEntities())
	}
	if len(s.RootEnvironments()) != 3 {
		t.Errorf("Expected 3 root environments, got %d", len(s.RootEnvironments()))
	}
}

func TestValidateRejectsDuplicateID(t *testing.T) {
	doc := Document{Nodes: []Node{
		{ID: "env-001", Kind: KindEnvironment, Type: "environments/void", Parent: RootParent},
		{ID: "env-001", Kind: KindEnvironment, Type: "environments/void", Parent: RootParent},
	}}
	if err := Validate(doc); err == nil {
		t.Error("Expected duplicate id error")
	}
}

func TestValidateRejectsUnknownType(t *testing.T) {
	doc := Document{Nodes: []Node{
		{ID: "env-001", Kind: KindEnvironment, Type: "environments/nope", Parent: RootParent},
	}}
	if err := Validate(doc); err == nil {
		t.Error("Expected unknown type error")
	}
}

func TestValidateRejectsAbstractType(t *testing.T) {
	doc := Document{Nodes: []Node{
		{ID: "env-001", Kind: KindEnvironment, Type: "environments/void", Parent: RootParent},
		{ID: "ent-001", Kind: KindEntity, Type: "entities/mass", Parent: "env-001"},
	}}
	if err := Validate(doc); err == nil {
		t.Error("Expected abstract type error")
	}
}

func TestValidateRejectsKindMismatch(t *testing.T) {
	doc := Document{Nodes: []Node{
		{ID: "env-001", Kind: KindEnvironment, Type: "entities/player", Parent: RootParent},
	}}
	if err := Validate(doc); err == nil {
		t.Error("Expected kind mismatch error")
	}
}

func TestValidateRejectsEntityAtRoot(t *testing.T) {
	doc := Document{Nodes: []Node{
		{ID: "ent-001", Kind: KindEntity, Type: "entities/player", Parent: RootParent},
	}}
	err := Validate(doc)
	if !errors.Is(err, scene.ErrInvalidParent) {
		t.Errorf("Expected ErrInvalidParent, got %v", err)
	}
}

func TestValidateRejectsWrongParentKind(t *testing.T) {
	doc := Document{Nodes: []Node{
		{ID: "env-001", Kind: KindEnvironment, Type: "environments/void", Parent: RootParent},
		{ID: "env-002", Kind: KindEnvironment, Type: "environments/void", Parent: "env-001"},
	}}
	err := Validate(doc)
	if !errors.Is(err, scene.ErrInvalidParent) {
		t.Errorf("Environment under environment: expected ErrInvalidParent, got %v", err)
	}
}

func TestValidateRejectsMissingParent(t *testing.T) {
	doc := Document{Nodes: []Node{
		{ID: "ent-001", Kind: KindEntity, Type: "entities/player", Parent: "env-404"},
	}}
	err := Validate(doc)
	if !errors.Is(err, scene.ErrInvalidParent) {
		t.Errorf("Expected ErrInvalidParent, got %v", err)
	}
}

func TestValidateRejectsCycle(t *testing.T) {
	// ent-001 and env-001 parent each other; both relations are
	// individually legal, so only the reachability walk catches it
	doc := Document{Nodes: []Node{
		{ID: "ent-001", Kind: KindEntity, Type: "entities/void", Parent: "env-001"},
		{ID: "env-001", Kind: KindEnvironment, Type: "environments/void", Parent: "ent-001"},
	}}
	err := Validate(doc)
	if !errors.Is(err, scene.ErrCycle) {
		t.Errorf("Expected ErrCycle, got %v", err)
	}
}

func TestSaveRoundtrip(t *testing.T) {
	s, err := Build(Demo())
	if err != nil {
		t.Fatalf("Build(demo) failed: %v", err)
	}

	saved, err := Save(s, "demo")
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	orig := Demo()
	if len(saved.Nodes) != len(orig.Nodes) {
		t.Fatalf("Expected %d nodes, got %d", len(orig.Nodes), len(saved.Nodes))
	}

	// Save assigns ids in traversal order, which for the demo matches the
	// document order, so types and parent links line up node for node
	for i, n := range saved.Nodes {
		if n.Type != orig.Nodes[i].Type {
			t.Errorf("Node %d: expected type %q, got %q", i, orig.Nodes[i].Type, n.Type)
		}
		if n.Parent != orig.Nodes[i].Parent {
			t.Errorf("Node %d: expected parent %q, got %q", i, orig.Nodes[i].Parent, n.Parent)
		}
	}

	// The saved document must build again
	if _, err := Build(saved); err != nil {
		t.Errorf("Rebuilding saved document failed: %v", err)
	}
}

func TestWriteAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")

	doc := Demo()
	if err := WriteFile(path, doc); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if loaded.Name != doc.Name {
		t.Errorf("Expected name %q, got %q", doc.Name, loaded.Name)
	}
	if len(loaded.Nodes) != len(doc.Nodes) {
		t.Errorf("Expected %d nodes, got %d", len(doc.Nodes), len(loaded.Nodes))
	}
}
