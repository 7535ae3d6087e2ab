package registry

import (
	"strings"
	"testing"

	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/scene"
)

type stubEntity struct{ scene.BaseEntity }

type stubEnvironment struct{ scene.BaseEnvironment }

func stubEntityFactory(core.Vec2, Attrs) (scene.Entity, error) {
	return &stubEntity{}, nil
}

func stubEnvironmentFactory(core.Vec2, Attrs) (scene.Environment, error) {
	return &stubEnvironment{}, nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register(Entry{
		Kind:      KindEntity,
		Name:      "test/widget",
		NewEntity: stubEntityFactory,
	})

	if !Exists("test/widget") {
		t.Error("Exists() should report registered concrete type")
	}

	ent, err := CreateEntity("test/widget", core.V(1, 2), nil)
	if err != nil {
		t.Fatalf("CreateEntity() failed: %v", err)
	}
	if ent == nil {
		t.Fatal("CreateEntity() returned nil entity")
	}

	// Wrong-kind instantiation is rejected
	if _, err := CreateEnvironment("test/widget", core.V(0, 0), nil); err == nil {
		t.Error("Expected error creating environment from entity type")
	}
}

func TestAbstractExcludedFromCatalog(t *testing.T) {
	Register(Entry{
		Kind:     KindEntity,
		Name:     "test/abstract-base",
		Abstract: true,
	})
	Register(Entry{
		Kind:           KindEnvironment,
		Name:           "test/zone",
		NewEnvironment: stubEnvironmentFactory,
	})

	for _, info := range List() {
		if info.Name == "test/abstract-base" {
			t.Error("Abstract type must not appear in the catalog listing")
		}
	}

	// But it is still visible to Lookup for validation purposes
	e, ok := Lookup("test/abstract-base")
	if !ok {
		t.Fatal("Lookup() should find abstract types")
	}
	if !e.Abstract {
		t.Error("Expected Abstract flag set")
	}

	if Exists("test/abstract-base") {
		t.Error("Exists() should be false for abstract types")
	}

	// Instantiation is rejected with a telling error
	_, err := CreateEntity("test/abstract-base", core.V(0, 0), nil)
	if err == nil || !strings.Contains(err.Error(), "abstract") {
		t.Errorf("Expected abstract error, got %v", err)
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	Register(Entry{
		Kind:      KindEntity,
		Name:      "test/dup",
		NewEntity: stubEntityFactory,
	})

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	Register(Entry{
		Kind:      KindEntity,
		Name:      "test/dup",
		NewEntity: stubEntityFactory,
	})
}

func TestConcreteWithoutFactoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on concrete entry without factory")
		}
	}()
	Register(Entry{
		Kind: KindEntity,
		Name: "test/no-factory",
	})
}

func TestListSorted(t *testing.T) {
	infos := List()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].Name > infos[i].Name {
			t.Errorf("List() not sorted: %q before %q", infos[i-1].Name, infos[i].Name)
		}
	}
}

func TestAttrsHelpers(t *testing.T) {
	a := Attrs{"g": 30.0, "n": 7, "name": "dark", "on": true}

	if got := a.Float("g", 0); got != 30.0 {
		t.Errorf("Float(g): expected 30, got %v", got)
	}
	if got := a.Float("n", 0); got != 7 {
		t.Errorf("Float(n): expected 7, got %v", got)
	}
	if got := a.Float("missing", 2.5); got != 2.5 {
		t.Errorf("Float(missing): expected default 2.5, got %v", got)
	}
	if got := a.String("name", ""); got != "dark" {
		t.Errorf("String(name): expected dark, got %q", got)
	}
	if got := a.Bool("on", false); !got {
		t.Error("Bool(on): expected true")
	}
}
