package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/thinthought/spyke/internal/composition"
)

func testDoc(name string, nodes int) composition.Document {
	doc := composition.Document{Name: name}
	for i := 0; i < nodes; i++ {
		doc.Nodes = append(doc.Nodes, composition.Node{
			ID:     "env-001",
			Kind:   composition.KindEnvironment,
			Type:   "environments/void",
			Parent: composition.RootParent,
		})
	}
	return doc
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndLoadScene(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	doc := testDoc("sandbox", 3)
	if err := store.SaveScene("sandbox", doc); err != nil {
		t.Fatalf("SaveScene() failed: %v", err)
	}

	loaded, err := store.LoadScene("sandbox")
	if err != nil {
		t.Fatalf("LoadScene() failed: %v", err)
	}
	if loaded.Name != "sandbox" {
		t.Errorf("Expected name sandbox, got %q", loaded.Name)
	}
	if len(loaded.Nodes) != 3 {
		t.Errorf("Expected 3 nodes, got %d", len(loaded.Nodes))
	}
}

func TestSaveSceneReplacesByName(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.SaveScene("level", testDoc("level", 2)); err != nil {
		t.Fatalf("SaveScene() failed: %v", err)
	}
	if err := store.SaveScene("level", testDoc("level", 5)); err != nil {
		t.Fatalf("SaveScene() (replace) failed: %v", err)
	}

	entries, err := store.ListScenes()
	if err != nil {
		t.Fatalf("ListScenes() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry after replace, got %d", len(entries))
	}
	if entries[0].Nodes != 5 {
		t.Errorf("Expected node count 5 after replace, got %d", entries[0].Nodes)
	}
}

func TestLoadMissingScene(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	_, err = store.LoadScene("nope")
	if !errors.Is(err, ErrNoScene) {
		t.Errorf("Expected ErrNoScene, got %v", err)
	}
}

func TestListScenesSorted(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := store.SaveScene(name, testDoc(name, 1)); err != nil {
			t.Fatalf("SaveScene(%q) failed: %v", name, err)
		}
	}

	entries, err := store.ListScenes()
	if err != nil {
		t.Fatalf("ListScenes() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	want := []string{"alpha", "mid", "zeta"}
	for i, e := range entries {
		if e.Name != want[i] {
			t.Errorf("Entry %d: expected %q, got %q", i, want[i], e.Name)
		}
	}
}

func TestDeleteScene(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.SaveScene("gone", testDoc("gone", 1)); err != nil {
		t.Fatalf("SaveScene() failed: %v", err)
	}
	if err := store.DeleteScene("gone"); err != nil {
		t.Fatalf("DeleteScene() failed: %v", err)
	}

	exists, err := store.Exists("gone")
	if err != nil {
		t.Fatalf("Exists() failed: %v", err)
	}
	if exists {
		t.Error("Scene should be gone after delete")
	}

	// Deleting again reports the missing scene
	if err := store.DeleteScene("gone"); !errors.Is(err, ErrNoScene) {
		t.Errorf("Expected ErrNoScene, got %v", err)
	}
}
