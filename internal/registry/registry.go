// Package registry provides the catalog of entity and environment types.
// Catalog packages register themselves in init() functions, allowing the
// composition loader and editor-facing commands to discover and instantiate
// types without hardcoded dependencies.
//
// Registrations carry an explicit Abstract flag: abstract types (shared
// building blocks like the mass entity) stay out of the catalog listing and
// cannot be instantiated from composition files.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/scene"
)

// Kind distinguishes the two node kinds a type can produce.
type Kind string

// Node kinds. These match the kind field of composition documents.
const (
	KindEntity      Kind = "entity"
	KindEnvironment Kind = "environment"
)

// Attrs are the opaque per-type parameters from a composition node's state
// block, handed to factories as-is.
type Attrs map[string]any

// Float reads a numeric attribute, tolerating the types JSON decoding
// produces. Returns def when absent or non-numeric.
func (a Attrs) Float(name string, def float64) float64 {
	switch v := a[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return def
	}
}

// String reads a string attribute, or def when absent.
func (a Attrs) String(name, def string) string {
	if v, ok := a[name].(string); ok {
		return v
	}
	return def
}

// Bool reads a boolean attribute, or def when absent.
func (a Attrs) Bool(name string, def bool) bool {
	if v, ok := a[name].(bool); ok {
		return v
	}
	return def
}

// EntityFactory creates an entity behavior from its spawn position and
// attributes.
type EntityFactory func(pos core.Vec2, attrs Attrs) (scene.Entity, error)

// EnvironmentFactory creates an environment behavior from its spawn
// position and attributes.
type EnvironmentFactory func(pos core.Vec2, attrs Attrs) (scene.Environment, error)

// Entry describes one registered type.
type Entry struct {
	// Kind is the node kind this type produces.
	Kind Kind

	// Name is the catalog name referenced by composition documents,
	// e.g. "entities/player" or "environments/gravity".
	Name string

	// Abstract marks shared building blocks that are excluded from the
	// catalog listing and cannot be instantiated.
	Abstract bool

	// NewEntity is the factory for KindEntity entries. Nil for abstract
	// entries.
	NewEntity EntityFactory

	// NewEnvironment is the factory for KindEnvironment entries. Nil for
	// abstract entries.
	NewEnvironment EnvironmentFactory
}

// Info is the catalog listing record for a concrete type.
type Info struct {
	Kind Kind
	Name string
}

var (
	entries = make(map[string]Entry)
	mu      sync.RWMutex
)

// Register adds a type to the catalog. Typically called from a catalog
// package's init() function. Panics on duplicate names or on concrete
// entries without a factory for their kind, since both are programming
// errors caught at process start.
func Register(e Entry) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[e.Name]; exists {
		panic(fmt.Sprintf("registry: type %q already registered", e.Name))
	}
	if !e.Abstract {
		switch e.Kind {
		case KindEntity:
			if e.NewEntity == nil {
				panic(fmt.Sprintf("registry: entity type %q has no factory", e.Name))
			}
		case KindEnvironment:
			if e.NewEnvironment == nil {
				panic(fmt.Sprintf("registry: environment type %q has no factory", e.Name))
			}
		default:
			panic(fmt.Sprintf("registry: type %q has unknown kind %q", e.Name, e.Kind))
		}
	}

	entries[e.Name] = e
}

// List returns the concrete catalog, sorted by name. Abstract entries are
// excluded: they exist for embedding, not for the editor.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		if e.Abstract {
			continue
		}
		result = append(result, Info{Kind: e.Kind, Name: e.Name})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns the entry for a name, including abstract ones.
func Lookup(name string) (Entry, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[name]
	return e, ok
}

// CreateEntity instantiates an entity type by catalog name.
func CreateEntity(name string, pos core.Vec2, attrs Attrs) (scene.Entity, error) {
	mu.RLock()
	e, ok := entries[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown type %q", name)
	}
	if e.Kind != KindEntity {
		return nil, fmt.Errorf("registry: type %q is not an entity", name)
	}
	if e.Abstract {
		return nil, fmt.Errorf("registry: type %q is abstract", name)
	}
	return e.NewEntity(pos, attrs)
}

// CreateEnvironment instantiates an environment type by catalog name.
func CreateEnvironment(name string, pos core.Vec2, attrs Attrs) (scene.Environment, error) {
	mu.RLock()
	e, ok := entries[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown type %q", name)
	}
	if e.Kind != KindEnvironment {
		return nil, fmt.Errorf("registry: type %q is not an environment", name)
	}
	if e.Abstract {
		return nil, fmt.Errorf("registry: type %q is abstract", name)
	}
	return e.NewEnvironment(pos, attrs)
}

// Exists checks if a concrete type with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[name]
	return ok && !e.Abstract
}
