package scene

import "errors"

// Structural errors returned by tree operations. All are synchronous and
// leave the tree unchanged: callers must fix the request and retry the
// whole operation.
var (
	// ErrInvalidParent is returned when a creation or attachment references
	// a nonexistent or already-destroyed parent node.
	ErrInvalidParent = errors.New("scene: invalid parent")

	// ErrCycle is returned when an attachment would make an entity
	// (transitively) own the environment that owns it.
	ErrCycle = errors.New("scene: attachment would create an ownership cycle")

	// ErrRootDestruction is returned on attempts to destroy or detach the
	// implicit scene root.
	ErrRootDestruction = errors.New("scene: cannot destroy the scene root")

	// ErrNotFound is returned when a lookup or destruction references an id
	// that does not resolve to a live node.
	ErrNotFound = errors.New("scene: node not found")

	// ErrTraversalActive is returned when a structural operation is called
	// directly during an update or render pass. Behaviors must queue
	// structural changes through the Commands buffer instead.
	ErrTraversalActive = errors.New("scene: structural change during traversal")
)
