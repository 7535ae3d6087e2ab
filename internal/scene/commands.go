package scene

import "errors"

// Commands provides a buffer for deferred structural operations that are
// executed between passes. This prevents mutation of the tree during the
// rule-aggregation and update walk, where it would invalidate traversal.
type Commands struct {
	ops []func(*Scene) error
}

// SpawnEntity queues an entity creation under the given environment.
func (c *Commands) SpawnEntity(parent EnvironmentID, ent Entity, st State) {
	c.ops = append(c.ops, func(s *Scene) error {
		_, err := s.CreateEntity(parent, ent, st)
		return err
	})
}

// SpawnEnvironment queues an environment creation under the given entity
// (or the Root marker).
func (c *Commands) SpawnEnvironment(parent EntityID, env Environment) {
	c.ops = append(c.ops, func(s *Scene) error {
		_, err := s.CreateEnvironment(parent, env)
		return err
	})
}

// DestroyEntity queues an entity destruction. Destroying an entity that was
// already removed by an earlier cascade is not an error.
func (c *Commands) DestroyEntity(id EntityID) {
	c.ops = append(c.ops, func(s *Scene) error {
		err := s.DestroyEntity(id)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	})
}

// DestroyEnvironment queues an environment destruction, with the same
// already-gone tolerance as DestroyEntity.
func (c *Commands) DestroyEnvironment(id EnvironmentID) {
	c.ops = append(c.ops, func(s *Scene) error {
		err := s.DestroyEnvironment(id)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	})
}

// Defer queues an arbitrary function to run between passes.
func (c *Commands) Defer(fn func(*Scene) error) {
	c.ops = append(c.ops, fn)
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.ops)
}

// flush applies all queued operations in order, resetting the buffer.
// Operations after a failing one still run; errors are joined. Spawn hooks
// may queue follow-up commands while a flush runs; the buffer is drained
// until it stays empty so those run in the same flush.
func (c *Commands) flush(s *Scene) error {
	var errs []error
	for len(c.ops) > 0 {
		ops := c.ops
		c.ops = nil
		for _, op := range ops {
			if err := op(s); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
