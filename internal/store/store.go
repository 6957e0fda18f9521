// Package store holds the in-memory record collections. State is
// process-lifetime only; nothing is persisted.
package store

import (
	"context"
	"sync"
)

// Record is anything addressable by a unique id
type Record interface {
	RecordID() string
}

// Position controls where Insert places new records
type Position int

const (
	// Front inserts newest-first (expenses)
	Front Position = iota

	// Back appends in arrival order (budgets, templates, goals)
	Back
)

// Collection is an ordered, id-addressable set of records. All
// mutations serialize on an internal lock; reads copy a snapshot, so a
// derived view always observes the store at a single point in time.
type Collection[T Record] struct {
	mu    sync.RWMutex
	pos   Position
	items []T
}

// NewCollection creates an empty collection with the given insert position
func NewCollection[T Record](pos Position) *Collection[T] {
	return &Collection[T]{pos: pos}
}

// Insert stores a new record at the collection's insert position
func (c *Collection[T]) Insert(ctx context.Context, rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pos == Front {
		c.items = append([]T{rec}, c.items...)
		return
	}
	c.items = append(c.items, rec)
}

// Append stores a record at the back regardless of the collection's
// insert position. Used when replaying seed data in its given order.
func (c *Collection[T]) Append(ctx context.Context, rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, rec)
}

// Replace substitutes the record with a matching id in place and
// reports whether a record matched. Position in the collection is kept.
func (c *Collection[T]) Replace(ctx context.Context, rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if existing.RecordID() == rec.RecordID() {
			c.items[i] = rec
			return true
		}
	}
	return false
}

// Remove deletes the record with the matching id and reports whether a
// record matched
func (c *Collection[T]) Remove(ctx context.Context, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if existing.RecordID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the record with the matching id
func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, existing := range c.items {
		if existing.RecordID() == id {
			return existing, true
		}
	}
	var zero T
	return zero, false
}

// List returns a snapshot of the collection in stored order
func (c *Collection[T]) List(ctx context.Context) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of stored records
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
