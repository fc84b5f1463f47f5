package storage

import (
	"context"
	"sync"
)

// MemCollection implements Collection in memory. It lets tests substitute
// the filesystem while keeping whole-collection load/save semantics.
type MemCollection[T any] struct {
	// Err, when set, is returned by LoadAll and SaveAll. Tests use it to
	// force storage failures.
	Err error

	mu      sync.Mutex
	records []T
}

// NewMemCollection creates an empty in-memory collection.
func NewMemCollection[T any]() *MemCollection[T] {
	return &MemCollection[T]{}
}

// EnsureExists is a no-op: an in-memory collection always exists.
func (c *MemCollection[T]) EnsureExists() error {
	return c.Err
}

// LoadAll returns a copy of the stored records.
func (c *MemCollection[T]) LoadAll(ctx context.Context) ([]T, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out, nil
}

// SaveAll replaces the stored records with a copy of the given sequence.
func (c *MemCollection[T]) SaveAll(ctx context.Context, records []T) error {
	if c.Err != nil {
		return c.Err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = make([]T, len(records))
	copy(c.records, records)
	return nil
}
