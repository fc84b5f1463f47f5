// Package storage persists a collection of records as a single JSON array
// document. Every mutation is load whole document -> mutate in memory ->
// rewrite whole document. There is no locking and no caching between
// operations: concurrent writers to the same collection are last-write-wins.
package storage

import (
	"context"
	"errors"
)

// ErrCorrupted reports that the stored content does not parse as an array of
// records. Match it with errors.Is.
var ErrCorrupted = errors.New("collection data is corrupted")

// Collection is durable storage for one named collection of records.
type Collection[T any] interface {
	// EnsureExists bootstraps an empty collection if none is present yet.
	// Calling it on an existing collection never alters its content.
	EnsureExists() error
	// LoadAll reads and decodes the full collection.
	LoadAll(ctx context.Context) ([]T, error)
	// SaveAll encodes the full sequence and replaces the stored collection
	// in its entirety.
	SaveAll(ctx context.Context, records []T) error
}
