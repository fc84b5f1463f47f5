package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileCollection implements Collection backed by a single JSON array file.
type FileCollection[T any] struct {
	path string
}

// NewFileCollection creates a file-backed collection at the given path.
// The file is not touched until EnsureExists or a load/save call.
func NewFileCollection[T any](path string) *FileCollection[T] {
	return &FileCollection[T]{path: path}
}

// EnsureExists creates the backing file containing an empty array if it does
// not exist yet.
func (c *FileCollection[T]) EnsureExists() error {
	_, err := os.Stat(c.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, []byte("[]"), 0o644); err != nil {
		return fmt.Errorf("create %s: %w", c.path, err)
	}
	return nil
}

// LoadAll reads and unmarshals the whole backing file.
func (c *FileCollection[T]) LoadAll(ctx context.Context) ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %s", c.path, ErrCorrupted, err)
	}
	return records, nil
}

// SaveAll marshals the full sequence and overwrites the backing file. The
// 2-space indentation is cosmetic; readers accept any valid array encoding.
func (c *FileCollection[T]) SaveAll(ctx context.Context, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}
