package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileCollection keeps a collection in a single JSON file.
type FileCollection[T any] struct {
	mu   sync.Mutex
	path string
	seed func() T
}

// NewFileCollection creates a file-backed collection. The file is created
// from seed on first access.
func NewFileCollection[T any](path string, seed func() T) *FileCollection[T] {
	return &FileCollection[T]{path: path, seed: seed}
}

func (c *FileCollection[T]) Load(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *FileCollection[T]) Save(ctx context.Context, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store(value)
}

func (c *FileCollection[T]) Update(ctx context.Context, fn func(T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, err := c.load()
	if err != nil {
		return value, err
	}
	next, err := fn(value)
	if err != nil {
		return next, err
	}
	if err := c.store(next); err != nil {
		return next, err
	}
	return next, nil
}

func (c *FileCollection[T]) load() (T, error) {
	var value T

	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		value = c.seed()
		if err := c.store(value); err != nil {
			return value, err
		}
		return value, nil
	}
	if err != nil {
		return value, fmt.Errorf("read %s: %w", c.path, err)
	}

	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("decode %s: %w", c.path, err)
	}
	return value, nil
}

func (c *FileCollection[T]) store(value T) error {
	if dir := filepath.Dir(c.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir %q: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}
