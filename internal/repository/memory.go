package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryCollection keeps a collection in memory. Values are deep-copied
// through JSON on the way in and out so callers own what they receive.
type MemoryCollection[T any] struct {
	mu     sync.Mutex
	value  T
	seeded bool
	seed   func() T
}

// NewMemoryCollection creates an in-memory collection seeded on first access.
func NewMemoryCollection[T any](seed func() T) *MemoryCollection[T] {
	return &MemoryCollection[T]{seed: seed}
}

func (c *MemoryCollection[T]) Load(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureSeeded()
	return clone(c.value)
}

func (c *MemoryCollection[T]) Save(ctx context.Context, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied, err := clone(value)
	if err != nil {
		return err
	}
	c.value = copied
	c.seeded = true
	return nil
}

func (c *MemoryCollection[T]) Update(ctx context.Context, fn func(T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureSeeded()

	current, err := clone(c.value)
	if err != nil {
		return current, err
	}
	next, err := fn(current)
	if err != nil {
		return next, err
	}
	copied, err := clone(next)
	if err != nil {
		return next, err
	}
	c.value = copied
	return next, nil
}

func (c *MemoryCollection[T]) ensureSeeded() {
	if !c.seeded {
		c.value = c.seed()
		c.seeded = true
	}
}

func clone[T any](value T) (T, error) {
	var out T
	data, err := json.Marshal(value)
	if err != nil {
		return out, fmt.Errorf("clone: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("clone: %w", err)
	}
	return out, nil
}
