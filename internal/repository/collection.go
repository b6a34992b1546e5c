// Package repository persists each record collection (tasks, templates,
// notifications, settings) as a single unit behind a per-collection lock.
package repository

import "context"

// Collection stores one logical record collection that is always loaded and
// rewritten as a whole. Implementations guard Load, Save, and Update with a
// single mutex so read-modify-write sequences never interleave; concurrent
// writers are last-writer-wins beyond that.
type Collection[T any] interface {
	// Load returns the current value, seeding the backing store with the
	// collection's default on first access.
	Load(ctx context.Context) (T, error)

	// Save replaces the stored value.
	Save(ctx context.Context, value T) error

	// Update runs fn on the current value and persists the result, all
	// under the collection lock. If fn returns an error nothing is saved.
	// The persisted value is returned.
	Update(ctx context.Context, fn func(T) (T, error)) (T, error)
}
