package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/safuramariyam/greenthumb/internal/model"
)

func seedTasks() []model.CalendarTask {
	return []model.CalendarTask{
		{ID: 1, Title: "Water tomatoes", Type: model.TaskWatering, Date: "2025-06-10", Priority: model.PriorityHigh},
	}
}

// TestFileSeedsOnFirstAccess verifies a missing file is created from seed and
// that the seed persists to disk.
func TestFileSeedsOnFirstAccess(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "tasks.json")
	c := NewFileCollection(path, seedTasks)

	tasks, err := c.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Water tomatoes" {
		t.Fatalf("seeded tasks = %+v", tasks)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("seed file not written: %v", err)
	}
}

// TestFileRoundTrip verifies Save then Load through a fresh handle reads back
// what was written.
func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")
	c := NewFileCollection(path, seedTasks)

	saved := []model.CalendarTask{
		{ID: 5, Title: "Harvest rice", Type: model.TaskHarvesting, Date: "2025-11-01", Priority: model.PriorityMedium},
	}
	if err := c.Save(ctx, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened := NewFileCollection(path, seedTasks)
	tasks, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tasks) != 1 || tasks[0] != saved[0] {
		t.Errorf("tasks = %+v, want %+v", tasks, saved)
	}
}

// TestFileUpdateErrorDiscardsChange verifies a failing update function leaves
// the stored value untouched.
func TestFileUpdateErrorDiscardsChange(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")
	c := NewFileCollection(path, seedTasks)

	_, err := c.Update(ctx, func(tasks []model.CalendarTask) ([]model.CalendarTask, error) {
		return nil, fmt.Errorf("intentional failure")
	})
	if err == nil {
		t.Fatal("Update: want error")
	}

	tasks, err := c.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("got %d tasks after failed update, want 1", len(tasks))
	}
}

// TestFileUpdatePersists verifies a successful update is written to disk.
func TestFileUpdatePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")
	c := NewFileCollection(path, seedTasks)

	_, err := c.Update(ctx, func(tasks []model.CalendarTask) ([]model.CalendarTask, error) {
		tasks[0].Completed = true
		return tasks, nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	tasks, err := NewFileCollection(path, seedTasks).Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !tasks[0].Completed {
		t.Error("update not persisted across handles")
	}
}

// TestMemoryCloneIsolation verifies callers cannot mutate stored state
// through the slices an in-memory collection hands out.
func TestMemoryCloneIsolation(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCollection(seedTasks)

	first, err := c.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	first[0].Title = "mutated"

	second, err := c.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if second[0].Title != "Water tomatoes" {
		t.Errorf("stored title = %q, caller mutation leaked", second[0].Title)
	}
}

// TestMemoryUpdateErrorDiscardsChange mirrors the file-backed behavior for
// the in-memory backend.
func TestMemoryUpdateErrorDiscardsChange(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCollection(seedTasks)

	_, err := c.Update(ctx, func(tasks []model.CalendarTask) ([]model.CalendarTask, error) {
		tasks[0].Title = "should not stick"
		return tasks, fmt.Errorf("intentional failure")
	})
	if err == nil {
		t.Fatal("Update: want error")
	}

	tasks, _ := c.Load(ctx)
	if tasks[0].Title != "Water tomatoes" {
		t.Errorf("title = %q, failed update leaked", tasks[0].Title)
	}
}
