package service

import (
	"context"
	"fmt"
	"time"

	"github.com/safuramariyam/greenthumb/internal/model"
	"github.com/safuramariyam/greenthumb/internal/repository"
)

// EventSink receives task mutation events for live fan-out. Publishing must
// never block the mutation that triggered it.
type EventSink interface {
	Publish(ev model.Event)
}

// TaskInput represents data required to create a calendar task.
type TaskInput struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// TaskUpdate is a partial update: only non-nil fields are applied.
type TaskUpdate struct {
	Title       *string `json:"title"`
	Type        *string `json:"type"`
	Date        *string `json:"date"`
	Completed   *bool   `json:"completed"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
}

// TaskService owns the calendar task collection and task identity.
type TaskService struct {
	tasks  repository.Collection[[]model.CalendarTask]
	events EventSink

	// lastID is the high-water mark of assigned ids, so deleting the
	// highest task never makes its id available again. Only touched inside
	// tasks.Update callbacks, which the collection lock serializes.
	lastID int
}

func NewTaskService(tasks repository.Collection[[]model.CalendarTask], events EventSink) *TaskService {
	return &TaskService{tasks: tasks, events: events}
}

// Create assigns the next id (max existing + 1, never reused while the
// collection holds the current max) and persists the task.
func (s *TaskService) Create(ctx context.Context, input TaskInput) (model.CalendarTask, error) {
	task, err := buildTask(input)
	if err != nil {
		return model.CalendarTask{}, err
	}

	var created model.CalendarTask
	_, err = s.tasks.Update(ctx, func(tasks []model.CalendarTask) ([]model.CalendarTask, error) {
		task.ID = s.nextID(tasks)
		created = task
		return append(tasks, task), nil
	})
	if err != nil {
		return model.CalendarTask{}, err
	}

	s.publish(model.Event{Type: model.EventTaskCreated, Task: &created})
	return created, nil
}

// CreateBatch persists several tasks in one collection write, assigning
// sequential ids. Used by template application so a sequence of creations is
// atomic and every task gets a distinct id.
func (s *TaskService) CreateBatch(ctx context.Context, inputs []TaskInput) ([]model.CalendarTask, error) {
	built := make([]model.CalendarTask, 0, len(inputs))
	for _, input := range inputs {
		task, err := buildTask(input)
		if err != nil {
			return nil, err
		}
		built = append(built, task)
	}

	created := make([]model.CalendarTask, 0, len(built))
	_, err := s.tasks.Update(ctx, func(tasks []model.CalendarTask) ([]model.CalendarTask, error) {
		for _, task := range built {
			task.ID = s.nextID(tasks)
			created = append(created, task)
			tasks = append(tasks, task)
		}
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}

	for i := range created {
		s.publish(model.Event{Type: model.EventTaskCreated, Task: &created[i]})
	}
	return created, nil
}

func (s *TaskService) List(ctx context.Context) ([]model.CalendarTask, error) {
	return s.tasks.Load(ctx)
}

func (s *TaskService) Get(ctx context.Context, id int) (model.CalendarTask, error) {
	tasks, err := s.tasks.Load(ctx)
	if err != nil {
		return model.CalendarTask{}, err
	}
	for _, task := range tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return model.CalendarTask{}, fmt.Errorf("task %d: %w", id, model.ErrNotFound)
}

// ListUpcoming returns incomplete tasks dated within [today, today+days].
func (s *TaskService) ListUpcoming(ctx context.Context, now time.Time, days int) ([]model.CalendarTask, error) {
	tasks, err := s.tasks.Load(ctx)
	if err != nil {
		return nil, err
	}

	today := dateOf(now)
	end := today.AddDate(0, 0, days)

	upcoming := make([]model.CalendarTask, 0)
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		due, err := time.ParseInLocation(time.DateOnly, task.Date, now.Location())
		if err != nil {
			continue
		}
		if !due.Before(today) && !due.After(end) {
			upcoming = append(upcoming, task)
		}
	}
	return upcoming, nil
}

// Update overwrites only the fields present in patch. An explicitly cleared
// priority falls back to medium.
func (s *TaskService) Update(ctx context.Context, id int, patch TaskUpdate) (model.CalendarTask, error) {
	if patch.Date != nil {
		if _, err := time.Parse(time.DateOnly, *patch.Date); err != nil {
			return model.CalendarTask{}, fmt.Errorf("date %q: %w", *patch.Date, model.ErrValidation)
		}
	}

	var updated model.CalendarTask
	_, err := s.tasks.Update(ctx, func(tasks []model.CalendarTask) ([]model.CalendarTask, error) {
		for i := range tasks {
			if tasks[i].ID != id {
				continue
			}
			applyPatch(&tasks[i], patch)
			updated = tasks[i]
			return tasks, nil
		}
		return tasks, fmt.Errorf("task %d: %w", id, model.ErrNotFound)
	})
	if err != nil {
		return model.CalendarTask{}, err
	}

	s.publish(model.Event{Type: model.EventTaskUpdated, Task: &updated})
	return updated, nil
}

// Delete removes the task immediately. There is no soft delete.
func (s *TaskService) Delete(ctx context.Context, id int) error {
	_, err := s.tasks.Update(ctx, func(tasks []model.CalendarTask) ([]model.CalendarTask, error) {
		for i := range tasks {
			if tasks[i].ID == id {
				return append(tasks[:i], tasks[i+1:]...), nil
			}
		}
		return tasks, fmt.Errorf("task %d: %w", id, model.ErrNotFound)
	})
	if err != nil {
		return err
	}

	s.publish(model.Event{Type: model.EventTaskDeleted, TaskID: id})
	return nil
}

func (s *TaskService) publish(ev model.Event) {
	if s.events != nil {
		s.events.Publish(ev)
	}
}

func buildTask(input TaskInput) (model.CalendarTask, error) {
	if input.Title == "" {
		return model.CalendarTask{}, fmt.Errorf("title is required: %w", model.ErrValidation)
	}
	if _, err := time.Parse(time.DateOnly, input.Date); err != nil {
		return model.CalendarTask{}, fmt.Errorf("date %q: %w", input.Date, model.ErrValidation)
	}
	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}
	return model.CalendarTask{
		Title:       input.Title,
		Type:        input.Type,
		Date:        input.Date,
		Description: input.Description,
		Priority:    input.Priority,
	}, nil
}

func applyPatch(task *model.CalendarTask, patch TaskUpdate) {
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Type != nil {
		task.Type = *patch.Type
	}
	if patch.Date != nil {
		task.Date = *patch.Date
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		priority := *patch.Priority
		if priority == "" {
			priority = model.PriorityMedium
		}
		task.Priority = priority
	}
}

func (s *TaskService) nextID(tasks []model.CalendarTask) int {
	max := s.lastID
	for _, task := range tasks {
		if task.ID > max {
			max = task.ID
		}
	}
	s.lastID = max + 1
	return s.lastID
}

// dateOf truncates t to local midnight.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
