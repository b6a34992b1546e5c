package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/safuramariyam/greenthumb/internal/model"
	"github.com/safuramariyam/greenthumb/internal/repository"
)

// ApplyResult reports the tasks created from a template.
type ApplyResult struct {
	TemplateName string               `json:"template_name"`
	StartDate    string               `json:"start_date"`
	TasksCreated int                  `json:"tasks_created"`
	Tasks        []model.CalendarTask `json:"tasks"`
}

// TemplateService serves cultivation templates and expands them into dated
// calendar tasks. It never assigns task ids itself; creation is delegated to
// the task store.
type TemplateService struct {
	templates repository.Collection[[]model.TaskTemplate]
	tasks     *TaskService
}

func NewTemplateService(templates repository.Collection[[]model.TaskTemplate], tasks *TaskService) *TemplateService {
	return &TemplateService{templates: templates, tasks: tasks}
}

func (s *TemplateService) List(ctx context.Context) ([]model.TaskTemplate, error) {
	return s.templates.Load(ctx)
}

func (s *TemplateService) Get(ctx context.Context, id string) (model.TaskTemplate, error) {
	templates, err := s.templates.Load(ctx)
	if err != nil {
		return model.TaskTemplate{}, err
	}
	for _, tpl := range templates {
		if tpl.ID == id {
			return tpl, nil
		}
	}
	return model.TaskTemplate{}, fmt.Errorf("template %q: %w", id, model.ErrNotFound)
}

// Categories groups templates by growing season.
func (s *TemplateService) Categories(ctx context.Context) (map[string]model.TemplateCategory, error) {
	templates, err := s.templates.Load(ctx)
	if err != nil {
		return nil, err
	}

	categories := map[string]model.TemplateCategory{
		"monsoon": {Name: "Monsoon Season", Description: "Crops suitable for monsoon/rainy season"},
		"winter":  {Name: "Winter Season", Description: "Crops suitable for winter season"},
		"summer":  {Name: "Summer Season", Description: "Crops suitable for summer season"},
	}
	for season, category := range categories {
		category.Templates = filterTemplates(templates, func(t model.TaskTemplate) bool {
			return t.Season == season
		})
		categories[season] = category
	}
	return categories, nil
}

func (s *TemplateService) ByCrop(ctx context.Context, cropType string) ([]model.TaskTemplate, error) {
	templates, err := s.templates.Load(ctx)
	if err != nil {
		return nil, err
	}
	return filterTemplates(templates, func(t model.TaskTemplate) bool {
		return strings.EqualFold(t.CropType, cropType)
	}), nil
}

func (s *TemplateService) BySeason(ctx context.Context, season string) ([]model.TaskTemplate, error) {
	templates, err := s.templates.Load(ctx)
	if err != nil {
		return nil, err
	}
	return filterTemplates(templates, func(t model.TaskTemplate) bool {
		return strings.EqualFold(t.Season, season)
	}), nil
}

// Apply expands the template into calendar tasks, dating each entry
// start + days_from_start in template order. An empty startDate means today.
func (s *TemplateService) Apply(ctx context.Context, id, startDate string, now time.Time) (ApplyResult, error) {
	template, err := s.Get(ctx, id)
	if err != nil {
		return ApplyResult{}, err
	}

	start := dateOf(now)
	if startDate != "" {
		start, err = time.ParseInLocation(time.DateOnly, startDate, now.Location())
		if err != nil {
			return ApplyResult{}, fmt.Errorf("start date %q: %w", startDate, model.ErrValidation)
		}
	}

	inputs := make([]TaskInput, 0, len(template.Tasks))
	for _, def := range template.Tasks {
		priority := def.Priority
		if priority == "" {
			priority = model.PriorityMedium
		}
		inputs = append(inputs, TaskInput{
			Title:       def.Title,
			Type:        def.Type,
			Date:        start.AddDate(0, 0, def.DaysFromStart).Format(time.DateOnly),
			Description: def.Description,
			Priority:    priority,
		})
	}

	created, err := s.tasks.CreateBatch(ctx, inputs)
	if err != nil {
		return ApplyResult{}, err
	}

	return ApplyResult{
		TemplateName: template.Name,
		StartDate:    start.Format(time.DateOnly),
		TasksCreated: len(created),
		Tasks:        created,
	}, nil
}

func filterTemplates(templates []model.TaskTemplate, keep func(model.TaskTemplate) bool) []model.TaskTemplate {
	out := make([]model.TaskTemplate, 0)
	for _, tpl := range templates {
		if keep(tpl) {
			out = append(out, tpl)
		}
	}
	return out
}
