package model

// TemplateTask is one entry in a cultivation template. DaysFromStart is the
// non-negative offset from the chosen start date.
type TemplateTask struct {
	Title         string `json:"title"`
	Type          string `json:"type"`
	Description   string `json:"description"`
	DaysFromStart int    `json:"days_from_start"`
	Priority      string `json:"priority"`
}

// TaskTemplate is a reusable cultivation plan for a crop and season.
// Templates are read-mostly reference data; applying one never mutates it.
type TaskTemplate struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CropType    string         `json:"crop_type"`
	Season      string         `json:"season"`
	Tasks       []TemplateTask `json:"tasks"`
	CreatedAt   string         `json:"created_at"`
}

// TemplateCategory groups templates by season for the category listing.
type TemplateCategory struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Templates   []TaskTemplate `json:"templates"`
}
