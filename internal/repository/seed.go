package repository

import (
	"time"

	"github.com/safuramariyam/greenthumb/internal/model"
)

// DefaultTasks is the calendar seed used the first time the task collection
// is accessed.
func DefaultTasks() []model.CalendarTask {
	return []model.CalendarTask{
		{
			ID:          1,
			Title:       "Water rice field",
			Type:        model.TaskWatering,
			Date:        "2025-11-01",
			Description: "Irrigate the rice field with 2 inches of water",
			Priority:    model.PriorityHigh,
		},
		{
			ID:          2,
			Title:       "Apply organic fertilizer",
			Type:        model.TaskFertilizing,
			Date:        "2025-11-03",
			Description: "Apply compost and organic manure to improve soil fertility",
			Priority:    model.PriorityMedium,
		},
		{
			ID:          3,
			Title:       "Prune tomato plants",
			Type:        model.TaskPruning,
			Date:        "2025-11-05",
			Description: "Remove dead leaves and excess branches from tomato plants",
			Priority:    model.PriorityMedium,
		},
		{
			ID:          4,
			Title:       "Harvest wheat crop",
			Type:        model.TaskHarvesting,
			Date:        "2025-11-10",
			Description: "Harvest mature wheat crop and prepare for storage",
			Priority:    model.PriorityHigh,
		},
	}
}

// DefaultNotifications seeds an empty notification collection.
func DefaultNotifications() []model.Notification {
	return []model.Notification{}
}

// DefaultSettings is the notification settings seed.
func DefaultSettings() model.NotificationSettings {
	return model.NotificationSettings{
		BrowserNotifications: true,
		UpcomingTaskReminder: 24,
		OverdueTaskAlert:     true,
		WeatherAlerts:        true,
	}
}

// DefaultTemplates returns the built-in cultivation templates.
func DefaultTemplates() []model.TaskTemplate {
	createdAt := time.Now().Format(time.RFC3339)
	return []model.TaskTemplate{
		{
			ID:          "rice_monsoon",
			Name:        "Rice Monsoon Cultivation",
			Description: "Complete rice cultivation cycle for monsoon season",
			CropType:    "rice",
			Season:      "monsoon",
			CreatedAt:   createdAt,
			Tasks: []model.TemplateTask{
				{Title: "Land Preparation", Type: model.TaskGeneral, Description: "Prepare field by plowing and leveling", DaysFromStart: 0, Priority: model.PriorityHigh},
				{Title: "Seed Selection & Treatment", Type: model.TaskGeneral, Description: "Select quality seeds and treat with fungicide", DaysFromStart: 1, Priority: model.PriorityHigh},
				{Title: "Seed Sowing/Transplanting", Type: model.TaskGeneral, Description: "Sow seeds or transplant seedlings", DaysFromStart: 7, Priority: model.PriorityHigh},
				{Title: "Water Management", Type: model.TaskWatering, Description: "Maintain 2-5 cm water level", DaysFromStart: 14, Priority: model.PriorityMedium},
				{Title: "First Fertilizer Application", Type: model.TaskFertilizing, Description: "Apply nitrogen fertilizer", DaysFromStart: 21, Priority: model.PriorityMedium},
				{Title: "Weed Control", Type: model.TaskGeneral, Description: "Remove weeds manually or with herbicide", DaysFromStart: 28, Priority: model.PriorityMedium},
				{Title: "Pest Monitoring", Type: model.TaskGeneral, Description: "Check for pests and apply control measures if needed", DaysFromStart: 35, Priority: model.PriorityLow},
				{Title: "Second Fertilizer Application", Type: model.TaskFertilizing, Description: "Apply phosphorus and potassium", DaysFromStart: 42, Priority: model.PriorityMedium},
				{Title: "Drain Water", Type: model.TaskWatering, Description: "Drain water 1-2 weeks before harvest", DaysFromStart: 105, Priority: model.PriorityHigh},
				{Title: "Harvest Rice", Type: model.TaskHarvesting, Description: "Harvest when grains are golden yellow", DaysFromStart: 120, Priority: model.PriorityHigh},
			},
		},
		{
			ID:          "wheat_winter",
			Name:        "Wheat Winter Cultivation",
			Description: "Complete wheat cultivation cycle for winter season",
			CropType:    "wheat",
			Season:      "winter",
			CreatedAt:   createdAt,
			Tasks: []model.TemplateTask{
				{Title: "Field Preparation", Type: model.TaskGeneral, Description: "Plow and prepare field for sowing", DaysFromStart: 0, Priority: model.PriorityHigh},
				{Title: "Seed Selection", Type: model.TaskGeneral, Description: "Choose high-quality wheat seeds", DaysFromStart: 1, Priority: model.PriorityHigh},
				{Title: "Sowing Wheat", Type: model.TaskGeneral, Description: "Sow seeds at proper depth and spacing", DaysFromStart: 7, Priority: model.PriorityHigh},
				{Title: "Irrigation Setup", Type: model.TaskWatering, Description: "Ensure irrigation system is ready", DaysFromStart: 10, Priority: model.PriorityMedium},
				{Title: "First Irrigation", Type: model.TaskWatering, Description: "Provide first irrigation after sowing", DaysFromStart: 14, Priority: model.PriorityMedium},
				{Title: "Fertilizer Application", Type: model.TaskFertilizing, Description: "Apply NPK fertilizer", DaysFromStart: 21, Priority: model.PriorityMedium},
				{Title: "Weed Management", Type: model.TaskGeneral, Description: "Control weeds in the field", DaysFromStart: 35, Priority: model.PriorityLow},
				{Title: "Second Irrigation", Type: model.TaskWatering, Description: "Irrigate during tillering stage", DaysFromStart: 45, Priority: model.PriorityMedium},
				{Title: "Pest Control", Type: model.TaskGeneral, Description: "Monitor and control pests", DaysFromStart: 60, Priority: model.PriorityLow},
				{Title: "Final Irrigation", Type: model.TaskWatering, Description: "Last irrigation before harvest", DaysFromStart: 110, Priority: model.PriorityHigh},
				{Title: "Harvest Wheat", Type: model.TaskHarvesting, Description: "Harvest when grains are hard and golden", DaysFromStart: 140, Priority: model.PriorityHigh},
			},
		},
		{
			ID:          "tomato_summer",
			Name:        "Tomato Summer Cultivation",
			Description: "Complete tomato cultivation cycle for summer season",
			CropType:    "tomato",
			Season:      "summer",
			CreatedAt:   createdAt,
			Tasks: []model.TemplateTask{
				{Title: "Nursery Preparation", Type: model.TaskGeneral, Description: "Prepare nursery beds for seedlings", DaysFromStart: 0, Priority: model.PriorityHigh},
				{Title: "Seed Sowing", Type: model.TaskGeneral, Description: "Sow tomato seeds in nursery", DaysFromStart: 1, Priority: model.PriorityHigh},
				{Title: "Seedling Care", Type: model.TaskGeneral, Description: "Water and protect seedlings", DaysFromStart: 7, Priority: model.PriorityMedium},
				{Title: "Field Preparation", Type: model.TaskGeneral, Description: "Prepare main field with proper beds", DaysFromStart: 14, Priority: model.PriorityHigh},
				{Title: "Transplanting", Type: model.TaskGeneral, Description: "Transplant seedlings to main field", DaysFromStart: 21, Priority: model.PriorityHigh},
				{Title: "Staking Setup", Type: model.TaskGeneral, Description: "Install stakes for plant support", DaysFromStart: 28, Priority: model.PriorityMedium},
				{Title: "Irrigation Setup", Type: model.TaskWatering, Description: "Set up drip irrigation system", DaysFromStart: 25, Priority: model.PriorityMedium},
				{Title: "Fertilizer Application", Type: model.TaskFertilizing, Description: "Apply balanced NPK fertilizer", DaysFromStart: 30, Priority: model.PriorityMedium},
				{Title: "Pest Monitoring", Type: model.TaskGeneral, Description: "Regular pest and disease monitoring", DaysFromStart: 35, Priority: model.PriorityLow},
				{Title: "Pruning", Type: model.TaskPruning, Description: "Remove suckers and lower leaves", DaysFromStart: 45, Priority: model.PriorityMedium},
				{Title: "Fruit Harvesting", Type: model.TaskHarvesting, Description: "Harvest ripe tomatoes regularly", DaysFromStart: 70, Priority: model.PriorityHigh},
			},
		},
		{
			ID:          "cotton_summer",
			Name:        "Cotton Summer Cultivation",
			Description: "Complete cotton cultivation cycle for summer season",
			CropType:    "cotton",
			Season:      "summer",
			CreatedAt:   createdAt,
			Tasks: []model.TemplateTask{
				{Title: "Field Preparation", Type: model.TaskGeneral, Description: "Deep plow and prepare field", DaysFromStart: 0, Priority: model.PriorityHigh},
				{Title: "Seed Treatment", Type: model.TaskGeneral, Description: "Treat cotton seeds with fungicide", DaysFromStart: 1, Priority: model.PriorityHigh},
				{Title: "Sowing", Type: model.TaskGeneral, Description: "Sow treated seeds at proper spacing", DaysFromStart: 7, Priority: model.PriorityHigh},
				{Title: "Thinning", Type: model.TaskGeneral, Description: "Thin seedlings for proper spacing", DaysFromStart: 21, Priority: model.PriorityMedium},
				{Title: "Fertilizer Application", Type: model.TaskFertilizing, Description: "Apply nitrogen and phosphorus", DaysFromStart: 30, Priority: model.PriorityMedium},
				{Title: "Irrigation", Type: model.TaskWatering, Description: "Provide adequate water during critical stages", DaysFromStart: 35, Priority: model.PriorityMedium},
				{Title: "Pest Control", Type: model.TaskGeneral, Description: "Monitor and control bollworms and other pests", DaysFromStart: 45, Priority: model.PriorityLow},
				{Title: "Weed Management", Type: model.TaskGeneral, Description: "Control weeds in the field", DaysFromStart: 50, Priority: model.PriorityLow},
				{Title: "Boll Development Monitoring", Type: model.TaskGeneral, Description: "Monitor boll development and maturity", DaysFromStart: 90, Priority: model.PriorityMedium},
				{Title: "Harvest Cotton", Type: model.TaskHarvesting, Description: "Pick cotton when bolls are fully open", DaysFromStart: 150, Priority: model.PriorityHigh},
			},
		},
	}
}
