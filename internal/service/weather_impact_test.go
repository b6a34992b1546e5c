package service

import (
	"testing"
	"time"

	"github.com/safuramariyam/greenthumb/internal/model"
)

func flatDay(date string, temp float64) model.WeatherDay {
	return model.WeatherDay{
		Date:        date,
		Temperature: temp,
		Humidity:    65,
		WindSpeed:   5,
		Condition:   "Clear",
	}
}

// TestAnalyzeImpactRainToday verifies that precipitation above the rain
// threshold yields exactly one watering recommendation, severity high, and the
// scaled probability.
func TestAnalyzeImpactRainToday(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	today := flatDay("2025-06-10", 24)
	today.Precipitation = 1.0

	impact := AnalyzeImpact([]model.WeatherDay{today, flatDay("2025-06-11", 24)}, now)

	if !impact.WillRainToday {
		t.Error("WillRainToday = false, want true for precipitation 1.0")
	}
	if impact.RainProbability != 20 {
		t.Errorf("RainProbability = %v, want 20", impact.RainProbability)
	}
	watering := 0
	for _, rec := range impact.Recommendations {
		if rec.TaskType == model.TaskWatering {
			watering++
			if rec.Severity != model.PriorityHigh {
				t.Errorf("watering severity = %q, want high", rec.Severity)
			}
		}
	}
	if watering != 1 {
		t.Errorf("got %d watering recommendations, want exactly 1", watering)
	}
}

// TestAnalyzeImpactProbabilityCap verifies the probability never exceeds 100.
func TestAnalyzeImpactProbabilityCap(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	today := flatDay("2025-06-10", 24)
	today.Precipitation = 12.0

	impact := AnalyzeImpact([]model.WeatherDay{today}, now)
	if impact.RainProbability != 100 {
		t.Errorf("RainProbability = %v, want capped at 100", impact.RainProbability)
	}
}

// TestAnalyzeImpactTrend covers the rising/falling/stable thresholds on the
// first two days.
func TestAnalyzeImpactTrend(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		day0  float64
		day1  float64
		trend string
	}{
		{"rising", 20, 23, model.TrendRising},
		{"falling", 23, 20, model.TrendFalling},
		{"small change is stable", 20, 22, model.TrendStable},
		{"equal is stable", 20, 20, model.TrendStable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			impact := AnalyzeImpact([]model.WeatherDay{
				flatDay("2025-06-10", tc.day0),
				flatDay("2025-06-11", tc.day1),
			}, now)
			if impact.TemperatureTrend != tc.trend {
				t.Errorf("trend = %q, want %q", impact.TemperatureTrend, tc.trend)
			}
		})
	}
}

// TestAnalyzeImpactTemperatureAlerts checks the heat and cold rules against
// the three-day average.
func TestAnalyzeImpactTemperatureAlerts(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		temps []float64
		want  string
	}{
		{"heat", []float64{36, 37, 38}, "High temperature alert - monitor crops closely"},
		{"cold", []float64{8, 9, 7}, "Cold weather precautions needed"},
		{"mild has neither", []float64{22, 23, 24}, ""},
		{"fourth day excluded", []float64{36, 36, 36, 0}, "High temperature alert - monitor crops closely"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var forecast []model.WeatherDay
			for i, temp := range tc.temps {
				date := now.AddDate(0, 0, i).Format(time.DateOnly)
				forecast = append(forecast, flatDay(date, temp))
			}
			impact := AnalyzeImpact(forecast, now)

			var found string
			for _, rec := range impact.Recommendations {
				if rec.TaskType == model.TaskGeneral {
					found = rec.Recommendation
					break
				}
			}
			if found != tc.want {
				t.Errorf("general recommendation = %q, want %q", found, tc.want)
			}
		})
	}
}

// TestAnalyzeImpactWind verifies the wind rule fires once no matter how many
// windy days fall in the window.
func TestAnalyzeImpactWind(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	day0 := flatDay("2025-06-10", 22)
	day0.WindSpeed = 18
	day1 := flatDay("2025-06-11", 22)
	day1.WindSpeed = 20

	impact := AnalyzeImpact([]model.WeatherDay{day0, day1}, now)

	windy := 0
	for _, rec := range impact.Recommendations {
		if rec.Recommendation == "Strong winds expected - secure loose equipment" {
			windy++
		}
	}
	if windy != 1 {
		t.Errorf("got %d wind recommendations, want 1", windy)
	}
}

// TestAnalyzeImpactEmptyForecast verifies the analysis degrades cleanly when
// no days are available.
func TestAnalyzeImpactEmptyForecast(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	impact := AnalyzeImpact(nil, now)

	if impact.WillRainToday {
		t.Error("WillRainToday = true for empty forecast")
	}
	if impact.RainProbability != 0 {
		t.Errorf("RainProbability = %v, want 0", impact.RainProbability)
	}
	if impact.TemperatureTrend != model.TrendStable {
		t.Errorf("trend = %q, want stable", impact.TemperatureTrend)
	}
	if len(impact.Recommendations) != 0 {
		t.Errorf("got %d recommendations, want none", len(impact.Recommendations))
	}
}
