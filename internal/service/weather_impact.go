package service

import (
	"time"

	"github.com/safuramariyam/greenthumb/internal/model"
)

// AnalyzeImpact derives the rain outlook, temperature trend, and farming
// recommendations from a daily forecast. Pure: the same forecast always
// yields the same recommendations in the same order.
func AnalyzeImpact(forecast []model.WeatherDay, now time.Time) model.WeatherImpact {
	today := now.Format(time.DateOnly)

	var todayForecast *model.WeatherDay
	for i := range forecast {
		if forecast[i].Date == today {
			todayForecast = &forecast[i]
			break
		}
	}

	willRainToday := todayForecast != nil && todayForecast.Precipitation > 0.5

	// Rough probability: precipitation in mm scaled by 20, capped at 100.
	var rainProbability float64
	if todayForecast != nil {
		rainProbability = todayForecast.Precipitation * 20
		if rainProbability > 100 {
			rainProbability = 100
		}
	}

	trend := model.TrendStable
	if len(forecast) >= 2 {
		change := forecast[1].Temperature - forecast[0].Temperature
		switch {
		case change > 2:
			trend = model.TrendRising
		case change < -2:
			trend = model.TrendFalling
		}
	}

	recommendations := make([]model.WeatherRecommendation, 0)

	if willRainToday {
		recommendations = append(recommendations, model.WeatherRecommendation{
			TaskType:       model.TaskWatering,
			Recommendation: "Skip watering - rain expected today",
			Severity:       model.PriorityHigh,
			Reason:         "Natural rainfall will provide adequate moisture",
		})
	} else if rainProbability > 50 {
		recommendations = append(recommendations, model.WeatherRecommendation{
			TaskType:       model.TaskWatering,
			Recommendation: "Reduce watering - high chance of rain",
			Severity:       model.PriorityMedium,
			Reason:         "Upcoming rain will affect soil moisture levels",
		})
	}

	window := forecast
	if len(window) > 3 {
		window = window[:3]
	}
	if len(window) > 0 {
		var sum float64
		for _, day := range window {
			sum += day.Temperature
		}
		avg := sum / float64(len(window))
		if avg > 35 {
			recommendations = append(recommendations, model.WeatherRecommendation{
				TaskType:       model.TaskGeneral,
				Recommendation: "High temperature alert - monitor crops closely",
				Severity:       model.PriorityHigh,
				Reason:         "Extreme heat can stress plants and increase water needs",
			})
		} else if avg < 10 {
			recommendations = append(recommendations, model.WeatherRecommendation{
				TaskType:       model.TaskGeneral,
				Recommendation: "Cold weather precautions needed",
				Severity:       model.PriorityMedium,
				Reason:         "Low temperatures may affect plant growth and increase frost risk",
			})
		}

		for _, day := range window {
			if day.WindSpeed > 15 {
				recommendations = append(recommendations, model.WeatherRecommendation{
					TaskType:       model.TaskGeneral,
					Recommendation: "Strong winds expected - secure loose equipment",
					Severity:       model.PriorityMedium,
					Reason:         "High winds can damage crops and farming equipment",
				})
				break
			}
		}
	}

	return model.WeatherImpact{
		WillRainToday:    willRainToday,
		RainProbability:  rainProbability,
		TemperatureTrend: trend,
		Recommendations:  recommendations,
	}
}
