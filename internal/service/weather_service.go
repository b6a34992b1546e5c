package service

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"github.com/safuramariyam/greenthumb/internal/model"
)

// SampleSource produces raw sub-daily forecast samples for a location.
type SampleSource interface {
	Fetch(ctx context.Context, lat, lon float64) ([]model.WeatherSample, error)
}

// WeatherService turns raw forecast samples into daily summaries. Upstream
// failures degrade to a synthetic forecast instead of surfacing.
type WeatherService struct {
	source SampleSource
}

func NewWeatherService(source SampleSource) *WeatherService {
	return &WeatherService{source: source}
}

// Forecast returns one summary per calendar day within [today, today+days).
func (s *WeatherService) Forecast(ctx context.Context, lat, lon float64, days int, now time.Time) []model.WeatherDay {
	samples, err := s.source.Fetch(ctx, lat, lon)
	if err != nil {
		log.Printf("weather source unavailable, using synthetic forecast: %v", err)
		return SyntheticForecast(now)
	}
	return AggregateDaily(samples, now, days)
}

// Impact analyzes the forecast for the location.
func (s *WeatherService) Impact(ctx context.Context, lat, lon float64, days int, now time.Time) model.WeatherImpact {
	return AnalyzeImpact(s.Forecast(ctx, lat, lon, days, now), now)
}

// AggregateDaily reduces samples to daily summaries: mean temperature,
// humidity (rounded), and wind speed, summed precipitation, and the most
// frequent condition/icon/description. Days outside [today, today+days) are
// dropped; output is sorted by date ascending.
func AggregateDaily(samples []model.WeatherSample, now time.Time, days int) []model.WeatherDay {
	today := dateOf(now)
	end := today.AddDate(0, 0, days)

	type accum struct {
		temps, hums, winds       []float64
		precip                   float64
		conditions, icons, descs []string
	}
	byDate := make(map[string]*accum)

	for _, sample := range samples {
		day := dateOf(sample.Timestamp.In(now.Location()))
		if day.Before(today) || !day.Before(end) {
			continue
		}
		key := day.Format(time.DateOnly)
		a := byDate[key]
		if a == nil {
			a = &accum{}
			byDate[key] = a
		}
		a.temps = append(a.temps, sample.Temperature)
		a.hums = append(a.hums, sample.Humidity)
		a.winds = append(a.winds, sample.WindSpeed)
		a.precip += sample.Precipitation
		a.conditions = append(a.conditions, sample.Condition)
		a.icons = append(a.icons, sample.Icon)
		a.descs = append(a.descs, sample.Description)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	forecast := make([]model.WeatherDay, 0, len(dates))
	for _, date := range dates {
		a := byDate[date]
		forecast = append(forecast, model.WeatherDay{
			Date:          date,
			Temperature:   round1(mean(a.temps)),
			Humidity:      int(math.Round(mean(a.hums))),
			Precipitation: round1(a.precip),
			WindSpeed:     round1(mean(a.winds)),
			Condition:     mode(a.conditions),
			Icon:          mode(a.icons),
			Description:   mode(a.descs),
		})
	}
	return forecast
}

// SyntheticForecast is the deterministic 7-day fallback used when the live
// source is unreachable: mild alternating temperatures, rain on the first
// three days, clear after.
func SyntheticForecast(now time.Time) []model.WeatherDay {
	forecast := make([]model.WeatherDay, 0, 7)
	for i := 0; i < 7; i++ {
		day := model.WeatherDay{
			Date:        dateOf(now).AddDate(0, 0, i).Format(time.DateOnly),
			Temperature: float64(25 + (i%3)*2),
			Humidity:    65 + (i%2)*10,
			WindSpeed:   float64(5 + i%2),
			Condition:   "Clear",
			Icon:        "01d",
			Description: "clear sky",
		}
		if i < 3 {
			day.Precipitation = 2.5
			day.Condition = "Rain"
			day.Icon = "10d"
			day.Description = "light rain"
		}
		forecast = append(forecast, day)
	}
	return forecast
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// mode returns the most frequent value; ties go to the value seen first.
func mode(values []string) string {
	if len(values) == 0 {
		return ""
	}
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	best := values[0]
	for _, v := range values {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best
}
