package model

import "time"

// WeatherSample is one raw sub-daily data point from the upstream forecast
// provider.
type WeatherSample struct {
	Timestamp     time.Time
	Temperature   float64
	Humidity      float64
	Precipitation float64
	WindSpeed     float64
	Condition     string
	Icon          string
	Description   string
}

// WeatherDay is the aggregate of all samples falling on one calendar day:
// mean temperature/humidity/wind, summed precipitation, and the most
// frequent condition strings.
type WeatherDay struct {
	Date          string  `json:"date"`
	Temperature   float64 `json:"temperature"`
	Humidity      int     `json:"humidity"`
	Precipitation float64 `json:"precipitation"`
	WindSpeed     float64 `json:"wind_speed"`
	Condition     string  `json:"weather_condition"`
	Icon          string  `json:"weather_icon"`
	Description   string  `json:"description"`
}

// WeatherForecast is the daily forecast for a location.
type WeatherForecast struct {
	Location  string       `json:"location"`
	Forecasts []WeatherDay `json:"forecasts"`
}

// WeatherRecommendation is a single actionable farming suggestion derived
// from the forecast.
type WeatherRecommendation struct {
	TaskType       string `json:"task_type"`
	Recommendation string `json:"recommendation"`
	Severity       string `json:"severity"` // low, medium, high
	Reason         string `json:"reason"`
}

// Temperature trends reported by the impact analysis.
const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendStable  = "stable"
)

// WeatherImpact summarizes how the forecast affects scheduled work.
type WeatherImpact struct {
	WillRainToday    bool                    `json:"will_rain_today"`
	RainProbability  float64                 `json:"rain_probability"`
	TemperatureTrend string                  `json:"temperature_trend"`
	Recommendations  []WeatherRecommendation `json:"recommendations"`
}
