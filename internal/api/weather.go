package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/safuramariyam/greenthumb/internal/model"
	"github.com/safuramariyam/greenthumb/internal/service"
)

func (s *Server) weatherForecast(c *gin.Context) {
	lat := queryFloat(c, "lat", s.defaultLat)
	lon := queryFloat(c, "lon", s.defaultLon)
	days := queryInt(c, "days", 7)

	forecast := s.weather.Forecast(c.Request.Context(), lat, lon, days, time.Now())
	c.JSON(http.StatusOK, model.WeatherForecast{
		Location:  fmt.Sprintf("%.4f,%.4f", lat, lon),
		Forecasts: forecast,
	})
}

func (s *Server) weatherImpact(c *gin.Context) {
	lat := queryFloat(c, "lat", s.defaultLat)
	lon := queryFloat(c, "lon", s.defaultLon)
	days := queryInt(c, "days", 7)

	c.JSON(http.StatusOK, s.weather.Impact(c.Request.Context(), lat, lon, days, time.Now()))
}

func (s *Server) weatherRecommendations(c *gin.Context) {
	lat := queryFloat(c, "lat", s.defaultLat)
	lon := queryFloat(c, "lon", s.defaultLon)
	now := time.Now()

	forecast := s.weather.Forecast(c.Request.Context(), lat, lon, 3, now)
	impact := service.AnalyzeImpact(forecast, now)

	if len(forecast) > 3 {
		forecast = forecast[:3]
	}
	c.JSON(http.StatusOK, gin.H{
		"recommendations": impact.Recommendations,
		"weather_summary": gin.H{
			"will_rain_today":   impact.WillRainToday,
			"rain_probability":  impact.RainProbability,
			"temperature_trend": impact.TemperatureTrend,
			"next_3_days":       forecast,
		},
	})
}
