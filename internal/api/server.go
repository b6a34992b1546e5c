// Package api exposes the HTTP transport over the greenthumb services.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/safuramariyam/greenthumb/internal/analysis"
	"github.com/safuramariyam/greenthumb/internal/event"
	"github.com/safuramariyam/greenthumb/internal/model"
	"github.com/safuramariyam/greenthumb/internal/service"
)

// Server holds the wired services behind the HTTP handlers.
type Server struct {
	tasks         *service.TaskService
	templates     *service.TemplateService
	weather       *service.WeatherService
	notifications *service.NotificationService
	broadcaster   *event.Broadcaster
	// analysis is nil when no model service is configured.
	analysis *analysis.Client

	defaultLat float64
	defaultLon float64
}

func NewServer(
	tasks *service.TaskService,
	templates *service.TemplateService,
	weather *service.WeatherService,
	notifications *service.NotificationService,
	broadcaster *event.Broadcaster,
	analysisClient *analysis.Client,
	defaultLat, defaultLon float64,
) *Server {
	return &Server{
		tasks:         tasks,
		templates:     templates,
		weather:       weather,
		notifications: notifications,
		broadcaster:   broadcaster,
		analysis:      analysisClient,
		defaultLat:    defaultLat,
		defaultLon:    defaultLon,
	}
}

// Router builds the route table.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.Default())

	router.GET("/health", s.health)

	calendar := router.Group("/api/calendar")
	{
		calendar.GET("/tasks", s.listTasks)
		calendar.GET("/tasks/upcoming", s.listUpcomingTasks)
		calendar.GET("/tasks/:id", s.getTask)
		calendar.POST("/tasks", s.createTask)
		calendar.PUT("/tasks/:id", s.updateTask)
		calendar.DELETE("/tasks/:id", s.deleteTask)
		calendar.GET("/events", s.streamEvents)
	}

	templates := router.Group("/api/templates")
	{
		templates.GET("", s.listTemplates)
		templates.GET("/categories", s.templateCategories)
		templates.GET("/crop/:crop", s.templatesByCrop)
		templates.GET("/season/:season", s.templatesBySeason)
		templates.POST("/apply/:id", s.applyTemplate)
		templates.GET("/:id", s.getTemplate)
	}

	weather := router.Group("/api/weather")
	{
		weather.GET("/forecast", s.weatherForecast)
		weather.GET("/impact", s.weatherImpact)
		weather.GET("/recommendations", s.weatherRecommendations)
	}

	notifications := router.Group("/api/notifications")
	{
		notifications.GET("", s.listNotifications)
		notifications.GET("/settings", s.getNotificationSettings)
		notifications.PUT("/settings", s.updateNotificationSettings)
		notifications.PUT("/mark-all-read", s.markAllNotificationsRead)
		notifications.PUT("/:id/read", s.markNotificationRead)
		notifications.DELETE("/:id", s.deleteNotification)
		notifications.POST("/check", s.checkNotifications)
	}

	router.POST("/analyze", s.analyzePlant)
	soil := router.Group("/soil")
	{
		soil.POST("/analyze-manual", s.analyzeSoil)
		soil.GET("/texture-types", s.soilTextureTypes)
		soil.GET("/ph-guide", s.soilPHGuide)
		soil.GET("/npk-guide", s.soilNPKGuide)
	}

	return router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"service":     "GreenThumb Farm Scheduling API",
		"subscribers": s.broadcaster.Count(),
	})
}

// abortError maps service errors onto HTTP statuses.
func abortError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return value, true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func queryFloat(c *gin.Context, name string, fallback float64) float64 {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}
