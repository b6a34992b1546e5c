package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/safuramariyam/greenthumb/internal/model"
)

func (s *Server) listNotifications(c *gin.Context) {
	feed, err := s.notifications.List(c.Request.Context(), time.Now())
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

func (s *Server) getNotificationSettings(c *gin.Context) {
	settings, err := s.notifications.Settings(c.Request.Context())
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) updateNotificationSettings(c *gin.Context) {
	var settings model.NotificationSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.notifications.UpdateSettings(c.Request.Context(), settings); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
}

func (s *Server) markNotificationRead(c *gin.Context) {
	if err := s.notifications.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (s *Server) markAllNotificationsRead(c *gin.Context) {
	if err := s.notifications.MarkAllRead(c.Request.Context()); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

func (s *Server) deleteNotification(c *gin.Context) {
	if err := s.notifications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}

func (s *Server) checkNotifications(c *gin.Context) {
	if err := s.notifications.Check(c.Request.Context(), time.Now()); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification check completed"})
}
