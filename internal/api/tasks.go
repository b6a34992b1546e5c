package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/safuramariyam/greenthumb/internal/service"
)

func (s *Server) listTasks(c *gin.Context) {
	tasks, err := s.tasks.List(c.Request.Context())
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) listUpcomingTasks(c *gin.Context) {
	days := queryInt(c, "days", 7)
	tasks, err := s.tasks.ListUpcoming(c.Request.Context(), time.Now(), days)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) getTask(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	task, err := s.tasks.Get(c.Request.Context(), id)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) createTask(c *gin.Context) {
	var input service.TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	task, err := s.tasks.Create(c.Request.Context(), input)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) updateTask(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var patch service.TaskUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	task, err := s.tasks.Update(c.Request.Context(), id, patch)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) deleteTask(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := s.tasks.Delete(c.Request.Context(), id); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
