package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) listTemplates(c *gin.Context) {
	templates, err := s.templates.List(c.Request.Context())
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (s *Server) templateCategories(c *gin.Context) {
	categories, err := s.templates.Categories(c.Request.Context())
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) getTemplate(c *gin.Context) {
	template, err := s.templates.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func (s *Server) templatesByCrop(c *gin.Context) {
	templates, err := s.templates.ByCrop(c.Request.Context(), c.Param("crop"))
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (s *Server) templatesBySeason(c *gin.Context) {
	templates, err := s.templates.BySeason(c.Request.Context(), c.Param("season"))
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (s *Server) applyTemplate(c *gin.Context) {
	result, err := s.templates.Apply(c.Request.Context(), c.Param("id"), c.Query("start_date"), time.Now())
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
