package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safuramariyam/greenthumb/internal/analysis"
)

// maxImageBytes caps uploaded plant images at 10 MB.
const maxImageBytes = 10 << 20

func (s *Server) analyzePlant(c *gin.Context) {
	if s.analysis == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analysis service not configured"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if header.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}

	prediction, err := s.analysis.AnalyzePlant(c.Request.Context(), header.Filename, image)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prediction)
}

func (s *Server) analyzeSoil(c *gin.Context) {
	if s.analysis == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analysis service not configured"})
		return
	}

	var features analysis.SoilFeatures
	if err := c.ShouldBindJSON(&features); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report, err := s.analysis.AnalyzeSoil(c.Request.Context(), features)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) soilTextureTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"textures": []gin.H{
			{
				"name":        "Sandy",
				"description": "Large particles, excellent drainage, low nutrient retention",
				"ideal_for":   []string{"Carrots", "Potatoes", "Radishes", "Peanuts"},
			},
			{
				"name":        "Clay",
				"description": "Small particles, poor drainage, high nutrient retention",
				"ideal_for":   []string{"Cabbage", "Broccoli", "Brussels sprouts", "Kale"},
			},
			{
				"name":        "Loamy",
				"description": "Balanced mixture - ideal for most plants",
				"ideal_for":   []string{"Most vegetables", "Flowers", "Shrubs", "Herbs"},
			},
			{
				"name":        "Silty",
				"description": "Medium particles, good fertility and moisture retention",
				"ideal_for":   []string{"Most crops", "Perennials", "Shrubs"},
			},
		},
	})
}

func (s *Server) soilPHGuide(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ph_ranges": gin.H{
			"highly_acidic":   gin.H{"range": "4.0-5.5", "crops": []string{"Blueberries", "Azaleas", "Cranberries"}},
			"slightly_acidic": gin.H{"range": "5.5-6.5", "crops": []string{"Potatoes", "Strawberries", "Tomatoes"}},
			"neutral":         gin.H{"range": "6.5-7.5", "crops": []string{"Most vegetables", "Wheat", "Corn", "Soybeans"}},
			"alkaline":        gin.H{"range": "7.5-9.0", "crops": []string{"Asparagus", "Cabbage", "Beets"}},
		},
	})
}

func (s *Server) soilNPKGuide(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"nitrogen": gin.H{
			"description": "Essential for leaf and stem growth",
			"low":         "0-50 mg/kg - Yellowing leaves, stunted growth",
			"medium":      "50-100 mg/kg - Adequate for most crops",
			"high":        "100-200 mg/kg - Ideal for leafy greens, corn",
		},
		"phosphorus": gin.H{
			"description": "Essential for root development and flowering",
			"low":         "0-20 mg/kg - Purple leaves, poor flowering",
			"medium":      "20-40 mg/kg - Adequate for most crops",
			"high":        "40-80 mg/kg - Ideal for tomatoes, peppers, flowers",
		},
		"potassium": gin.H{
			"description": "Essential for plant health and disease resistance",
			"low":         "0-100 mg/kg - Brown leaf edges, weak stems",
			"medium":      "100-200 mg/kg - Adequate for most crops",
			"high":        "200-300 mg/kg - Ideal for fruits, root vegetables",
		},
	})
}
