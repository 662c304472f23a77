package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jenaralee/StoryStash/internal/entities"
)

// GetCategories handles GET /api/categories
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, entities.Categories)
}

// GetAgeRanges handles GET /api/age-ranges
func GetAgeRanges(c *gin.Context) {
	c.JSON(http.StatusOK, entities.AgeRanges)
}
