package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"HRDeskGo/config"
	"HRDeskGo/models"
)

// DocumentController serves the HR document listing.
type DocumentController struct{}

// ListDocuments returns documents, optionally filtered by category.
func (dc *DocumentController) ListDocuments(c *gin.Context) {
	query := config.DB.Order("last_modified DESC")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var documents []models.Document
	if err := query.Find(&documents).Error; err != nil {
		config.Logger.Errorw("document list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": documents})
}
