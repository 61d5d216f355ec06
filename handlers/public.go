package handlers

import (
	"net/http"

	"recolecta-api/apperr"
	"recolecta-api/config"
	"recolecta-api/lifecycle"
	"recolecta-api/models"

	"github.com/gin-gonic/gin"
)

// ListCatalog returns the public catalog — only PUBLISHED products ever
// appear here, regardless of filters.
func ListCatalog(c *gin.Context) {
	query := config.DB.Preload("Traceability").Preload("Owner").
		Where("status = ?", models.StatusPublished)

	// q matches the name as a case-insensitive substring
	if q := c.Query("q"); q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}
	if typ := c.Query("type"); typ != "" {
		query = query.Where("type = ?", typ)
	}
	if region := c.Query("region"); region != "" {
		query = query.Where("region = ?", region)
	}

	products := []models.Product{}
	query.Find(&products)
	c.JSON(http.StatusOK, products)
}

// GetProduct returns a single published product with its traceability.
// Non-published products are invisible to the public.
func GetProduct(c *gin.Context) {
	var product models.Product
	err := config.DB.Preload("Traceability").Preload("Owner").
		First(&product, "id = ?", c.Param("id")).Error
	if err != nil || product.Status != models.StatusPublished {
		apperr.Write(c, apperr.NotFound("Product not found"))
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetLifecycleInfo returns the full product state machine for informational purposes
func GetLifecycleInfo(c *gin.Context) {
	transitions := []gin.H{}
	for _, t := range lifecycle.AllTransitions() {
		transitions = append(transitions, gin.H{
			"from":  t.From,
			"to":    t.To,
			"actor": t.Actor,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"initial_status": lifecycle.Initial,
		"state_machine":  transitions,
		"description":    "Product Listing Lifecycle State Machine",
	})
}
