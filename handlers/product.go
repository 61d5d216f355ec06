package handlers

import (
	"net/http"

	"recolecta-api/apperr"
	"recolecta-api/config"
	"recolecta-api/middleware"
	"recolecta-api/models"

	"github.com/gin-gonic/gin"
)

type UpdateProductRequest struct {
	Name       *string   `json:"name"`
	Type       *string   `json:"type"`
	QuantityKg *float64  `json:"quantityKg"`
	PriceSoles *float64  `json:"priceSoles"`
	Region     *string   `json:"region"`
	Photos     *[]string `json:"photos"`
}

// UpdateProduct patches a product's descriptive fields. Admins may patch
// any product at any status (used operationally for photo correction).
// The owning collector may patch only while the listing is not yet
// PUBLISHED — a live listing requires admin intervention to change.
func UpdateProduct(c *gin.Context) {
	actorID := middleware.GetUserID(c)
	actorRole := middleware.GetRole(c)

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.Validation(err.Error()))
		return
	}

	var product models.Product
	if err := config.DB.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		apperr.Write(c, apperr.NotFound("Product not found"))
		return
	}

	if actorRole != models.RoleAdmin {
		if product.OwnerID != actorID {
			apperr.Write(c, apperr.Forbidden("You don't own this product"))
			return
		}
		if product.Status == models.StatusPublished {
			apperr.Write(c, apperr.State("Published products can only be edited by an admin"))
			return
		}
	}

	if req.QuantityKg != nil && *req.QuantityKg <= 0 {
		apperr.Write(c, apperr.Validation("quantityKg must be positive"))
		return
	}
	if req.PriceSoles != nil && *req.PriceSoles <= 0 {
		apperr.Write(c, apperr.Validation("priceSoles must be positive"))
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Type != nil {
		product.Type = *req.Type
	}
	if req.QuantityKg != nil {
		product.QuantityKg = *req.QuantityKg
	}
	if req.PriceSoles != nil {
		product.PriceSoles = *req.PriceSoles
	}
	if req.Region != nil {
		product.Region = *req.Region
	}
	if req.Photos != nil {
		product.Photos = *req.Photos
	}

	if err := config.DB.Save(&product).Error; err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
