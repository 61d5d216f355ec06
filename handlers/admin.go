package handlers

import (
	"net/http"

	"recolecta-api/apperr"
	"recolecta-api/config"
	"recolecta-api/lifecycle"
	"recolecta-api/models"

	"github.com/gin-gonic/gin"
)

type ApproveRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// ApproveProduct records the admin review decision: APPROVED or
// REJECTED. Re-review of an already reviewed (even published) product
// is permitted.
func ApproveProduct(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.Validation("approved must be boolean"))
		return
	}

	var product models.Product
	if err := config.DB.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		apperr.Write(c, apperr.NotFound("Product not found"))
		return
	}

	target := models.StatusRejected
	if *req.Approved {
		target = models.StatusApproved
	}
	if err := lifecycle.CanTransition(product.Status, target, models.RoleAdmin); err != nil {
		apperr.Write(c, apperr.State(err.Error()))
		return
	}

	if err := config.DB.Model(&product).Update("status", target).Error; err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// AdminListProducts returns all products regardless of status — admin only
func AdminListProducts(c *gin.Context) {
	products := []models.Product{}
	query := config.DB.Preload("Owner").Preload("Traceability")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&products)
	c.JSON(http.StatusOK, products)
}

// AdminListOrders returns all orders with buyer identity attached — admin only
func AdminListOrders(c *gin.Context) {
	orders := []models.Order{}
	config.DB.Preload("Buyer").Preload("Items").
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, orders)
}

// AdminListUsers returns all users — admin only
func AdminListUsers(c *gin.Context) {
	users := []models.User{}
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, users)
}
