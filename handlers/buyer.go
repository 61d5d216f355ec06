package handlers

import (
	"net/http"

	"recolecta-api/apperr"
	"recolecta-api/config"
	"recolecta-api/middleware"
	"recolecta-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlaceOrderRequest struct {
	Address string `json:"address" binding:"required"`
	Items   []struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,gt=0"`
	} `json:"items" binding:"required,min=1,dive"`
}

// PlaceOrder creates an immutable order snapshot for the buyer. The
// order and all its lines are created in one transaction — a bad line
// leaves nothing behind. Product existence is checked per line; status
// is deliberately not (orders may reference unpublished products).
func PlaceOrder(c *gin.Context) {
	buyerID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.Validation(err.Error()))
		return
	}

	var order models.Order
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var items []models.OrderItem
		for _, line := range req.Items {
			var product models.Product
			if err := tx.Select("id").First(&product, "id = ?", line.ProductID).Error; err != nil {
				return apperr.NotFound("Product not found: " + line.ProductID)
			}
			items = append(items, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			})
		}

		order = models.Order{
			BuyerID: buyerID,
			Address: req.Address,
			Status:  models.OrderStatusCreated,
			Items:   items,
		}
		return tx.Create(&order).Error
	})
	if txErr != nil {
		apperr.Write(c, txErr)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListOwnOrders returns all orders placed by the caller
func ListOwnOrders(c *gin.Context) {
	buyerID := middleware.GetUserID(c)
	orders := []models.Order{}
	config.DB.Preload("Items").
		Where("buyer_id = ?", buyerID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, orders)
}
