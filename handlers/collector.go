package handlers

import (
	"net/http"
	"time"

	"recolecta-api/apperr"
	"recolecta-api/config"
	"recolecta-api/lifecycle"
	"recolecta-api/middleware"
	"recolecta-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Name       string   `json:"name" binding:"required"`
	Type       string   `json:"type" binding:"required"`
	QuantityKg float64  `json:"quantityKg" binding:"required,gt=0"`
	PriceSoles float64  `json:"priceSoles" binding:"required,gt=0"`
	Region     string   `json:"region" binding:"required"`
	Photos     []string `json:"photos" binding:"required"`
}

// CreateProduct creates a new listing in PENDING status (collector only)
func CreateProduct(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.Validation(err.Error()))
		return
	}

	product := models.Product{
		Name:       req.Name,
		Type:       req.Type,
		QuantityKg: req.QuantityKg,
		PriceSoles: req.PriceSoles,
		Region:     req.Region,
		Photos:     req.Photos,
		Status:     lifecycle.Initial,
		OwnerID:    ownerID,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// ListOwnProducts returns all products (any status) owned by the caller
func ListOwnProducts(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	products := []models.Product{}
	config.DB.Preload("Traceability").
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&products)
	c.JSON(http.StatusOK, products)
}

type TraceabilityRequest struct {
	Zone        string `json:"zone" binding:"required"`
	Community   string `json:"community" binding:"required"`
	HarvestDate string `json:"harvestDate" binding:"required"`
}

// harvest dates arrive either as full RFC 3339 timestamps or bare
// calendar dates from the collector form.
func parseHarvestDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// UpsertTraceability creates or replaces the provenance record for a
// product. Only the owning collector may do this; unknown and not-owned
// products yield the same 404.
func UpsertTraceability(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var req TraceabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.Validation(err.Error()))
		return
	}
	harvestDate, err := parseHarvestDate(req.HarvestDate)
	if err != nil {
		apperr.Write(c, apperr.Validation("harvestDate must be a valid date"))
		return
	}

	var product models.Product
	if err := config.DB.Where("id = ? AND owner_id = ?", c.Param("id"), ownerID).
		First(&product).Error; err != nil {
		apperr.Write(c, apperr.NotFound("Product not found"))
		return
	}

	var trace models.Traceability
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("product_id = ?", product.ID).First(&trace).Error
		if err != nil {
			trace = models.Traceability{
				ProductID:   product.ID,
				Zone:        req.Zone,
				Community:   req.Community,
				HarvestDate: harvestDate,
			}
			return tx.Create(&trace).Error
		}
		trace.Zone = req.Zone
		trace.Community = req.Community
		trace.HarvestDate = harvestDate
		return tx.Save(&trace).Error
	})
	if txErr != nil {
		apperr.Write(c, txErr)
		return
	}
	c.JSON(http.StatusOK, trace)
}

// PublishProduct moves an APPROVED product to PUBLISHED. Only the owning
// collector may publish; everyone else gets the ownership-masking 404.
func PublishProduct(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var product models.Product
	if err := config.DB.Where("id = ? AND owner_id = ?", c.Param("id"), ownerID).
		First(&product).Error; err != nil {
		apperr.Write(c, apperr.NotFound("Product not found"))
		return
	}

	if err := lifecycle.CanTransition(product.Status, models.StatusPublished, models.RoleCollector); err != nil {
		apperr.Write(c, apperr.State(err.Error()))
		return
	}

	if err := config.DB.Model(&product).Update("status", models.StatusPublished).Error; err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
