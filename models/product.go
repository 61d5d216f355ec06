package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductStatus represents all possible states of a product listing
type ProductStatus string

const (
	StatusPending   ProductStatus = "PENDING"
	StatusApproved  ProductStatus = "APPROVED"
	StatusRejected  ProductStatus = "REJECTED"
	StatusPublished ProductStatus = "PUBLISHED"
)

type Product struct {
	ID           string        `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name" gorm:"not null"`
	Type         string        `json:"type" gorm:"not null"`
	QuantityKg   float64       `json:"quantityKg" gorm:"not null"`
	PriceSoles   float64       `json:"priceSoles" gorm:"not null"`
	Region       string        `json:"region" gorm:"not null"`
	Photos       []string      `json:"photos" gorm:"serializer:json"`
	Status       ProductStatus `json:"status" gorm:"not null;default:'PENDING'"`
	OwnerID      string        `json:"ownerId" gorm:"not null;index"`
	Owner        *User         `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Traceability *Traceability `json:"traceability,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Traceability is the provenance record attached 1:1 to a product,
// maintained only by the owning collector.
type Traceability struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	ProductID   string    `json:"productId" gorm:"uniqueIndex;not null"`
	Zone        string    `json:"zone" gorm:"not null"`
	Community   string    `json:"community" gorm:"not null"`
	HarvestDate time.Time `json:"harvestDate" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t *Traceability) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
