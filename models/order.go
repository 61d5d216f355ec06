package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatusCreated is the only order status in scope — orders are
// immutable snapshots once placed (no edit/cancel operations).
const OrderStatusCreated = "CREATED"

type Order struct {
	ID        string      `json:"id" gorm:"primaryKey"`
	BuyerID   string      `json:"buyerId" gorm:"not null;index"`
	Buyer     *User       `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
	Address   string      `json:"address" gorm:"not null"`
	Status    string      `json:"status" gorm:"not null;default:'CREATED'"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem references a product by id at placement time. Product
// quantityKg is not decremented — no stock reservation in this system.
type OrderItem struct {
	ID        string `json:"id" gorm:"primaryKey"`
	OrderID   string `json:"orderId" gorm:"not null;index"`
	ProductID string `json:"productId" gorm:"not null"`
	Quantity  int    `json:"quantity" gorm:"not null"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
