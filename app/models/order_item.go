package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	ID           string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID      string          `gorm:"size:36;not null;index" json:"order_id"`
	Order        Order           `gorm:"foreignKey:OrderID;references:ID"`
	ProductSlug  string          `gorm:"size:255;not null" json:"product_slug"`
	ProductName  string          `gorm:"size:255;not null" json:"product_name"`
	VariantID    *int64          `json:"variant_id,omitempty"`
	VariantLabel string          `gorm:"size:100" json:"variant_label,omitempty"`
	Qty          int             `gorm:"not null" json:"qty"`
	Price        decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"subtotal"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
