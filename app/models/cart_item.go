package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem snapshots a remote catalog product (and optionally one of its
// variants) at the moment it was added. The catalog lives behind the store
// API, so everything needed to re-render the line is denormalized here.
type CartItem struct {
	ID           string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Cart         *Cart  `gorm:"foreignKey:CartID"`
	CartID       string `gorm:"size:36;index"`
	ProductSlug  string `gorm:"size:255;index;not null"`
	ProductName  string `gorm:"size:255;not null"`
	VariantID    *int64 `gorm:"index"`
	VariantLabel string `gorm:"size:100"`
	ImagePath    string `gorm:"size:500"`
	Qty          int
	Price        decimal.Decimal  `gorm:"type:decimal(16,2);"`
	OldPrice     *decimal.Decimal `gorm:"type:decimal(16,2);"`
	Subtotal     decimal.Decimal  `gorm:"type:decimal(16,2);"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
