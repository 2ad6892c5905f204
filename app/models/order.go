package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = 1
	OrderStatusProcessing = 2
	OrderStatusShipped    = 3
	OrderStatusCompleted  = 4
	OrderStatusCancelled  = 5
	OrderStatusRefunded   = 6
	OrderStatusFailed     = 7
)

// StatusLabel is the display name for an order status code.
func StatusLabel(status int) string {
	switch status {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusProcessing:
		return "Processing"
	case OrderStatusShipped:
		return "Shipped"
	case OrderStatusCompleted:
		return "Completed"
	case OrderStatusCancelled:
		return "Cancelled"
	case OrderStatusRefunded:
		return "Refunded"
	case OrderStatusFailed:
		return "Failed"
	}
	return "Unknown"
}

type Order struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string    `gorm:"size:36;index"`
	User      User      `gorm:"foreignKey:UserID"`
	OrderCode string    `gorm:"type:varchar(255);unique;not null" json:"order_code"`
	OrderDate time.Time `gorm:"not null" json:"order_date"`

	OrderItems     []OrderItem
	BaseTotalPrice decimal.Decimal `gorm:"type:decimal(16,2);"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(16,2);"`
	TaxPercent     decimal.Decimal `gorm:"type:decimal(10,2);"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(16,2);"`
	ShippingCost   decimal.Decimal `gorm:"type:decimal(16,2);"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(16,2);"`

	// shipping contact snapshot, immutable once the order exists
	ShippingName    string `gorm:"size:255"`
	ShippingAddress string `gorm:"type:text"`
	ShippingCity    string `gorm:"size:100"`
	ShippingState   string `gorm:"size:100"`
	ShippingPincode string `gorm:"size:10"`
	ShippingPhone   string `gorm:"size:20"`
	TrackingCode    string `gorm:"size:255"`

	PaymentStatus string `gorm:"size:100"`
	Status        int    `gorm:"default:1"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

// StatusName exposes the label to templates.
func (o *Order) StatusName() string {
	return StatusLabel(o.Status)
}
