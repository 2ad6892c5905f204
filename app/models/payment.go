package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Payment struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	OrderID     string          `gorm:"size:36;not null;index"`
	Order       Order           `gorm:"foreignKey:OrderID;references:ID"`
	Number      string          `gorm:"size:255;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Method      string          `gorm:"size:100"`
	Status      string          `gorm:"size:100"`
	PaymentType string          `gorm:"size:100"`
	Token       string          `gorm:"size:255"`
	RedirectURL string          `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
