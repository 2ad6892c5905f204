package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	FirstName string    `gorm:"size:100;not null"`
	LastName  string    `gorm:"size:100"`
	Addresses []Address `gorm:"foreignKey:UserID"`
	Email     string    `gorm:"size:100;not null;uniqueIndex"`
	Phone     string    `gorm:"size:20"`
	Password  string    `gorm:"size:255;not null"`
	Role      string    `gorm:"size:20;default:'customer';not null"`
	// IsWholesaler switches the session into wholesale mode: no automatic
	// default variant, explicit size confirmation before cart actions.
	IsWholesaler bool `gorm:"default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt
}

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Mode maps the account flag to the storefront rendering mode. A nil user
// (guest session) browses in retail mode.
func (u *User) Mode() AccountMode {
	if u != nil && u.IsWholesaler {
		return AccountWholesale
	}
	return AccountRetail
}
