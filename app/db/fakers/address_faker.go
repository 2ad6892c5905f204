package fakers

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/velora-dev/go-storefront/app/models"
	"gorm.io/gorm"
)

var stateCities = []struct {
	State string
	City  string
}{
	{"Maharashtra", "Mumbai"},
	{"Karnataka", "Bengaluru"},
	{"Tamil Nadu", "Chennai"},
	{"Delhi", "New Delhi"},
	{"West Bengal", "Kolkata"},
}

// AddressFaker builds a primary shipping address for the given user.
func AddressFaker(db *gorm.DB, user *models.User) *models.Address {
	sc := stateCities[rand.Intn(len(stateCities))]

	return &models.Address{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Name:      user.FirstName + " " + user.LastName,
		IsPrimary: true,
		Address1:  faker.Sentence(),
		City:      sc.City,
		State:     sc.State,
		Pincode:   fmt.Sprintf("%06d", rand.Intn(900000)+100000),
		Phone:     user.Phone,
		Email:     user.Email,
	}
}
