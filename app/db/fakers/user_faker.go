package fakers

import (
	"log"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/velora-dev/go-storefront/app/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserFaker builds a demo customer. Roughly one in four is a wholesaler so
// the seeded data exercises both storefront modes.
func UserFaker(db *gorm.DB) *models.User {
	password, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash faker password:", err)
	}

	return &models.User{
		ID:           uuid.New().String(),
		FirstName:    faker.FirstName(),
		LastName:     faker.LastName(),
		Email:        faker.Email(),
		Phone:        faker.Phonenumber(),
		Password:     string(password),
		Role:         models.RoleCustomer,
		IsWholesaler: rand.Intn(4) == 0,
	}
}
