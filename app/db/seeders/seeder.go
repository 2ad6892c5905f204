package seeders

import (
	"log"

	"github.com/velora-dev/go-storefront/app/db/fakers"
	"gorm.io/gorm"
)

// DBSeed populates demo customers with primary addresses and a small
// order history each. The catalog is not seeded: products live in the
// remote store API.
func DBSeed(db *gorm.DB) error {
	for i := 0; i < 10; i++ {
		user := fakers.UserFaker(db)
		if err := db.FirstOrCreate(user, "email = ?", user.Email).Error; err != nil {
			return err
		}
		address := fakers.AddressFaker(db, user)
		if err := db.Create(address).Error; err != nil {
			return err
		}
		for j := 0; j < 2; j++ {
			order := fakers.OrderFaker(db, user, address)
			if err := db.Create(order).Error; err != nil {
				return err
			}
		}
	}
	log.Println("Seeded 10 demo users with addresses and order history")
	return nil
}
