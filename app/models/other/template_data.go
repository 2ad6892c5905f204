package other

import (
	"github.com/velora-dev/go-storefront/app/models"
	"github.com/velora-dev/go-storefront/app/utils/calc"
)

type UserForTemplate struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Role         string
	IsWholesaler bool
}

// ProductCard is one product prepared for a list/grid template: the
// normalized product plus everything the card needs pre-derived.
type ProductCard struct {
	Product         models.Product
	Price           calc.PriceInfo
	DiscountPercent int
	Purchasability  calc.Purchasability
	SelectedVariant *models.Variant
	ImageCDN        string
	ImageOrigin     string
}
