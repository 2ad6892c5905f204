package calc

import (
	"testing"

	"github.com/velora-dev/go-storefront/app/models"
)

func TestAvailability(t *testing.T) {
	p := catalogProduct("",
		models.Variant{ID: 1, Label: "S", Price: dec(100), Stock: 0},
		models.Variant{ID: 2, Label: "M", Price: dec(100), Stock: 7},
	)

	if got := Availability(p, p.FindVariant(2)); got != 7 {
		t.Errorf("selected variant availability = %d, want 7", got)
	}
	if got := Availability(p, p.FindVariant(1)); got != 0 {
		t.Errorf("sold-out variant availability = %d, want 0", got)
	}
	// no selection: optimistic, first variant with stock answers
	if got := Availability(p, nil); got != 7 {
		t.Errorf("optimistic availability = %d, want 7", got)
	}

	simple := models.Product{ID: "p1", Quantity: 4}
	if got := Availability(simple, nil); got != 4 {
		t.Errorf("simple product availability = %d, want 4", got)
	}
}

func TestResolvePurchasabilityZeroPriceGuard(t *testing.T) {
	p := models.Product{ID: "p1", Quantity: 10}
	got := ResolvePurchasability(p, nil, PriceInfo{FinalPrice: dec(0)}, models.AccountRetail)
	if got.Purchasable {
		t.Errorf("zero-priced product marked purchasable")
	}
	if got.OutOfStock {
		t.Errorf("in-stock product flagged out of stock")
	}
}

func TestResolvePurchasabilityWholesaleHidesSoldOutActions(t *testing.T) {
	p := models.Product{ID: "p1", Quantity: 0}
	price := PriceInfo{FinalPrice: dec(100)}

	retail := ResolvePurchasability(p, nil, price, models.AccountRetail)
	if retail.HideCartActions {
		t.Errorf("retail mode should disable, not hide, sold-out actions")
	}
	if !retail.OutOfStock || retail.Purchasable {
		t.Errorf("retail sold-out flags wrong: %+v", retail)
	}

	wholesale := ResolvePurchasability(p, nil, price, models.AccountWholesale)
	if !wholesale.HideCartActions {
		t.Errorf("wholesale mode should hide sold-out cart actions")
	}
}
