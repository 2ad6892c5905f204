package calc

import "github.com/velora-dev/go-storefront/app/models"

// Availability resolves the purchasable quantity for a product given the
// effective selected variant. With variants but no selection the answer is
// optimistic: in stock if any variant has stock.
func Availability(p models.Product, selected *models.Variant) int {
	if p.HasVariants() {
		if selected != nil {
			return selected.Stock
		}
		for _, v := range p.Variants {
			if v.InStock() {
				return v.Stock
			}
		}
		return 0
	}
	return p.Quantity
}

// Purchasability is what the templates need to decide between an active
// add-to-cart button, a disabled one, and no button at all.
type Purchasability struct {
	Available  int
	OutOfStock bool
	// Purchasable is false for zero-priced catalog entries regardless of
	// stock; a guard against malformed listings.
	Purchasable bool
	// HideCartActions suppresses the affordance entirely instead of
	// disabling it (wholesale accounts looking at sold-out items).
	HideCartActions bool
}

// ResolvePurchasability combines stock, the zero-price guard, and the
// wholesale presentation rule.
func ResolvePurchasability(p models.Product, selected *models.Variant, price PriceInfo, mode models.AccountMode) Purchasability {
	avail := Availability(p, selected)
	out := avail == 0
	return Purchasability{
		Available:       avail,
		OutOfStock:      out,
		Purchasable:     !out && !price.FinalPrice.IsZero(),
		HideCartActions: out && mode == models.AccountWholesale,
	}
}
