package variants

import "github.com/velora-dev/go-storefront/app/models"

// Default computes the variant a freshly rendered product card should show
// when nothing has been selected yet: the first in-stock variant in display
// order, falling back to the first variant in display order when everything
// is sold out. Returns nil for wholesale mode and for products without
// variants.
func Default(p models.Product, mode models.AccountMode) *models.Variant {
	if mode == models.AccountWholesale || !p.HasVariants() {
		return nil
	}
	sorted := Sort(p.Variants)
	for i := range sorted {
		if sorted[i].InStock() {
			v := sorted[i]
			return &v
		}
	}
	v := sorted[0]
	return &v
}

// FirstInStock returns the first in-stock variant in original array order,
// falling back to the first variant. Used by simple-product pricing, which
// deliberately ignores display order.
func FirstInStock(vs []models.Variant) *models.Variant {
	if len(vs) == 0 {
		return nil
	}
	for i := range vs {
		if vs[i].InStock() {
			v := vs[i]
			return &v
		}
	}
	v := vs[0]
	return &v
}
