package calc

import (
	"github.com/shopspring/decimal"
	"github.com/velora-dev/go-storefront/app/models"
	"github.com/velora-dev/go-storefront/app/utils/variants"
)

// Surface identifies which storefront surface is asking for a price. The two
// surfaces read variant prices differently: the grid card reads the raw
// price field, the list card prefers a pre-computed final_price when the
// backend sends one. Both behaviors are kept as-is per surface.
type Surface int

const (
	SurfaceGrid Surface = iota
	SurfaceList
)

// PriceInfo is the displayed price plus an optional strikethrough original
// price. OldPrice is only ever present when it is strictly greater than
// FinalPrice.
type PriceInfo struct {
	FinalPrice decimal.Decimal
	OldPrice   *decimal.Decimal
}

// HasDiscount reports whether a strikethrough price should be shown.
func (p PriceInfo) HasDiscount() bool {
	return p.OldPrice != nil
}

func variantPrice(v models.Variant, surface Surface) decimal.Decimal {
	if surface == SurfaceList && v.FinalPrice != nil {
		return *v.FinalPrice
	}
	return v.Price
}

// suppressOldPrice drops the old price unless it is strictly greater than
// the final price, so a strikethrough only appears for a real discount.
func suppressOldPrice(info PriceInfo) PriceInfo {
	if info.OldPrice != nil && !info.OldPrice.GreaterThan(info.FinalPrice) {
		info.OldPrice = nil
	}
	return info
}

// extremalVariant picks the highest-priced candidate, or the lowest when the
// product's global rule says so. Candidates are the in-stock variants,
// falling back to the full list when everything is sold out. Ties go to the
// first-encountered candidate in array order.
func extremalVariant(p models.Product, surface Surface) *models.Variant {
	if !p.HasVariants() {
		return nil
	}
	candidates := make([]models.Variant, 0, len(p.Variants))
	for _, v := range p.Variants {
		if v.InStock() {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		candidates = p.Variants
	}

	best := candidates[0]
	for _, v := range candidates[1:] {
		price := variantPrice(v, surface)
		bestPrice := variantPrice(best, surface)
		if p.GlobalRule == models.PriceRuleLowest {
			if price.LessThan(bestPrice) {
				best = v
			}
		} else if price.GreaterThan(bestPrice) {
			best = v
		}
	}
	return &best
}

// DerivePrice computes the displayed price for a product. An explicitly
// selected variant overrides everything, including its own stock status.
// The derivation never fails; missing numbers were already coerced to zero
// at the normalization boundary.
func DerivePrice(p models.Product, selected *models.Variant, surface Surface) PriceInfo {
	if selected != nil {
		return suppressOldPrice(PriceInfo{
			FinalPrice: variantPrice(*selected, surface),
			OldPrice:   selected.OldPrice,
		})
	}

	if p.IsSimple() {
		if p.HasVariants() {
			v := variants.FirstInStock(p.Variants)
			return suppressOldPrice(PriceInfo{
				FinalPrice: variantPrice(*v, surface),
				OldPrice:   v.OldPrice,
			})
		}
		return suppressOldPrice(PriceInfo{
			FinalPrice: p.FinalPrice,
			OldPrice:   p.OldPrice,
		})
	}

	v := extremalVariant(p, surface)
	return suppressOldPrice(PriceInfo{
		FinalPrice: variantPrice(*v, surface),
		OldPrice:   v.OldPrice,
	})
}

// DiscountPercent returns the rounded discount badge percentage, or 0 when
// no discount applies.
func DiscountPercent(info PriceInfo) int {
	if info.OldPrice == nil || info.OldPrice.IsZero() {
		return 0
	}
	diff := info.OldPrice.Sub(info.FinalPrice)
	pct := diff.Mul(decimal.NewFromInt(100)).Div(*info.OldPrice)
	return int(pct.Round(0).IntPart())
}
