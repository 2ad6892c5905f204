package models

import (
	"github.com/shopspring/decimal"
)

// PriceRule controls which variant wins when a variant-priced product has
// several candidates in stock.
const (
	PriceRuleLowest  = "lowest"
	PriceRuleHighest = "highest"
)

// AccountMode is the storefront mode the current session is in. Wholesale
// accounts never get an automatic default variant and must confirm a size
// explicitly before any cart action.
type AccountMode int

const (
	AccountRetail AccountMode = iota
	AccountWholesale
)

// Variant is one purchasable SKU of a catalog product, e.g. a size.
type Variant struct {
	ID         int64
	Label      string
	Price      decimal.Decimal
	FinalPrice *decimal.Decimal
	OldPrice   *decimal.Decimal
	Stock      int
}

// InStock reports whether the variant can currently be purchased.
func (v Variant) InStock() bool {
	return v.Stock > 0
}

// Product is the normalized catalog record the storefront renders. It is
// populated from the store API payload by other.NormalizeProduct; derivation
// code never sees the raw duck-typed shapes.
type Product struct {
	ID           string
	Slug         string
	Name         string
	FinalPrice   decimal.Decimal
	OldPrice     *decimal.Decimal
	Quantity     int
	CatalogID    *int64
	GlobalRule   string
	WholesalerID *int64
	Variants     []Variant
	ImagePath    string
	Description  string
}

// HasVariants reports whether the product carries a non-empty variant list.
func (p Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// IsSimple reports whether price and stock come straight off the product
// record. A null catalog id forces simple handling even when a variants
// array happens to be populated.
func (p Product) IsSimple() bool {
	return p.CatalogID == nil || !p.HasVariants()
}

// FindVariant returns the variant with the given id, or nil.
func (p Product) FindVariant(id int64) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}
	return nil
}
