package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/velora-dev/go-storefront/app/models"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func catalogProduct(rule string, vs ...models.Variant) models.Product {
	catalogID := int64(1)
	return models.Product{ID: "p1", CatalogID: &catalogID, GlobalRule: rule, Variants: vs}
}

func TestDerivePriceSelectedVariantOverridesEverything(t *testing.T) {
	p := catalogProduct(models.PriceRuleHighest,
		models.Variant{ID: 1, Label: "S", Price: dec(100), Stock: 5},
		models.Variant{ID: 2, Label: "M", Price: dec(250), OldPrice: decPtr(300), Stock: 0},
	)
	// selection wins even though the variant is sold out
	sel := p.FindVariant(2)
	got := DerivePrice(p, sel, SurfaceGrid)
	if !got.FinalPrice.Equal(dec(250)) {
		t.Errorf("FinalPrice = %s, want 250", got.FinalPrice)
	}
	if got.OldPrice == nil || !got.OldPrice.Equal(dec(300)) {
		t.Errorf("OldPrice = %v, want 300", got.OldPrice)
	}
}

func TestDerivePriceIdempotentAndPure(t *testing.T) {
	p := catalogProduct(models.PriceRuleLowest,
		models.Variant{ID: 1, Label: "S", Price: dec(100), OldPrice: decPtr(150), Stock: 5},
		models.Variant{ID: 2, Label: "M", Price: dec(80), Stock: 2},
	)
	first := DerivePrice(p, nil, SurfaceGrid)
	second := DerivePrice(p, nil, SurfaceGrid)
	if !first.FinalPrice.Equal(second.FinalPrice) {
		t.Errorf("repeated derivation diverged: %s vs %s", first.FinalPrice, second.FinalPrice)
	}
	if (first.OldPrice == nil) != (second.OldPrice == nil) {
		t.Errorf("repeated derivation diverged on OldPrice: %v vs %v", first.OldPrice, second.OldPrice)
	}
	if !p.Variants[0].Price.Equal(dec(100)) || !p.Variants[1].Price.Equal(dec(80)) {
		t.Errorf("input product mutated: %v", p.Variants)
	}
}

func TestDerivePriceSimpleProduct(t *testing.T) {
	p := models.Product{ID: "p1", FinalPrice: dec(500), OldPrice: decPtr(800), Quantity: 3}
	got := DerivePrice(p, nil, SurfaceGrid)
	if !got.FinalPrice.Equal(dec(500)) {
		t.Errorf("FinalPrice = %s, want 500", got.FinalPrice)
	}
	if got.OldPrice == nil || !got.OldPrice.Equal(dec(800)) {
		t.Errorf("OldPrice = %v, want 800", got.OldPrice)
	}
}

func TestDerivePriceNullCatalogIDForcesSimplePath(t *testing.T) {
	// variants present but no catalog id: price comes from the first
	// in-stock variant in array order, not the extremal rule
	p := models.Product{
		ID:         "p1",
		GlobalRule: models.PriceRuleHighest,
		Variants: []models.Variant{
			{ID: 1, Label: "XL", Price: dec(100), Stock: 0},
			{ID: 2, Label: "S", Price: dec(70), Stock: 2},
			{ID: 3, Label: "M", Price: dec(900), Stock: 2},
		},
	}
	got := DerivePrice(p, nil, SurfaceGrid)
	if !got.FinalPrice.Equal(dec(70)) {
		t.Errorf("FinalPrice = %s, want 70 (first in stock, array order)", got.FinalPrice)
	}
}

func TestDerivePriceExtremalHighestAndLowest(t *testing.T) {
	vs := []models.Variant{
		{ID: 1, Label: "S", Price: dec(100), Stock: 1},
		{ID: 2, Label: "M", Price: dec(300), Stock: 1},
		{ID: 3, Label: "L", Price: dec(200), Stock: 1},
	}

	got := DerivePrice(catalogProduct(models.PriceRuleHighest, vs...), nil, SurfaceGrid)
	if !got.FinalPrice.Equal(dec(300)) {
		t.Errorf("highest rule: FinalPrice = %s, want 300", got.FinalPrice)
	}

	got = DerivePrice(catalogProduct(models.PriceRuleLowest, vs...), nil, SurfaceGrid)
	if !got.FinalPrice.Equal(dec(100)) {
		t.Errorf("lowest rule: FinalPrice = %s, want 100", got.FinalPrice)
	}
}

func TestDerivePriceExtremalSkipsSoldOutUntilNoneLeft(t *testing.T) {
	p := catalogProduct(models.PriceRuleHighest,
		models.Variant{ID: 1, Label: "S", Price: dec(999), Stock: 0},
		models.Variant{ID: 2, Label: "M", Price: dec(200), Stock: 4},
	)
	got := DerivePrice(p, nil, SurfaceGrid)
	if !got.FinalPrice.Equal(dec(200)) {
		t.Errorf("FinalPrice = %s, want 200 (sold-out variant excluded)", got.FinalPrice)
	}

	// everything sold out: the full list becomes the candidate set
	allOut := catalogProduct(models.PriceRuleHighest,
		models.Variant{ID: 1, Label: "S", Price: dec(999), Stock: 0},
		models.Variant{ID: 2, Label: "M", Price: dec(200), Stock: 0},
	)
	got = DerivePrice(allOut, nil, SurfaceGrid)
	if !got.FinalPrice.Equal(dec(999)) {
		t.Errorf("FinalPrice = %s, want 999 (fallback to full list)", got.FinalPrice)
	}
}

func TestDerivePriceTieGoesToFirstEncountered(t *testing.T) {
	p := catalogProduct(models.PriceRuleHighest,
		models.Variant{ID: 1, Label: "S", Price: dec(200), OldPrice: decPtr(250), Stock: 1},
		models.Variant{ID: 2, Label: "M", Price: dec(200), OldPrice: decPtr(400), Stock: 1},
	)
	got := DerivePrice(p, nil, SurfaceGrid)
	if got.OldPrice == nil || !got.OldPrice.Equal(dec(250)) {
		t.Errorf("OldPrice = %v, want 250 (first variant wins ties)", got.OldPrice)
	}
}

func TestSurfaceListPrefersVariantFinalPrice(t *testing.T) {
	v := models.Variant{ID: 1, Label: "M", Price: dec(300), FinalPrice: decPtr(240), Stock: 1}
	p := catalogProduct(models.PriceRuleHighest, v)

	grid := DerivePrice(p, &v, SurfaceGrid)
	if !grid.FinalPrice.Equal(dec(300)) {
		t.Errorf("grid surface FinalPrice = %s, want 300 (raw price)", grid.FinalPrice)
	}

	list := DerivePrice(p, &v, SurfaceList)
	if !list.FinalPrice.Equal(dec(240)) {
		t.Errorf("list surface FinalPrice = %s, want 240 (final_price)", list.FinalPrice)
	}
}

func TestOldPriceSuppressedUnlessStrictlyGreater(t *testing.T) {
	cases := []struct {
		name     string
		old      *decimal.Decimal
		wantKept bool
	}{
		{"greater", decPtr(200), true},
		{"equal", decPtr(100), false},
		{"lower", decPtr(50), false},
		{"absent", nil, false},
	}
	for _, tc := range cases {
		p := models.Product{ID: "p1", FinalPrice: dec(100), OldPrice: tc.old}
		got := DerivePrice(p, nil, SurfaceGrid)
		if got.HasDiscount() != tc.wantKept {
			t.Errorf("%s: HasDiscount = %v, want %v", tc.name, got.HasDiscount(), tc.wantKept)
		}
	}
}

func TestDiscountPercent(t *testing.T) {
	if got := DiscountPercent(PriceInfo{FinalPrice: dec(75), OldPrice: decPtr(100)}); got != 25 {
		t.Errorf("DiscountPercent = %d, want 25", got)
	}
	// 1000 -> 666 is 33.4%, rounds to 33
	if got := DiscountPercent(PriceInfo{FinalPrice: dec(666), OldPrice: decPtr(1000)}); got != 33 {
		t.Errorf("DiscountPercent = %d, want 33", got)
	}
	if got := DiscountPercent(PriceInfo{FinalPrice: dec(100)}); got != 0 {
		t.Errorf("DiscountPercent without old price = %d, want 0", got)
	}
}
