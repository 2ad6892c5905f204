package services

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/velora-dev/go-storefront/app/models"
)

type fakeCatalog struct {
	products map[string]models.Product
}

func (f *fakeCatalog) GetProductDetail(_ context.Context, slug string) (*models.Product, error) {
	p, ok := f.products[slug]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func (f *fakeCatalog) ListProducts(context.Context, int, int) ([]models.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeCatalog) SearchProducts(context.Context, string, int, int) ([]models.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeCatalog) ListByCategory(context.Context, string, int, int) ([]models.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeCatalog) FeaturedProducts(context.Context, int) ([]models.Product, error) {
	return nil, nil
}

type fakeCartRepo struct {
	carts map[string]*models.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]*models.Cart{}}
}

func (f *fakeCartRepo) GetOrCreate(_ context.Context, cartID string) (*models.Cart, error) {
	if c, ok := f.carts[cartID]; ok {
		return c, nil
	}
	c := &models.Cart{ID: cartID}
	f.carts[cartID] = c
	return c, nil
}

func (f *fakeCartRepo) GetCartWithItems(_ context.Context, cartID string) (*models.Cart, error) {
	return f.carts[cartID], nil
}

func (f *fakeCartRepo) UpdateCartSummary(context.Context, string) error { return nil }

func (f *fakeCartRepo) GetCartItemCount(context.Context, string) (int, error) { return 0, nil }

func (f *fakeCartRepo) AttachUser(context.Context, string, string) error { return nil }

func (f *fakeCartRepo) Clear(context.Context, string) error { return nil }

type fakeCartItemRepo struct {
	items  map[string]*models.CartItem
	nextID int
}

func newFakeCartItemRepo() *fakeCartItemRepo {
	return &fakeCartItemRepo{items: map[string]*models.CartItem{}}
}

func (f *fakeCartItemRepo) Create(_ context.Context, item *models.CartItem) error {
	f.nextID++
	item.ID = "item-" + strconv.Itoa(f.nextID)
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeCartItemRepo) Update(_ context.Context, item *models.CartItem) error {
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeCartItemRepo) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeCartItemRepo) GetByID(_ context.Context, id string) (*models.CartItem, error) {
	if it, ok := f.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCartItemRepo) GetByProductVariant(_ context.Context, cartID, productSlug string, variantID *int64) (*models.CartItem, error) {
	for _, it := range f.items {
		if it.CartID != cartID || it.ProductSlug != productSlug {
			continue
		}
		switch {
		case it.VariantID == nil && variantID == nil:
		case it.VariantID != nil && variantID != nil && *it.VariantID == *variantID:
		default:
			continue
		}
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCartItemRepo) ListByCart(_ context.Context, cartID string) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, it := range f.items {
		if it.CartID == cartID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func cartFixture(t *testing.T, products ...models.Product) (*CartService, *fakeCartItemRepo) {
	t.Helper()
	catalog := &fakeCatalog{products: map[string]models.Product{}}
	for _, p := range products {
		catalog.products[p.Slug] = p
	}
	items := newFakeCartItemRepo()
	return NewCartService(newFakeCartRepo(), items, catalog), items
}

func wholesaleShirt() models.Product {
	catalogID := int64(1)
	return models.Product{
		ID:        "p1",
		Slug:      "shirt",
		Name:      "Shirt",
		CatalogID: &catalogID,
		Variants: []models.Variant{
			{ID: 1, Label: "M", Price: decimal.NewFromInt(100), Stock: 3},
			{ID: 2, Label: "L", Price: decimal.NewFromInt(120), Stock: 0},
		},
	}
}

func TestAddItemWholesaleRequiresVariant(t *testing.T) {
	svc, _ := cartFixture(t, wholesaleShirt())

	_, err := svc.AddItem(context.Background(), "c1", "shirt", nil, 1, models.AccountWholesale)
	if !errors.Is(err, ErrVariantRequired) {
		t.Fatalf("err = %v, want ErrVariantRequired", err)
	}

	// with an explicit variant the same add succeeds
	variantID := int64(1)
	item, err := svc.AddItem(context.Background(), "c1", "shirt", &variantID, 1, models.AccountWholesale)
	if err != nil {
		t.Fatalf("explicit variant add: %v", err)
	}
	if item.VariantLabel != "M" {
		t.Errorf("VariantLabel = %q, want M", item.VariantLabel)
	}
}

func TestAddItemRetailUsesDefaultVariant(t *testing.T) {
	svc, _ := cartFixture(t, wholesaleShirt())

	item, err := svc.AddItem(context.Background(), "c1", "shirt", nil, 2, models.AccountRetail)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if item.VariantID == nil || *item.VariantID != 1 {
		t.Errorf("VariantID = %v, want the retail default (1)", item.VariantID)
	}
	if !item.Price.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Price = %s, want 100", item.Price)
	}
	if !item.Subtotal.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Subtotal = %s, want 200", item.Subtotal)
	}
}

func TestAddItemMergesLinesAndEnforcesStock(t *testing.T) {
	svc, items := cartFixture(t, wholesaleShirt())
	variantID := int64(1)

	if _, err := svc.AddItem(context.Background(), "c1", "shirt", &variantID, 2, models.AccountRetail); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := svc.AddItem(context.Background(), "c1", "shirt", &variantID, 1, models.AccountRetail); err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(items.items) != 1 {
		t.Fatalf("got %d lines, want the adds merged into 1", len(items.items))
	}
	for _, it := range items.items {
		if it.Qty != 3 {
			t.Errorf("merged Qty = %d, want 3", it.Qty)
		}
	}

	// variant 1 has 3 in stock and the line already holds all of them
	if _, err := svc.AddItem(context.Background(), "c1", "shirt", &variantID, 1, models.AccountRetail); !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("err = %v, want ErrInsufficientStock", err)
	}
}

func TestAddItemRejectsSoldOutSelection(t *testing.T) {
	svc, _ := cartFixture(t, wholesaleShirt())
	variantID := int64(2)

	if _, err := svc.AddItem(context.Background(), "c1", "shirt", &variantID, 1, models.AccountRetail); !errors.Is(err, ErrProductUnavailable) {
		t.Errorf("err = %v, want ErrProductUnavailable", err)
	}
}

func TestAddItemRejectsZeroPricedProduct(t *testing.T) {
	free := models.Product{ID: "p2", Slug: "freebie", Name: "Freebie", Quantity: 5}
	svc, _ := cartFixture(t, free)

	if _, err := svc.AddItem(context.Background(), "c1", "freebie", nil, 1, models.AccountRetail); !errors.Is(err, ErrProductUnavailable) {
		t.Errorf("err = %v, want ErrProductUnavailable for a zero price", err)
	}
}

func TestUpdateQtyRevalidatesStockAndRemovesAtZero(t *testing.T) {
	svc, items := cartFixture(t, wholesaleShirt())
	variantID := int64(1)

	added, err := svc.AddItem(context.Background(), "c1", "shirt", &variantID, 1, models.AccountRetail)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if err := svc.UpdateQty(context.Background(), "c1", added.ID, 5); !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("over-stock update: err = %v, want ErrInsufficientStock", err)
	}

	if err := svc.UpdateQty(context.Background(), "c1", added.ID, 2); err != nil {
		t.Fatalf("valid update: %v", err)
	}
	line, _ := items.GetByID(context.Background(), added.ID)
	if line.Qty != 2 || !line.Subtotal.Equal(decimal.NewFromInt(200)) {
		t.Errorf("line after update = %+v", line)
	}

	if err := svc.UpdateQty(context.Background(), "c1", added.ID, 0); err != nil {
		t.Fatalf("zero update: %v", err)
	}
	if line, _ := items.GetByID(context.Background(), added.ID); line != nil {
		t.Errorf("zero quantity should remove the line, got %+v", line)
	}
}
