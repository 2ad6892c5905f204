package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/velora-dev/go-storefront/app/models"
	"github.com/velora-dev/go-storefront/app/repositories"
	"github.com/velora-dev/go-storefront/app/utils/calc"
	"github.com/velora-dev/go-storefront/app/utils/variants"
)

var (
	ErrInsufficientStock  = errors.New("insufficient product stock")
	ErrProductUnavailable = errors.New("product unavailable for purchase")
	// ErrVariantRequired means the caller must put the shopper through the
	// forced-selection size modal before retrying.
	ErrVariantRequired = errors.New("variant selection required")
)

type CartService struct {
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	catalog      StoreAPIClient
}

func NewCartService(cartRepo repositories.CartRepositoryImpl, cartItemRepo repositories.CartItemRepositoryImpl, catalog StoreAPIClient) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		catalog:      catalog,
	}
}

// GetCart loads the cart with its lines, creating the row on first access.
func (s *CartService) GetCart(ctx context.Context, cartID string) (*models.Cart, error) {
	if _, err := s.cartRepo.GetOrCreate(ctx, cartID); err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}
	return s.cartRepo.GetCartWithItems(ctx, cartID)
}

// AddItem fetches the product from the store API, resolves the effective
// variant for the session mode, and merges the line into the cart. Wholesale
// sessions must pass an explicit variant id for products with variants.
func (s *CartService) AddItem(ctx context.Context, cartID, productSlug string, variantID *int64, qty int, mode models.AccountMode) (*models.CartItem, error) {
	if qty < 1 {
		qty = 1
	}

	if _, err := s.cartRepo.GetOrCreate(ctx, cartID); err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	product, err := s.catalog.GetProductDetail(ctx, productSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", productSlug, err)
	}

	var selected *models.Variant
	if variantID != nil {
		selected = product.FindVariant(*variantID)
		if selected == nil {
			return nil, fmt.Errorf("variant %d does not belong to product %s", *variantID, productSlug)
		}
	} else if product.HasVariants() {
		if mode == models.AccountWholesale {
			return nil, ErrVariantRequired
		}
		selected = variants.Default(*product, mode)
	}

	price := calc.DerivePrice(*product, selected, calc.SurfaceGrid)
	purch := calc.ResolvePurchasability(*product, selected, price, mode)
	if !purch.Purchasable {
		return nil, ErrProductUnavailable
	}

	var selectedID *int64
	variantLabel := ""
	if selected != nil {
		id := selected.ID
		selectedID = &id
		variantLabel = selected.Label
	}

	existing, err := s.cartItemRepo.GetByProductVariant(ctx, cartID, productSlug, selectedID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing cart item: %w", err)
	}

	newQty := qty
	if existing != nil {
		newQty += existing.Qty
	}
	if purch.Available < newQty {
		return nil, fmt.Errorf("%w: product %q has %d available, requested %d", ErrInsufficientStock, product.Name, purch.Available, newQty)
	}

	var item *models.CartItem
	if existing != nil {
		item = existing
	} else {
		item = &models.CartItem{
			CartID:       cartID,
			ProductSlug:  productSlug,
			ProductName:  product.Name,
			VariantID:    selectedID,
			VariantLabel: variantLabel,
			ImagePath:    product.ImagePath,
		}
	}

	item.Qty = newQty
	item.Price = price.FinalPrice
	item.OldPrice = price.OldPrice
	item.Subtotal = price.FinalPrice.Mul(decimal.NewFromInt(int64(newQty)))

	if existing != nil {
		err = s.cartItemRepo.Update(ctx, item)
	} else {
		err = s.cartItemRepo.Create(ctx, item)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to persist cart item: %w", err)
	}

	if err := s.cartRepo.UpdateCartSummary(ctx, cartID); err != nil {
		return nil, fmt.Errorf("failed to update cart summary: %w", err)
	}
	return item, nil
}

// UpdateQty sets a line's quantity, removing it at zero. Stock is
// re-validated against the live catalog.
func (s *CartService) UpdateQty(ctx context.Context, cartID, itemID string, qty int) error {
	item, err := s.cartItemRepo.GetByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to load cart item: %w", err)
	}
	if item == nil || item.CartID != cartID {
		return errors.New("cart item not found")
	}

	if qty < 1 {
		return s.RemoveItem(ctx, cartID, itemID)
	}

	product, err := s.catalog.GetProductDetail(ctx, item.ProductSlug)
	if err != nil {
		return fmt.Errorf("failed to fetch product %s: %w", item.ProductSlug, err)
	}
	var selected *models.Variant
	if item.VariantID != nil {
		selected = product.FindVariant(*item.VariantID)
	}
	if avail := calc.Availability(*product, selected); avail < qty {
		return fmt.Errorf("%w: product %q has %d available, requested %d", ErrInsufficientStock, product.Name, avail, qty)
	}

	item.Qty = qty
	item.Subtotal = item.Price.Mul(decimal.NewFromInt(int64(qty)))
	if err := s.cartItemRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return s.cartRepo.UpdateCartSummary(ctx, cartID)
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID string) error {
	item, err := s.cartItemRepo.GetByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to load cart item: %w", err)
	}
	if item == nil || item.CartID != cartID {
		return nil
	}
	if err := s.cartItemRepo.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return s.cartRepo.UpdateCartSummary(ctx, cartID)
}
