package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/velora-dev/go-storefront/app/models"
	"github.com/velora-dev/go-storefront/app/utils/calc"
	"gorm.io/gorm"
)

type CartRepositoryImpl interface {
	GetOrCreate(ctx context.Context, cartID string) (*models.Cart, error)
	GetCartWithItems(ctx context.Context, cartID string) (*models.Cart, error)
	UpdateCartSummary(ctx context.Context, cartID string) error
	GetCartItemCount(ctx context.Context, cartID string) (int, error)
	AttachUser(ctx context.Context, cartID, userID string) error
	Clear(ctx context.Context, cartID string) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepositoryImpl {
	return &cartRepository{db}
}

func (r *cartRepository) GetOrCreate(ctx context.Context, cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).FirstOrCreate(&cart, models.Cart{ID: cartID}).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetCartWithItems(ctx context.Context, cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("CartItems").
		FirstOrCreate(&cart, models.Cart{ID: cartID}).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateCartSummary recomputes the persisted cart totals from its items.
func (r *cartRepository) UpdateCartSummary(ctx context.Context, cartID string) error {
	var items []models.CartItem
	if err := r.db.WithContext(ctx).Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return err
	}

	baseTotal := decimal.Zero
	for _, item := range items {
		baseTotal = baseTotal.Add(item.Subtotal)
	}
	taxAmount := calc.CalculateTax(baseTotal)
	grandTotal := calc.CalculateGrandTotal(baseTotal, taxAmount, decimal.Zero, decimal.Zero)

	return r.db.WithContext(ctx).Model(&models.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"base_total_price": baseTotal,
			"tax_percent":      calc.GetTaxPercent(),
			"tax_amount":       taxAmount,
			"grand_total":      grandTotal,
		}).Error
}

func (r *cartRepository) GetCartItemCount(ctx context.Context, cartID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("cart_id = ?", cartID).
		Select("COALESCE(SUM(qty), 0)").
		Scan(&count).Error
	return int(count), err
}

func (r *cartRepository) AttachUser(ctx context.Context, cartID, userID string) error {
	return r.db.WithContext(ctx).Model(&models.Cart{}).
		Where("id = ?", cartID).
		Update("user_id", userID).Error
}

func (r *cartRepository) Clear(ctx context.Context, cartID string) error {
	if err := r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return r.UpdateCartSummary(ctx, cartID)
}
