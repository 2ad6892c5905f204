package repositories

import (
	"context"
	"errors"

	"github.com/velora-dev/go-storefront/app/models"
	"gorm.io/gorm"
)

type CartItemRepositoryImpl interface {
	Create(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.CartItem, error)
	// GetByProductVariant finds the line for a product+variant pair so
	// repeated adds merge into one line instead of duplicating it.
	GetByProductVariant(ctx context.Context, cartID, productSlug string, variantID *int64) (*models.CartItem, error)
	ListByCart(ctx context.Context, cartID string) ([]models.CartItem, error)
}

type cartItemRepository struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepositoryImpl {
	return &cartItemRepository{db}
}

func (r *cartItemRepository) Create(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartItemRepository) Update(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartItemRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CartItem{}).Error
}

func (r *cartItemRepository) GetByID(ctx context.Context, id string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) GetByProductVariant(ctx context.Context, cartID, productSlug string, variantID *int64) (*models.CartItem, error) {
	q := r.db.WithContext(ctx).Where("cart_id = ? AND product_slug = ?", cartID, productSlug)
	if variantID != nil {
		q = q.Where("variant_id = ?", *variantID)
	} else {
		q = q.Where("variant_id IS NULL")
	}

	var item models.CartItem
	if err := q.First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) ListByCart(ctx context.Context, cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}
