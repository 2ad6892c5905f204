package repositories

import (
	"context"
	"errors"

	"github.com/velora-dev/go-storefront/app/models"
	"gorm.io/gorm"
)

type AddressRepository interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	FindAddressByID(ctx context.Context, id string) (*models.Address, error)
	FindAddressesByUserID(ctx context.Context, userID string) ([]models.Address, error)
	UpdateAddress(ctx context.Context, address *models.Address) error
	DeleteAddress(ctx context.Context, id string) error
	SetPrimaryAddress(ctx context.Context, userID, addressID string) error
	GetPrimaryAddressByUserID(ctx context.Context, userID string) (*models.Address, error)
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db}
}

func (r *addressRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	if address.IsPrimary {
		err := r.db.WithContext(ctx).Model(&models.Address{}).
			Where("user_id = ?", address.UserID).
			Update("is_primary", false).Error
		if err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *addressRepository) FindAddressByID(ctx context.Context, id string) (*models.Address, error) {
	var address models.Address
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) FindAddressesByUserID(ctx context.Context, userID string) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_primary DESC, created_at DESC").
		Find(&addresses).Error
	return addresses, err
}

func (r *addressRepository) UpdateAddress(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Save(address).Error
}

func (r *addressRepository) DeleteAddress(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Address{}).Error
}

func (r *addressRepository) SetPrimaryAddress(ctx context.Context, userID, addressID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).
			Where("user_id = ?", userID).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Address{}).
			Where("id = ? AND user_id = ?", addressID, userID).
			Update("is_primary", true).Error
	})
}

func (r *addressRepository) GetPrimaryAddressByUserID(ctx context.Context, userID string) (*models.Address, error) {
	var address models.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_primary = ?", userID, true).
		First(&address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}
