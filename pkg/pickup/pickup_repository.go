package pickup

import (
	"context"

	"foodshare-backend/domain"
	"foodshare-backend/entities"

	"gorm.io/gorm"
)

type (
	PickupRepository interface {
		CreatePickup(ctx context.Context, pickup *entities.Pickup) error
		GetPickupByID(ctx context.Context, id string) (*entities.Pickup, error)
		GetPickups(ctx context.Context, page, limit int) ([]*entities.Pickup, int64, error)
		GetUserPickups(ctx context.Context, pickupUserID string, page, limit int) ([]*entities.Pickup, int64, error)
		HasActivePickup(ctx context.Context, donationID string) (bool, error)
		UpdatePickupStatus(ctx context.Context, id string, status string) error
		DeletePickup(ctx context.Context, id string) error
	}

	pickupRepository struct {
		db *gorm.DB
	}
)

func NewPickupRepository(db *gorm.DB) PickupRepository {
	return &pickupRepository{db: db}
}

func (r *pickupRepository) CreatePickup(ctx context.Context, pickup *entities.Pickup) error {
	return r.db.WithContext(ctx).Create(pickup).Error
}

func (r *pickupRepository) GetPickupByID(ctx context.Context, id string) (*entities.Pickup, error) {
	var pickup entities.Pickup
	if err := r.db.WithContext(ctx).
		Preload("Donation").
		Preload("Donation.Donor").
		Preload("PickupUser").
		Where("id = ?", id).
		First(&pickup).Error; err != nil {
		return nil, err
	}
	return &pickup, nil
}

func (r *pickupRepository) GetPickups(ctx context.Context, page, limit int) ([]*entities.Pickup, int64, error) {
	var pickups []*entities.Pickup
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Pickup{}).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Donation").
		Preload("Donation.Donor").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&pickups).Error; err != nil {
		return nil, 0, err
	}

	return pickups, count, nil
}

func (r *pickupRepository) GetUserPickups(ctx context.Context, pickupUserID string, page, limit int) ([]*entities.Pickup, int64, error) {
	var pickups []*entities.Pickup
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Pickup{}).
		Where("pickup_user_id = ?", pickupUserID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Donation").
		Preload("Donation.Donor").
		Where("pickup_user_id = ?", pickupUserID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&pickups).Error; err != nil {
		return nil, 0, err
	}

	return pickups, count, nil
}

func (r *pickupRepository) HasActivePickup(ctx context.Context, donationID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Pickup{}).
		Where("donation_id = ? AND status = ?", donationID, domain.PickupStatusPending).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *pickupRepository) UpdatePickupStatus(ctx context.Context, id string, status string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Pickup{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *pickupRepository) DeletePickup(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Pickup{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
