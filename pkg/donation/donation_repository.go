package donation

import (
	"context"
	"time"

	"foodshare-backend/domain"
	"foodshare-backend/entities"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		GetDonations(ctx context.Context, status, category string, unexpiredOnly bool, page, limit int) ([]*entities.Donation, int64, error)
		GetUserDonations(ctx context.Context, donorID string, page, limit int) ([]*entities.Donation, int64, error)
		GetDonationsInBox(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]*entities.Donation, error)
		UpdateDonationStatus(ctx context.Context, id string, status string) error
		UpdateStatusIf(ctx context.Context, id string, from, to string) (bool, error)
		DeleteDonation(ctx context.Context, id string) error
		ExpireDonations(ctx context.Context, now time.Time) (int64, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetDonations(ctx context.Context, status, category string, unexpiredOnly bool, page, limit int) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Donation{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if unexpiredOnly {
		query = query.Where("expiration_time > ?", time.Now())
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Donor").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

func (r *donationRepository) GetUserDonations(ctx context.Context, donorID string, page, limit int) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("donor_id = ?", donorID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

func (r *donationRepository) GetDonationsInBox(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]*entities.Donation, error) {
	var donations []*entities.Donation

	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("status = ?", domain.DonationStatusAvailable).
		Where("expiration_time > ?", time.Now()).
		Where("latitude BETWEEN ? AND ?", minLat, maxLat).
		Where("longitude BETWEEN ? AND ?", minLng, maxLng).
		Find(&donations).Error; err != nil {
		return nil, err
	}

	return donations, nil
}

func (r *donationRepository) UpdateDonationStatus(ctx context.Context, id string, status string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
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

// UpdateStatusIf performs a conditional status transition and reports
// whether the row was actually updated. Two concurrent claimers therefore
// cannot both move the same donation out of "available".
func (r *donationRepository) UpdateStatusIf(ctx context.Context, id string, from, to string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *donationRepository) DeleteDonation(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Donation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *donationRepository) ExpireDonations(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("status = ?", domain.DonationStatusAvailable).
		Where("expiration_time < ?", now).
		Update("status", domain.DonationStatusExpired)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
