package admin

import (
	"context"

	"foodshare-backend/entities"

	"gorm.io/gorm"
)

type (
	AdminRepository interface {
		CountUsers(ctx context.Context) (int64, error)
		CountDonations(ctx context.Context) (int64, error)
		CountPickups(ctx context.Context) (int64, error)
		CountDropOffs(ctx context.Context) (int64, error)
		CountUsersByRole(ctx context.Context) (map[string]int64, error)
		CountDonationsByStatus(ctx context.Context) (map[string]int64, error)
		GetRecentDonations(ctx context.Context, limit int) ([]*entities.Donation, error)
		GetRecentUsers(ctx context.Context, limit int) ([]*entities.User, error)
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountDonations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Donation{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountPickups(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Pickup{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountDropOffs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.DropOff{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountUsersByRole(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Role  string
		Count int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Role] = row.Count
	}
	return result, nil
}

func (r *adminRepository) CountDonationsByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Status] = row.Count
	}
	return result, nil
}

func (r *adminRepository) GetRecentDonations(ctx context.Context, limit int) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Order("created_at DESC").
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *adminRepository) GetRecentUsers(ctx context.Context, limit int) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
