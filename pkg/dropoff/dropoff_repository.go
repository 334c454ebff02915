package dropoff

import (
	"context"

	"foodshare-backend/entities"

	"gorm.io/gorm"
)

type (
	DropOffRepository interface {
		CreateDropOff(ctx context.Context, dropOff *entities.DropOff) error
		GetDropOffs(ctx context.Context) ([]*entities.DropOff, error)
		GetDropOffByID(ctx context.Context, id string) (*entities.DropOff, error)
		GetDropOffsInBox(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]*entities.DropOff, error)
		UpdateDropOff(ctx context.Context, dropOff *entities.DropOff) error
		DeleteDropOff(ctx context.Context, id string) error
		CountDropOffs(ctx context.Context) (int64, error)
	}

	dropOffRepository struct {
		db *gorm.DB
	}
)

func NewDropOffRepository(db *gorm.DB) DropOffRepository {
	return &dropOffRepository{db: db}
}

func (r *dropOffRepository) CreateDropOff(ctx context.Context, dropOff *entities.DropOff) error {
	return r.db.WithContext(ctx).Create(dropOff).Error
}

func (r *dropOffRepository) GetDropOffs(ctx context.Context) ([]*entities.DropOff, error) {
	var dropOffs []*entities.DropOff
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dropOffs).Error; err != nil {
		return nil, err
	}
	return dropOffs, nil
}

func (r *dropOffRepository) GetDropOffByID(ctx context.Context, id string) (*entities.DropOff, error) {
	var dropOff entities.DropOff
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dropOff).Error; err != nil {
		return nil, err
	}
	return &dropOff, nil
}

func (r *dropOffRepository) GetDropOffsInBox(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]*entities.DropOff, error) {
	var dropOffs []*entities.DropOff
	if err := r.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", minLat, maxLat).
		Where("longitude BETWEEN ? AND ?", minLng, maxLng).
		Find(&dropOffs).Error; err != nil {
		return nil, err
	}
	return dropOffs, nil
}

func (r *dropOffRepository) UpdateDropOff(ctx context.Context, dropOff *entities.DropOff) error {
	return r.db.WithContext(ctx).Save(dropOff).Error
}

func (r *dropOffRepository) DeleteDropOff(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.DropOff{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *dropOffRepository) CountDropOffs(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.DropOff{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
