package review

import (
	"context"

	"foodshare-backend/entities"

	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		CreateReview(ctx context.Context, review *entities.Review) error
		GetReviewByID(ctx context.Context, id string) (*entities.Review, error)
		GetReviewsForUser(ctx context.Context, revieweeID string) ([]*entities.Review, error)
		GetReviewsByReviewer(ctx context.Context, reviewerID string) ([]*entities.Review, error)
		HasReviewForTransaction(ctx context.Context, reviewerID, revieweeID, donationID, pickupID string) (bool, error)
		UpdateReview(ctx context.Context, review *entities.Review) error
		DeleteReview(ctx context.Context, id string) error
		GetAverageRating(ctx context.Context, revieweeID string) (float64, int64, error)
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, id string) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetReviewsForUser(ctx context.Context, revieweeID string) ([]*entities.Review, error) {
	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Preload("Donation").
		Where("reviewee_id = ?", revieweeID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) GetReviewsByReviewer(ctx context.Context, reviewerID string) ([]*entities.Review, error) {
	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).
		Preload("Reviewee").
		Preload("Donation").
		Where("reviewer_id = ?", reviewerID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) HasReviewForTransaction(ctx context.Context, reviewerID, revieweeID, donationID, pickupID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("reviewer_id = ? AND reviewee_id = ?", reviewerID, revieweeID)

	switch {
	case donationID != "":
		query = query.Where("donation_id = ?", donationID)
	case pickupID != "":
		query = query.Where("pickup_id = ?", pickupID)
	default:
		query = query.Where("donation_id IS NULL AND pickup_id IS NULL")
	}

	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reviewRepository) UpdateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) GetAverageRating(ctx context.Context, revieweeID string) (float64, int64, error) {
	var result struct {
		AverageRating float64
		TotalReviews  int64
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Select("COALESCE(AVG(rating), 0) as average_rating, COUNT(*) as total_reviews").
		Where("reviewee_id = ?", revieweeID).
		Scan(&result).Error; err != nil {
		return 0, 0, err
	}

	return result.AverageRating, result.TotalReviews, nil
}
