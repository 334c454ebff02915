package review

import (
	"context"
	"errors"

	"foodshare-backend/domain"
	"foodshare-backend/entities"
	"foodshare-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewService interface {
		CreateReview(ctx context.Context, req domain.ReviewRequest, reviewerID string) (*domain.Review, error)
		GetUserReviews(ctx context.Context, revieweeID string) (*domain.UserReviews, error)
		GetGivenReviews(ctx context.Context, reviewerID string) ([]*domain.Review, error)
		UpdateReview(ctx context.Context, id string, req domain.UpdateReviewRequest, userID string) (*domain.Review, error)
		DeleteReview(ctx context.Context, id string, userID, role string) error
	}

	reviewService struct {
		reviewRepository ReviewRepository
		userRepository   user.UserRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository, userRepository user.UserRepository) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		userRepository:   userRepository,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req domain.ReviewRequest, reviewerID string) (*domain.Review, error) {
	if req.RevieweeID == reviewerID {
		return nil, domain.ErrSelfReview
	}

	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	revieweeUUID, err := uuid.Parse(req.RevieweeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if _, err := s.userRepository.GetUserByID(ctx, req.RevieweeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	exists, err := s.reviewRepository.HasReviewForTransaction(ctx, reviewerID, req.RevieweeID, req.DonationID, req.PickupID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateReview
	}

	review := &entities.Review{
		ID:         uuid.New(),
		ReviewerID: reviewerUUID,
		RevieweeID: revieweeUUID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Type:       req.Type,
	}

	if req.DonationID != "" {
		donationUUID, err := uuid.Parse(req.DonationID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		review.DonationID = &donationUUID
	}
	if req.PickupID != "" {
		pickupUUID, err := uuid.Parse(req.PickupID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		review.PickupID = &pickupUUID
	}

	if err := s.reviewRepository.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	return toDomainReview(review), nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, revieweeID string) (*domain.UserReviews, error) {
	reviews, err := s.reviewRepository.GetReviewsForUser(ctx, revieweeID)
	if err != nil {
		return nil, err
	}

	average, total, err := s.reviewRepository.GetAverageRating(ctx, revieweeID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Review, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, toDomainReview(r))
	}

	return &domain.UserReviews{
		Reviews:       result,
		AverageRating: average,
		TotalReviews:  total,
	}, nil
}

func (s *reviewService) GetGivenReviews(ctx context.Context, reviewerID string) ([]*domain.Review, error) {
	reviews, err := s.reviewRepository.GetReviewsByReviewer(ctx, reviewerID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Review, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, toDomainReview(r))
	}
	return result, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id string, req domain.UpdateReviewRequest, userID string) (*domain.Review, error) {
	review, err := s.reviewRepository.GetReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}

	// Only the reviewer can touch their own review.
	if review.ReviewerID.String() != userID {
		return nil, domain.ErrUnauthorizedReviewAccess
	}

	if req.Rating != 0 {
		review.Rating = req.Rating
	}
	if req.Comment != "" {
		review.Comment = req.Comment
	}

	if err := s.reviewRepository.UpdateReview(ctx, review); err != nil {
		return nil, err
	}

	return toDomainReview(review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id string, userID, role string) error {
	review, err := s.reviewRepository.GetReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}

	if review.ReviewerID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrUnauthorizedReviewAccess
	}

	return s.reviewRepository.DeleteReview(ctx, id)
}

func toDomainReview(review *entities.Review) *domain.Review {
	result := &domain.Review{
		ID:         review.ID.String(),
		ReviewerID: review.ReviewerID.String(),
		RevieweeID: review.RevieweeID.String(),
		Rating:     review.Rating,
		Comment:    review.Comment,
		Type:       review.Type,
		CreatedAt:  review.CreatedAt,
	}
	if review.DonationID != nil {
		result.DonationID = review.DonationID.String()
	}
	if review.PickupID != nil {
		result.PickupID = review.PickupID.String()
	}
	if review.Reviewer != nil {
		result.ReviewerName = review.Reviewer.Name
	}
	if review.Reviewee != nil {
		result.RevieweeName = review.Reviewee.Name
	}
	return result
}
