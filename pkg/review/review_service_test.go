package review

import (
	"context"
	"testing"

	"foodshare-backend/domain"
	"foodshare-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubReviewRepo struct {
	reviews map[string]*entities.Review
}

func newStubReviewRepo(reviews ...*entities.Review) *stubReviewRepo {
	repo := &stubReviewRepo{reviews: make(map[string]*entities.Review)}
	for _, r := range reviews {
		repo.reviews[r.ID.String()] = r
	}
	return repo
}

func (r *stubReviewRepo) CreateReview(_ context.Context, review *entities.Review) error {
	r.reviews[review.ID.String()] = review
	return nil
}

func (r *stubReviewRepo) GetReviewByID(_ context.Context, id string) (*entities.Review, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return review, nil
}

func (r *stubReviewRepo) GetReviewsForUser(_ context.Context, revieweeID string) ([]*entities.Review, error) {
	var result []*entities.Review
	for _, review := range r.reviews {
		if review.RevieweeID.String() == revieweeID {
			result = append(result, review)
		}
	}
	return result, nil
}

func (r *stubReviewRepo) GetReviewsByReviewer(_ context.Context, reviewerID string) ([]*entities.Review, error) {
	var result []*entities.Review
	for _, review := range r.reviews {
		if review.ReviewerID.String() == reviewerID {
			result = append(result, review)
		}
	}
	return result, nil
}

func (r *stubReviewRepo) HasReviewForTransaction(_ context.Context, reviewerID, revieweeID, donationID, pickupID string) (bool, error) {
	for _, review := range r.reviews {
		if review.ReviewerID.String() != reviewerID || review.RevieweeID.String() != revieweeID {
			continue
		}
		sameDonation := (review.DonationID == nil && donationID == "") ||
			(review.DonationID != nil && review.DonationID.String() == donationID)
		samePickup := (review.PickupID == nil && pickupID == "") ||
			(review.PickupID != nil && review.PickupID.String() == pickupID)
		if sameDonation && samePickup {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubReviewRepo) UpdateReview(_ context.Context, review *entities.Review) error {
	r.reviews[review.ID.String()] = review
	return nil
}

func (r *stubReviewRepo) DeleteReview(_ context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *stubReviewRepo) GetAverageRating(_ context.Context, revieweeID string) (float64, int64, error) {
	var sum, count int64
	for _, review := range r.reviews {
		if review.RevieweeID.String() == revieweeID {
			sum += int64(review.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type stubUserLookup struct {
	known map[string]*entities.User
}

func (r *stubUserLookup) CreateUser(context.Context, *entities.User) error { return nil }

func (r *stubUserLookup) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := r.known[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserLookup) GetUserByEmail(context.Context, string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserLookup) CheckEmailExists(context.Context, string) (bool, error) { return false, nil }

func (r *stubUserLookup) GetUsers(context.Context, string, int, int) ([]*entities.User, int64, error) {
	return nil, 0, nil
}

func (r *stubUserLookup) UpdateUserRole(context.Context, string, string) error { return nil }
func (r *stubUserLookup) DeleteUser(context.Context, string) error             { return nil }

func usersWith(users ...*entities.User) *stubUserLookup {
	lookup := &stubUserLookup{known: make(map[string]*entities.User)}
	for _, u := range users {
		lookup.known[u.ID.String()] = u
	}
	return lookup
}

func TestCreateReview(t *testing.T) {
	reviewee := &entities.User{ID: uuid.New(), Name: "Ana"}
	reviewer := uuid.New()
	donationID := uuid.New()
	repo := newStubReviewRepo()
	service := NewReviewService(repo, usersWith(reviewee))

	result, err := service.CreateReview(context.Background(), domain.ReviewRequest{
		RevieweeID: reviewee.ID.String(),
		DonationID: donationID.String(),
		Rating:     5,
		Comment:    "quick handover",
		Type:       "pickup_to_donor",
	}, reviewer.String())

	require.NoError(t, err)
	assert.Equal(t, 5, result.Rating)
	assert.Equal(t, donationID.String(), result.DonationID)
	assert.Len(t, repo.reviews, 1)
}

func TestCreateReviewSelf(t *testing.T) {
	service := NewReviewService(newStubReviewRepo(), usersWith())
	id := uuid.NewString()

	_, err := service.CreateReview(context.Background(), domain.ReviewRequest{
		RevieweeID: id,
		Rating:     4,
		Type:       "pickup_to_donor",
	}, id)

	assert.ErrorIs(t, err, domain.ErrSelfReview)
}

func TestCreateReviewUnknownReviewee(t *testing.T) {
	service := NewReviewService(newStubReviewRepo(), usersWith())

	_, err := service.CreateReview(context.Background(), domain.ReviewRequest{
		RevieweeID: uuid.NewString(),
		Rating:     4,
		Type:       "pickup_to_donor",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCreateReviewDuplicateForTransaction(t *testing.T) {
	reviewee := &entities.User{ID: uuid.New(), Name: "Ana"}
	reviewer := uuid.New()
	donationID := uuid.New()
	existing := &entities.Review{
		ID:         uuid.New(),
		ReviewerID: reviewer,
		RevieweeID: reviewee.ID,
		DonationID: &donationID,
		Rating:     3,
	}
	service := NewReviewService(newStubReviewRepo(existing), usersWith(reviewee))

	_, err := service.CreateReview(context.Background(), domain.ReviewRequest{
		RevieweeID: reviewee.ID.String(),
		DonationID: donationID.String(),
		Rating:     5,
		Type:       "pickup_to_donor",
	}, reviewer.String())

	assert.ErrorIs(t, err, domain.ErrDuplicateReview)
}

func TestGetUserReviewsAggregates(t *testing.T) {
	reviewee := uuid.New()
	repo := newStubReviewRepo(
		&entities.Review{ID: uuid.New(), ReviewerID: uuid.New(), RevieweeID: reviewee, Rating: 5},
		&entities.Review{ID: uuid.New(), ReviewerID: uuid.New(), RevieweeID: reviewee, Rating: 2},
	)
	service := NewReviewService(repo, usersWith())

	result, err := service.GetUserReviews(context.Background(), reviewee.String())

	require.NoError(t, err)
	assert.Len(t, result.Reviews, 2)
	assert.InDelta(t, 3.5, result.AverageRating, 0.001)
	assert.Equal(t, int64(2), result.TotalReviews)
}

func TestUpdateReviewOnlyReviewer(t *testing.T) {
	existing := &entities.Review{
		ID:         uuid.New(),
		ReviewerID: uuid.New(),
		RevieweeID: uuid.New(),
		Rating:     2,
		Comment:    "late",
	}
	service := NewReviewService(newStubReviewRepo(existing), usersWith())

	_, err := service.UpdateReview(context.Background(), existing.ID.String(),
		domain.UpdateReviewRequest{Rating: 4}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedReviewAccess)

	result, err := service.UpdateReview(context.Background(), existing.ID.String(),
		domain.UpdateReviewRequest{Rating: 4}, existing.ReviewerID.String())
	require.NoError(t, err)
	assert.Equal(t, 4, result.Rating)
	assert.Equal(t, "late", result.Comment, "unset fields stay untouched")
}

func TestDeleteReviewAdminOverride(t *testing.T) {
	existing := &entities.Review{ID: uuid.New(), ReviewerID: uuid.New(), RevieweeID: uuid.New(), Rating: 1}
	repo := newStubReviewRepo(existing)
	service := NewReviewService(repo, usersWith())

	err := service.DeleteReview(context.Background(), existing.ID.String(), uuid.NewString(), domain.RolePickup)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedReviewAccess)

	err = service.DeleteReview(context.Background(), existing.ID.String(), uuid.NewString(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, repo.reviews)
}
