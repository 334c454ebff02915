package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateReview = "review created successfully"
	MessageSuccessGetReviews   = "reviews retrieved successfully"
	MessageSuccessUpdateReview = "review updated successfully"
	MessageSuccessDeleteReview = "review deleted successfully"

	MessageFailedCreateReview = "failed to create review"
	MessageFailedGetReviews   = "failed to retrieve reviews"
	MessageFailedUpdateReview = "failed to update review"
	MessageFailedDeleteReview = "failed to delete review"

	ErrReviewNotFound           = errors.New("review not found")
	ErrSelfReview               = errors.New("you cannot review yourself")
	ErrDuplicateReview          = errors.New("you have already reviewed this user for this transaction")
	ErrUnauthorizedReviewAccess = errors.New("unauthorized access to review")
)

type (
	ReviewRequest struct {
		RevieweeID string `json:"reviewee_id" validate:"required,uuid"`
		DonationID string `json:"donation_id" validate:"omitempty,uuid"`
		PickupID   string `json:"pickup_id" validate:"omitempty,uuid"`
		Rating     int    `json:"rating" validate:"required,min=1,max=5"`
		Comment    string `json:"comment" validate:"omitempty,max=500"`
		Type       string `json:"type" validate:"required,oneof=donor_to_pickup pickup_to_donor beneficiary_feedback"`
	}

	UpdateReviewRequest struct {
		Rating  int    `json:"rating" validate:"omitempty,min=1,max=5"`
		Comment string `json:"comment" validate:"omitempty,max=500"`
	}

	Review struct {
		ID           string    `json:"id"`
		ReviewerID   string    `json:"reviewer_id"`
		ReviewerName string    `json:"reviewer_name,omitempty"`
		RevieweeID   string    `json:"reviewee_id"`
		RevieweeName string    `json:"reviewee_name,omitempty"`
		DonationID   string    `json:"donation_id,omitempty"`
		PickupID     string    `json:"pickup_id,omitempty"`
		Rating       int       `json:"rating"`
		Comment      string    `json:"comment,omitempty"`
		Type         string    `json:"type"`
		CreatedAt    time.Time `json:"created_at"`
	}

	UserReviews struct {
		Reviews       []*Review `json:"reviews"`
		AverageRating float64   `json:"average_rating"`
		TotalReviews  int64     `json:"total_reviews"`
	}
)
