package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreatePickup   = "pickup request created successfully"
	MessageSuccessGetPickups     = "pickups retrieved successfully"
	MessageSuccessCompletePickup = "pickup completed successfully"
	MessageSuccessCancelPickup   = "pickup cancelled successfully"

	MessageFailedCreatePickup   = "failed to create pickup request"
	MessageFailedGetPickups     = "failed to retrieve pickups"
	MessageFailedCompletePickup = "failed to complete pickup"
	MessageFailedCancelPickup   = "failed to cancel pickup"

	ErrPickupNotFound           = errors.New("pickup not found")
	ErrPickupAlreadyExists      = errors.New("a pickup request already exists for this donation")
	ErrPickupNotPending         = errors.New("pickup is not pending")
	ErrPickupAlreadyCompleted   = errors.New("pickup already completed")
	ErrUnauthorizedPickupAccess = errors.New("unauthorized access to pickup")
)

type (
	CreatePickupRequest struct {
		DonationID string `json:"donation_id" validate:"required,uuid"`
	}

	Pickup struct {
		ID           string    `json:"id"`
		DonationID   string    `json:"donation_id"`
		PickupUserID string    `json:"pickup_user_id"`
		Status       string    `json:"status"`
		FoodType     string    `json:"food_type,omitempty"`
		DonorName    string    `json:"donor_name,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}
)
