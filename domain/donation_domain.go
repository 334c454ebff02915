package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateDonation     = "donation created successfully"
	MessageSuccessGetDonations       = "donations retrieved successfully"
	MessageSuccessUpdateDonation     = "donation updated successfully"
	MessageSuccessDeleteDonation     = "donation deleted successfully"
	MessageSuccessGetNearbyDonations = "nearby donations retrieved successfully"
	MessageSuccessExpireDonations    = "expired donations marked successfully"

	MessageFailedCreateDonation     = "failed to create donation"
	MessageFailedGetDonations       = "failed to retrieve donations"
	MessageFailedUpdateDonation     = "failed to update donation"
	MessageFailedDeleteDonation     = "failed to delete donation"
	MessageFailedGetNearbyDonations = "failed to retrieve nearby donations"
	MessageFailedExpireDonations    = "failed to mark expired donations"

	ErrDonationNotFound           = errors.New("donation not found")
	ErrDonationNotAvailable       = errors.New("donation is not available for pickup")
	ErrUnauthorizedDonationAccess = errors.New("unauthorized access to donation")
	ErrInvalidDonationStatus      = errors.New("invalid donation status")
	ErrInvalidCategory            = errors.New("invalid donation category")
	ErrExpirationNotFuture        = errors.New("expiration time must be in the future")
	ErrInvalidCoordinates         = errors.New("invalid coordinates")
)

type (
	DonationRequest struct {
		FoodType       string                `json:"food_type" form:"food_type" validate:"required"`
		Category       string                `json:"category" form:"category" validate:"required,oneof=hot_meal packaged raw_ingredients"`
		Quantity       int                   `json:"quantity" form:"quantity" validate:"required,min=1"`
		ExpirationTime string                `json:"expiration_time" form:"expiration_time" validate:"required"`
		Latitude       float64               `json:"latitude" form:"latitude" validate:"min=-90,max=90"`
		Longitude      float64               `json:"longitude" form:"longitude" validate:"min=-180,max=180"`
		Image          *multipart.FileHeader `json:"-" form:"image"`
	}

	UpdateDonationStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=available picked_up delivered expired"`
	}

	ListDonationsRequest struct {
		Status   string
		Category string
		// IncludeAll disables the public available+unexpired default when
		// no status filter is given (admin listings).
		IncludeAll bool
		Page       int
		Limit      int
	}

	// Latitude/Longitude carry range tags only: zero is a valid
	// coordinate (equator, prime meridian), so required would reject it.
	NearbyDonationsRequest struct {
		Latitude    float64 `validate:"min=-90,max=90"`
		Longitude   float64 `validate:"min=-180,max=180"`
		MaxDistance float64 `validate:"min=0"`
	}

	Donation struct {
		ID             string    `json:"id"`
		DonorID        string    `json:"donor_id"`
		DonorName      string    `json:"donor_name,omitempty"`
		FoodType       string    `json:"food_type"`
		Category       string    `json:"category"`
		Quantity       int       `json:"quantity"`
		ExpirationTime time.Time `json:"expiration_time"`
		Status         string    `json:"status"`
		Latitude       float64   `json:"latitude"`
		Longitude      float64   `json:"longitude"`
		ImageURL       string    `json:"image_url,omitempty"`
		Distance       float64   `json:"distance,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
		UpdatedAt      time.Time `json:"updated_at"`
	}
)
