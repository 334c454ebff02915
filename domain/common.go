package domain

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

const (
	RoleDonor  = "donor"
	RolePickup = "pickup"
	RoleAdmin  = "admin"
)

const (
	DonationStatusAvailable = "available"
	DonationStatusPickedUp  = "picked_up"
	DonationStatusDelivered = "delivered"
	DonationStatusExpired   = "expired"

	PickupStatusPending   = "pending"
	PickupStatusCompleted = "completed"
)

var ValidRoles = []string{RoleDonor, RolePickup, RoleAdmin}

var (
	MessageUserNotAllowed       = "user not allowed"
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("token not found")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
)

// HTTPStatus maps a sentinel error onto the response status code. Unknown
// errors fall through to 500 so backing-store failures never leak details.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrTokenNotFound),
		errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrCredentialsInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrUserNotAllowed),
		errors.Is(err, ErrUnauthorizedDonationAccess),
		errors.Is(err, ErrUnauthorizedPickupAccess),
		errors.Is(err, ErrUnauthorizedReviewAccess):
		return fiber.StatusForbidden
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrDonationNotFound),
		errors.Is(err, ErrPickupNotFound),
		errors.Is(err, ErrDropOffNotFound),
		errors.Is(err, ErrReviewNotFound),
		errors.Is(err, ErrFileNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrDonationNotAvailable),
		errors.Is(err, ErrPickupAlreadyExists),
		errors.Is(err, ErrPickupNotPending),
		errors.Is(err, ErrPickupAlreadyCompleted):
		return fiber.StatusConflict
	case errors.Is(err, ErrParseUUID),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrInvalidDonationStatus),
		errors.Is(err, ErrExpirationNotFuture),
		errors.Is(err, ErrInvalidCoordinates),
		errors.Is(err, ErrSelfReview),
		errors.Is(err, ErrDuplicateReview),
		errors.Is(err, ErrNoFileUploaded):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
