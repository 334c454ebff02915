package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetDropOffs       = "drop-off points retrieved successfully"
	MessageSuccessCreateDropOff     = "drop-off point created successfully"
	MessageSuccessUpdateDropOff     = "drop-off point updated successfully"
	MessageSuccessDeleteDropOff     = "drop-off point deleted successfully"
	MessageSuccessGetNearbyDropOffs = "nearby drop-off points retrieved successfully"

	MessageFailedGetDropOffs       = "failed to retrieve drop-off points"
	MessageFailedCreateDropOff     = "failed to create drop-off point"
	MessageFailedUpdateDropOff     = "failed to update drop-off point"
	MessageFailedDeleteDropOff     = "failed to delete drop-off point"
	MessageFailedGetNearbyDropOffs = "failed to retrieve nearby drop-off points"

	ErrDropOffNotFound = errors.New("drop-off point not found")
)

type (
	DropOffRequest struct {
		Name      string  `json:"name" validate:"required"`
		Address   string  `json:"address" validate:"required"`
		Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
		Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	}

	UpdateDropOffRequest struct {
		Name      string   `json:"name" validate:"omitempty"`
		Address   string   `json:"address" validate:"omitempty"`
		Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
		Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	}

	DropOff struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Address   string    `json:"address"`
		Latitude  float64   `json:"latitude"`
		Longitude float64   `json:"longitude"`
		Distance  float64   `json:"distance,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
