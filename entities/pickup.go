package entities

import (
	"github.com/google/uuid"
)

type Pickup struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID   uuid.UUID `gorm:"index" json:"donation_id"`
	PickupUserID uuid.UUID `gorm:"index" json:"pickup_user_id"`
	Status       string    `gorm:"index" json:"status"` // pending, completed

	Donation   *Donation `gorm:"foreignKey:DonationID" json:"donation,omitempty"`
	PickupUser *User     `gorm:"foreignKey:PickupUserID" json:"pickup_user,omitempty"`
	Timestamp
}
