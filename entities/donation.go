package entities

import (
	"time"

	"github.com/google/uuid"
)

type Donation struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID        uuid.UUID `gorm:"index" json:"donor_id"`
	FoodType       string    `json:"food_type"`
	Category       string    `gorm:"index" json:"category"` // hot_meal, packaged, raw_ingredients
	Quantity       int       `json:"quantity"`
	ExpirationTime time.Time `gorm:"index" json:"expiration_time"`
	Status         string    `gorm:"index" json:"status"` // available, picked_up, delivered, expired
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	ImageURL       string    `json:"image_url,omitempty"`

	Donor   *User     `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	Pickups []*Pickup `gorm:"foreignKey:DonationID" json:"-"`
	Timestamp
}
