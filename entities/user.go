package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Password  string    `json:"-"`
	Role      string    `gorm:"index" json:"role"` // donor, pickup, admin
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`

	Donations []*Donation `gorm:"foreignKey:DonorID"`
	Pickups   []*Pickup   `gorm:"foreignKey:PickupUserID"`
	Timestamp
}
