package entities

import (
	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReviewerID uuid.UUID  `gorm:"index" json:"reviewer_id"`
	RevieweeID uuid.UUID  `gorm:"index" json:"reviewee_id"`
	DonationID *uuid.UUID `gorm:"index" json:"donation_id,omitempty"`
	PickupID   *uuid.UUID `gorm:"index" json:"pickup_id,omitempty"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment,omitempty"`
	Type       string     `gorm:"index" json:"type"` // donor_to_pickup, pickup_to_donor, beneficiary_feedback

	Reviewer *User     `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Reviewee *User     `gorm:"foreignKey:RevieweeID" json:"reviewee,omitempty"`
	Donation *Donation `gorm:"foreignKey:DonationID" json:"donation,omitempty"`
	Timestamp
}
