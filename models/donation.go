package models

import (
	"time"

	"github.com/google/uuid"
)

// Donation records a supporter payment shown on the donations dashboard.
type Donation struct {
	ID              uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	DonorUUID       uuid.UUID `json:"donorUuid" db:"donor_uuid" gorm:"type:uuid;not null;index"`
	Amount          float64   `json:"amount" db:"amount" gorm:"not null"`
	DonationMessage string    `json:"donationMessage" db:"donation_message" gorm:"type:text"`
	DonatedAt       time.Time `json:"donatedAt" db:"donated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
