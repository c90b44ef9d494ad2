package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User represents an account holder. Notifications live on the user record as
// a JSON column and are rewritten whole on every append, so concurrent
// notification writes race last-write-wins at the row level.
type User struct {
	UUID              uuid.UUID                         `json:"uuid" db:"uuid" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Username          string                            `json:"username" db:"username" gorm:"type:text;not null;unique"`
	Email             string                            `json:"email" db:"email" gorm:"type:text;not null;unique"`
	PasswordHash      string                            `json:"-" db:"password_hash" gorm:"type:text;not null"`
	Notifications     datatypes.JSONSlice[Notification] `json:"notifications" db:"notifications"`
	IsNewNotification bool                              `json:"isNewNotification" db:"is_new_notification" gorm:"not null;default:false"`
	CreatedAt         time.Time                         `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt         time.Time                         `json:"updatedAt" db:"updated_at" gorm:"type:timestamp"`
}
