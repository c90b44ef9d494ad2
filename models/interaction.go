package models

import (
	"time"

	"github.com/google/uuid"
)

// Like marks that a user liked a post at a point in time.
type Like struct {
	UserUUID uuid.UUID `json:"userUuid"`
	Date     time.Time `json:"date"`
}

// Comment is an entry in a post's comment thread. Append-only, no uniqueness.
type Comment struct {
	UserUUID uuid.UUID `json:"userUuid"`
	Date     time.Time `json:"date"`
	Comment  string    `json:"comment"`
}

// Notification is an in-app message appended to the recipient's user record.
type Notification struct {
	UserUUID uuid.UUID `json:"userUuid"`
	Date     time.Time `json:"date"`
	Message  string    `json:"message"`
	Link     string    `json:"link"`
}
