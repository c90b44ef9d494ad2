package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Post is a published blog entry. Likes and comments are JSON columns on the
// post row itself rather than join tables: every interaction reads the whole
// collection, appends or filters in memory, and saves the full record back.
type Post struct {
	ID            uint                         `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	UserUUID      uuid.UUID                    `json:"userUuid" db:"user_uuid" gorm:"type:uuid;not null;index"`
	Slug          string                       `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Title         string                       `json:"title" db:"title" gorm:"type:text;not null"`
	Content       string                       `json:"content" db:"content" gorm:"type:text;not null"`
	CoverImageURL string                       `json:"coverImageUrl" db:"cover_image_url" gorm:"type:text"`
	Likes         datatypes.JSONSlice[Like]    `json:"likes" db:"likes"`
	Comments      datatypes.JSONSlice[Comment] `json:"comments" db:"comments"`
	CreatedAt     time.Time                    `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time                    `json:"updatedAt" db:"updated_at" gorm:"type:timestamp"`
}
