package services

import (
	"github.com/fortuneehis/quickk/models"
	"github.com/google/uuid"
)

// PostStore is the slice of the post repository the services need: point
// lookups by unique key and whole-record writes.
type PostStore interface {
	FindBySlug(slug string) (*models.Post, error)
	FindBySlugAndID(slug string, id uint) (*models.Post, error)
	FindBySlugAndOwner(owner uuid.UUID, slug string) (*models.Post, error)
	FindByOwner(owner uuid.UUID) ([]*models.Post, error)
	Add(post *models.Post) error
	Update(post *models.Post) error
}

// UserStore is the slice of the user repository the services need.
type UserStore interface {
	FindByUUID(id uuid.UUID) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Add(user *models.User) error
	Update(user *models.User) error
}
