package database

import (
	"errors"

	"github.com/fortuneehis/quickk/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindByUUID returns the user with the given identifier, or nil if no such
// user exists.
func (r *UserRepo) FindByUUID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Where("uuid = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername returns the user with the given username, or nil if no such
// user exists.
func (r *UserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new user into the database
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Create(user).Error
}

// Update saves the whole user record, notifications included.
func (r *UserRepo) Update(user *models.User) error {
	return r.db.Save(user).Error
}
